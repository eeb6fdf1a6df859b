package domain

import (
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func TestCampaignPatchApply(t *testing.T) {
	created := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	base := Campaign{
		ID: "cp001", Name: "Summer Sale 2024", Channel: "Google Ads",
		Spend: "2450.00", Conversions: 147, ROI: "285.00",
		Status: StatusActive, CreatedAt: created,
	}

	status := StatusPaused
	got := CampaignPatch{Status: &status}.Apply(base)

	want := base
	want.Status = StatusPaused
	assert.Equal(t, want, got)
	assert.Equal(t, StatusActive, base.Status, "base must not change")

	assert.Equal(t, base, CampaignPatch{}.Apply(base))
}

func TestChartSeriesValidate(t *testing.T) {
	s := ChartSeries{
		Labels:   []string{"a", "b"},
		Datasets: []Dataset{{Data: []float64{1, 2}}, {Data: []float64{3}}},
	}
	err := s.Validate()
	assert.True(t, errors.Is(err, errors.NotValid), "got %v", err)

	s.Datasets[1].Data = append(s.Datasets[1].Data, 4)
	assert.NoError(t, s.Validate())

	c := s.Clone()
	c.Datasets[0].Data[0] = 100
	c.Labels[0] = "z"
	assert.Equal(t, float64(1), s.Datasets[0].Data[0])
	assert.Equal(t, "a", s.Labels[0])
}

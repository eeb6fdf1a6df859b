package projection

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpulse/internal/core/domain"
)

// seqRand replays a fixed sequence of values.
type seqRand struct {
	vals []float64
	i    int
}

func (s *seqRand) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func days(n int) domain.DateRange {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, n)
	return domain.DateRange{From: &from, To: &to}
}

var summerSale = domain.Campaign{
	ID: "cp001", Name: "Summer Sale 2024", Channel: "Google Ads",
	Spend: "2450.00", Conversions: 147, ROI: "285.00", Status: domain.StatusActive,
	CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
}

var snapshot = domain.Metrics{
	ID: "m001", Revenue: "24567.00", Users: 12456, Conversions: "3.20", Growth: "18.70",
}

func TestMultiplierFor(t *testing.T) {
	_, ok := MultiplierFor(domain.DateRange{})
	assert.False(t, ok)

	m, ok := MultiplierFor(days(30))
	require.True(t, ok)
	assert.Equal(t, int64(30), m.Days)
	assert.Equal(t, 1.0, m.Float64())
	assert.Equal(t, "1", m.Decimal().String())

	// partial days round up
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(36 * time.Hour)
	m, _ = MultiplierFor(domain.DateRange{From: &from, To: &to})
	assert.Equal(t, int64(2), m.Days)
}

func TestCampaignIdentityWithoutRange(t *testing.T) {
	p := New(&seqRand{vals: []float64{0.5}})
	from := time.Now()

	got, err := p.Campaign(summerSale, domain.DateRange{From: &from})
	require.NoError(t, err)
	assert.Equal(t, summerSale, got)
}

func TestCampaignThirtyDays(t *testing.T) {
	p := New(&seqRand{vals: []float64{0.5}})

	got, err := p.Campaign(summerSale, days(30))
	require.NoError(t, err)
	assert.Equal(t, "2450.00", got.Spend)
	assert.Equal(t, int64(147), got.Conversions)
	assert.Equal(t, "342.00", got.ROI) // 285 * 1.2
	assert.Equal(t, summerSale.ID, got.ID)
	assert.Equal(t, summerSale.CreatedAt, got.CreatedAt)
}

func TestCampaignScaling(t *testing.T) {
	p := New(&seqRand{vals: []float64{0.5}})

	got, err := p.Campaign(summerSale, days(15))
	require.NoError(t, err)
	assert.Equal(t, "1225.00", got.Spend)
	assert.Equal(t, int64(73), got.Conversions) // floor(73.5)
	assert.Equal(t, "285.00", got.ROI)          // 0.8 + 0.5*0.4 = 1

	got, err = p.Campaign(summerSale, days(7))
	require.NoError(t, err)
	assert.Equal(t, "571.67", got.Spend)
	assert.Equal(t, int64(34), got.Conversions) // floor(147*7/30)
	assert.Equal(t, "254.60", got.ROI)          // 285 * (0.8 + 7/30*0.4)
}

func TestCampaignsDoesNotMutateInput(t *testing.T) {
	p := New(&seqRand{vals: []float64{0.5}})
	list := []domain.Campaign{summerSale}

	out, err := p.Campaigns(list, days(60))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "4900.00", out[0].Spend)
	assert.Equal(t, "2450.00", list[0].Spend)
}

func TestCampaignBadDecimal(t *testing.T) {
	p := New(&seqRand{vals: []float64{0.5}})
	c := summerSale
	c.Spend = "lots"

	_, err := p.Campaign(c, days(30))
	assert.Error(t, err)
}

func TestMetricsScaling(t *testing.T) {
	p := New(&seqRand{vals: []float64{0.5}})

	got, err := p.Metrics(snapshot, domain.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)

	got, err = p.Metrics(snapshot, days(30))
	require.NoError(t, err)
	assert.Equal(t, "24567.00", got.Revenue)
	assert.Equal(t, int64(12456), got.Users)
	assert.Equal(t, "3.20", got.Conversions)
	assert.Equal(t, "26.18", got.Growth) // 18.70 * 1.4

	got, err = p.Metrics(snapshot, days(60))
	require.NoError(t, err)
	assert.Equal(t, "49134.00", got.Revenue)
	assert.Equal(t, int64(24912), got.Users)
	assert.Equal(t, "4.80", got.Conversions) // 3.20 * 1.5
	assert.Equal(t, "41.14", got.Growth)     // 18.70 * 2.2
	assert.Equal(t, snapshot.ID, got.ID)
	assert.Equal(t, snapshot.Date, got.Date)
}

func chart(typ string) domain.ChartData {
	return domain.ChartData{
		ID:   typ + "001",
		Type: typ,
		Data: domain.ChartSeries{
			Labels: []string{"Jan", "Feb", "Mar"},
			Datasets: []domain.Dataset{
				{Label: "Revenue", Data: []float64{12000, 15000, 18000}},
				{Label: "Cost", Data: []float64{100, 200, 300}},
			},
		},
	}
}

func TestChartJitter(t *testing.T) {
	tests := []struct {
		typ      string
		lo, span float64
	}{
		{domain.ChartLine, 0.7, 0.6},
		{domain.ChartBar, 0.8, 0.4},
	}
	seq := []float64{0, 0.25, 0.5, 0.75, 0.99, 0.1}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			p := New(&seqRand{vals: seq})
			base := chart(tt.typ)

			got := p.Chart(base, days(45))

			m := 45.0 / 30
			i := 0
			for d, ds := range got.Data.Datasets {
				require.Len(t, ds.Data, len(got.Data.Labels))
				for k, v := range ds.Data {
					want := math.Floor(base.Data.Datasets[d].Data[k] * m * (tt.lo + seq[i]*tt.span))
					assert.Equal(t, want, v, "dataset %d point %d", d, k)
					i++
				}
			}
			assert.Equal(t, float64(12000), base.Data.Datasets[0].Data[0], "base must not change")
		})
	}
}

func TestChartPieAndIdentity(t *testing.T) {
	p := New(&seqRand{vals: []float64{0.3}})

	pie := chart(domain.ChartPie)
	assert.Equal(t, pie, p.Chart(pie, days(90)))

	line := chart(domain.ChartLine)
	assert.Equal(t, line, p.Chart(line, domain.DateRange{}))
}

func TestNewSeededIsDeterministic(t *testing.T) {
	a := NewSeeded(42).Chart(chart(domain.ChartLine), days(10))
	b := NewSeeded(42).Chart(chart(domain.ChartLine), days(10))
	assert.Equal(t, a, b)
}

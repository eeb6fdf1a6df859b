package domain

import (
	"time"

	"github.com/juju/errors"
)

// Chart types served by the dashboard.
const (
	ChartLine = "line"
	ChartBar  = "bar"
	ChartPie  = "pie"
)

// Dataset is one named series. Data is aligned positionally with the
// labels of the owning ChartSeries.
type Dataset struct {
	Label string    `json:"label,omitempty"`
	Data  []float64 `json:"data"`
}

// ChartSeries is the label axis plus one or more datasets.
type ChartSeries struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Validate checks that every dataset has exactly one point per label.
func (s ChartSeries) Validate() error {
	for i, ds := range s.Datasets {
		if len(ds.Data) != len(s.Labels) {
			return errors.NotValidf("dataset %d has %d points, want %d", i, len(ds.Data), len(s.Labels))
		}
	}
	return nil
}

// Clone returns a deep copy so callers may modify points freely.
func (s ChartSeries) Clone() ChartSeries {
	out := ChartSeries{
		Labels:   append([]string(nil), s.Labels...),
		Datasets: make([]Dataset, len(s.Datasets)),
	}
	for i, ds := range s.Datasets {
		out.Datasets[i] = Dataset{Label: ds.Label, Data: append([]float64(nil), ds.Data...)}
	}
	return out
}

// ChartData is a chart dataset keyed by its Type.
type ChartData struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"` // line, bar, pie
	Data      ChartSeries `json:"data"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ChartDataInput is the payload used to store chart data.
type ChartDataInput struct {
	Type string      `json:"type"`
	Data ChartSeries `json:"data"`
}

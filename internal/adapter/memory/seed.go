package memory

import (
	"context"

	"adpulse/internal/core/domain"
)

// Seed inserts the demo dataset: four campaigns, one metrics snapshot and
// one chart per type. IDs are fixed so clients can rely on them.
func Seed(_ context.Context, r *DashboardRepository) error {
	now := r.clock.Now()

	campaigns := []domain.Campaign{
		{ID: "cp001", Name: "Summer Sale 2024", Channel: "Google Ads", Spend: "2450.00", Conversions: 147, ROI: "285.00", Status: domain.StatusActive},
		{ID: "cp002", Name: "Holiday Campaign", Channel: "Facebook", Spend: "1890.00", Conversions: 92, ROI: "312.00", Status: domain.StatusPaused},
		{ID: "cp003", Name: "Brand Awareness", Channel: "Instagram", Spend: "3200.00", Conversions: 203, ROI: "245.00", Status: domain.StatusActive},
		{ID: "cp004", Name: "Product Launch", Channel: "LinkedIn", Spend: "1560.00", Conversions: 78, ROI: "198.00", Status: domain.StatusCompleted},
	}

	metrics := domain.Metrics{
		ID:          "m001",
		Date:        now,
		Revenue:     "24567.00",
		Users:       12456,
		Conversions: "3.20",
		Growth:      "18.70",
	}

	charts := []domain.ChartData{
		{
			ID:   "line001",
			Type: domain.ChartLine,
			Data: domain.ChartSeries{
				Labels: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul"},
				Datasets: []domain.Dataset{{
					Label: "Revenue",
					Data:  []float64{12000, 15000, 18000, 22000, 25000, 28000, 32000},
				}},
			},
		},
		{
			ID:   "bar001",
			Type: domain.ChartBar,
			Data: domain.ChartSeries{
				Labels: []string{"Google Ads", "Facebook", "Instagram", "LinkedIn", "Twitter"},
				Datasets: []domain.Dataset{{
					Label: "Conversions",
					Data:  []float64{147, 92, 203, 78, 45},
				}},
			},
		},
		{
			ID:   "pie001",
			Type: domain.ChartPie,
			Data: domain.ChartSeries{
				Labels:   []string{"Organic", "Paid", "Social"},
				Datasets: []domain.Dataset{{Data: []float64{45, 30, 25}}},
			},
		},
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range campaigns {
		c.CreatedAt = now
		r.putCampaign(c)
	}
	r.metrics = append(r.metrics, metrics)
	for _, c := range charts {
		if err := c.Data.Validate(); err != nil {
			return err
		}
		c.CreatedAt = now
		r.charts[c.Type] = c
	}
	return nil
}

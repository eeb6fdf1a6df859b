package port

import (
	"context"

	"adpulse/internal/core/domain"
)

// DashboardUseCase defines the business operations exposed by the
// dashboard API. This interface represents the primary port into the
// application domain. Mock implementations can be generated from this
// interface for testing.
type DashboardUseCase interface {
	// Metrics returns the latest snapshot scaled to r, or nil when no
	// snapshot exists.
	Metrics(ctx context.Context, r domain.DateRange) (*domain.Metrics, error)

	// Campaigns returns every campaign, each scaled to r.
	Campaigns(ctx context.Context, r domain.DateRange) ([]domain.Campaign, error)
	// Campaign returns the stored campaign or a NotFound error.
	Campaign(ctx context.Context, id string) (domain.Campaign, error)
	// CreateCampaign validates and stores a campaign. Invalid input yields
	// a NotValid error.
	CreateCampaign(ctx context.Context, in domain.CampaignInput) (domain.Campaign, error)
	// UpdateCampaign applies a partial update. Unknown ids yield NotFound,
	// invalid fields NotValid.
	UpdateCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (domain.Campaign, error)
	// DeleteCampaign removes a campaign or returns NotFound.
	DeleteCampaign(ctx context.Context, id string) error

	// Chart returns the chart for chartType scaled to r, or NotFound.
	Chart(ctx context.Context, chartType string, r domain.DateRange) (domain.ChartData, error)

	// CreateMetrics records a new latest snapshot.
	CreateMetrics(ctx context.Context, in domain.MetricsInput) (domain.Metrics, error)
	// CreateChartData stores chart data, replacing any chart of that type.
	CreateChartData(ctx context.Context, in domain.ChartDataInput) (domain.ChartData, error)

	// RegisterUser stores a user with a hashed password.
	RegisterUser(ctx context.Context, in domain.UserInput) (domain.User, error)
	// User returns a user by id or NotFound.
	User(ctx context.Context, id string) (domain.User, error)
}

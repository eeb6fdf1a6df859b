package port

import (
	"context"

	"adpulse/internal/core/domain"
)

// DashboardRepository defines the entity store behind the dashboard. It is
// an outbound port in hexagonal architecture. Implementations must be safe
// for concurrent use and must never hand out references to stored values.
type DashboardRepository interface {
	// CreateCampaign stores a new campaign with a generated ID and the
	// current time as CreatedAt. Missing status and conversions take their
	// defaults.
	CreateCampaign(ctx context.Context, in domain.CampaignInput) (domain.Campaign, error)
	// GetCampaign returns a campaign by id or a NotFound error.
	GetCampaign(ctx context.Context, id string) (domain.Campaign, error)
	// ListCampaigns returns every campaign in insertion order.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// UpdateCampaign merges patch onto the stored campaign. ID and
	// CreatedAt are preserved. Unknown ids yield a NotFound error.
	UpdateCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (domain.Campaign, error)
	// DeleteCampaign removes a campaign and reports whether it existed.
	DeleteCampaign(ctx context.Context, id string) (bool, error)

	// LatestMetrics returns the most recently inserted snapshot, or nil
	// when none exists.
	LatestMetrics(ctx context.Context) (*domain.Metrics, error)
	// CreateMetrics stores a snapshot, making it the latest.
	CreateMetrics(ctx context.Context, in domain.MetricsInput) (domain.Metrics, error)

	// ChartData returns the chart stored for chartType, or nil.
	ChartData(ctx context.Context, chartType string) (*domain.ChartData, error)
	// CreateChartData stores a chart. A later insert of the same type
	// replaces the earlier one.
	CreateChartData(ctx context.Context, in domain.ChartDataInput) (domain.ChartData, error)

	// CreateUser stores a user. Usernames are unique; a duplicate yields
	// an AlreadyExists error.
	CreateUser(ctx context.Context, in domain.UserInput) (domain.User, error)
	// GetUser returns a user by id or a NotFound error.
	GetUser(ctx context.Context, id string) (domain.User, error)
	// GetUserByUsername returns a user by username or a NotFound error.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
}

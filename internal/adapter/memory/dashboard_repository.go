package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/juju/clock"
	"github.com/juju/errors"

	"adpulse/internal/core/domain"
)

// DashboardRepository implements port.DashboardRepository on top of plain
// maps. All state lives for the lifetime of the process.
type DashboardRepository struct {
	clock clock.Clock

	mu            sync.RWMutex
	campaigns     map[string]domain.Campaign
	campaignOrder []string
	users         map[string]domain.User
	metrics       []domain.Metrics // insertion order, last is latest
	charts        map[string]domain.ChartData
	newID         func() string
}

// NewDashboardRepository returns an empty repository stamping times from
// clk.
func NewDashboardRepository(clk clock.Clock) *DashboardRepository {
	return &DashboardRepository{
		clock:     clk,
		campaigns: make(map[string]domain.Campaign),
		users:     make(map[string]domain.User),
		charts:    make(map[string]domain.ChartData),
		newID:     uuid.NewString,
	}
}

// CreateCampaign stores a new campaign.
func (r *DashboardRepository) CreateCampaign(_ context.Context, in domain.CampaignInput) (domain.Campaign, error) {
	c := domain.Campaign{
		ID:        r.newID(),
		Name:      in.Name,
		Channel:   in.Channel,
		Spend:     in.Spend,
		ROI:       in.ROI,
		Status:    in.Status,
		CreatedAt: r.clock.Now(),
	}
	if in.Conversions != nil {
		c.Conversions = *in.Conversions
	}
	if c.Status == "" {
		c.Status = domain.StatusActive
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.putCampaign(c)
	return c, nil
}

// putCampaign inserts or replaces c. Callers hold r.mu.
func (r *DashboardRepository) putCampaign(c domain.Campaign) {
	if _, ok := r.campaigns[c.ID]; !ok {
		r.campaignOrder = append(r.campaignOrder, c.ID)
	}
	r.campaigns[c.ID] = c
}

// GetCampaign returns a campaign by id.
func (r *DashboardRepository) GetCampaign(_ context.Context, id string) (domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.campaigns[id]
	if !ok {
		return domain.Campaign{}, errors.NotFoundf("campaign %q", id)
	}
	return c, nil
}

// ListCampaigns returns all campaigns in insertion order.
func (r *DashboardRepository) ListCampaigns(_ context.Context) ([]domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Campaign, 0, len(r.campaignOrder))
	for _, id := range r.campaignOrder {
		out = append(out, r.campaigns[id])
	}
	return out, nil
}

// UpdateCampaign merges patch onto the stored campaign.
func (r *DashboardRepository) UpdateCampaign(_ context.Context, id string, patch domain.CampaignPatch) (domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return domain.Campaign{}, errors.NotFoundf("campaign %q", id)
	}
	c = patch.Apply(c)
	r.campaigns[id] = c
	return c, nil
}

// DeleteCampaign removes a campaign.
func (r *DashboardRepository) DeleteCampaign(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.campaigns[id]; !ok {
		return false, nil
	}
	delete(r.campaigns, id)
	r.campaignOrder = slices.DeleteFunc(r.campaignOrder, func(v string) bool { return v == id })
	return true, nil
}

// LatestMetrics returns the most recently inserted snapshot.
func (r *DashboardRepository) LatestMetrics(_ context.Context) (*domain.Metrics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.metrics) == 0 {
		return nil, nil
	}
	m := r.metrics[len(r.metrics)-1]
	return &m, nil
}

// CreateMetrics stores a snapshot.
func (r *DashboardRepository) CreateMetrics(_ context.Context, in domain.MetricsInput) (domain.Metrics, error) {
	m := domain.Metrics{
		ID:          r.newID(),
		Date:        in.Date,
		Revenue:     in.Revenue,
		Users:       in.Users,
		Conversions: in.Conversions,
		Growth:      in.Growth,
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics = append(r.metrics, m)
	return m, nil
}

// ChartData returns the chart stored for chartType.
func (r *DashboardRepository) ChartData(_ context.Context, chartType string) (*domain.ChartData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.charts[chartType]
	if !ok {
		return nil, nil
	}
	c.Data = c.Data.Clone()
	return &c, nil
}

// CreateChartData stores a chart under its type.
func (r *DashboardRepository) CreateChartData(_ context.Context, in domain.ChartDataInput) (domain.ChartData, error) {
	c := domain.ChartData{
		ID:        r.newID(),
		Type:      in.Type,
		Data:      in.Data.Clone(),
		CreatedAt: r.clock.Now(),
	}
	stored := c
	stored.Data = c.Data.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.charts[c.Type] = stored
	return c, nil
}

// CreateUser stores a user.
func (r *DashboardRepository) CreateUser(_ context.Context, in domain.UserInput) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == in.Username {
			return domain.User{}, errors.AlreadyExistsf("user %q", in.Username)
		}
	}
	u := domain.User{ID: r.newID(), Username: in.Username, Password: in.Password}
	r.users[u.ID] = u
	return u, nil
}

// GetUser returns a user by id.
func (r *DashboardRepository) GetUser(_ context.Context, id string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return domain.User{}, errors.NotFoundf("user %q", id)
	}
	return u, nil
}

// GetUserByUsername returns a user by username.
func (r *DashboardRepository) GetUserByUsername(_ context.Context, username string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, errors.NotFoundf("user %q", username)
}

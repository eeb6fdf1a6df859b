package usecase

import (
	"context"
	"slices"

	"github.com/juju/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
	"adpulse/internal/core/projection"
)

var campaignStatuses = []string{domain.StatusActive, domain.StatusPaused, domain.StatusCompleted}

var chartTypes = []string{domain.ChartLine, domain.ChartBar, domain.ChartPie}

// DashboardUseCase provides the query and derivation logic behind the
// dashboard. It reads base entities from the repository and scales them
// to the requested range with the projector.
type DashboardUseCase struct {
	repo      port.DashboardRepository
	projector *projection.Projector

	// bcryptCost is the work factor used when hashing user passwords.
	bcryptCost int
}

// NewDashboardUseCase creates a new usecase over repo and projector.
func NewDashboardUseCase(repo port.DashboardRepository, projector *projection.Projector) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, projector: projector, bcryptCost: bcrypt.DefaultCost}
}

// Metrics returns the latest snapshot scaled to r, or nil when none exists.
func (u *DashboardUseCase) Metrics(ctx context.Context, r domain.DateRange) (*domain.Metrics, error) {
	base, err := u.repo.LatestMetrics(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if base == nil {
		return nil, nil
	}
	m, err := u.projector.Metrics(*base, r)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return &m, nil
}

// Campaigns returns every campaign scaled to r.
func (u *DashboardUseCase) Campaigns(ctx context.Context, r domain.DateRange) ([]domain.Campaign, error) {
	list, err := u.repo.ListCampaigns(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return u.projector.Campaigns(list, r)
}

// Campaign returns a stored campaign.
func (u *DashboardUseCase) Campaign(ctx context.Context, id string) (domain.Campaign, error) {
	return u.repo.GetCampaign(ctx, id)
}

// CreateCampaign validates in, normalises its amounts and stores it.
func (u *DashboardUseCase) CreateCampaign(ctx context.Context, in domain.CampaignInput) (domain.Campaign, error) {
	if in.Name == "" {
		return domain.Campaign{}, errors.NotValidf("empty campaign name")
	}
	if in.Status != "" {
		if err := checkStatus(in.Status); err != nil {
			return domain.Campaign{}, err
		}
	}
	if in.Conversions != nil && *in.Conversions < 0 {
		return domain.Campaign{}, errors.NotValidf("negative conversions")
	}
	var err error
	if in.Spend, err = fixed2("spend", in.Spend); err != nil {
		return domain.Campaign{}, err
	}
	if in.ROI, err = fixed2("roi", in.ROI); err != nil {
		return domain.Campaign{}, err
	}
	return u.repo.CreateCampaign(ctx, in)
}

// UpdateCampaign validates the present fields of patch and applies it.
func (u *DashboardUseCase) UpdateCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (domain.Campaign, error) {
	if patch.Name != nil && *patch.Name == "" {
		return domain.Campaign{}, errors.NotValidf("empty campaign name")
	}
	if patch.Status != nil {
		if err := checkStatus(*patch.Status); err != nil {
			return domain.Campaign{}, err
		}
	}
	if patch.Conversions != nil && *patch.Conversions < 0 {
		return domain.Campaign{}, errors.NotValidf("negative conversions")
	}
	if patch.Spend != nil {
		v, err := fixed2("spend", *patch.Spend)
		if err != nil {
			return domain.Campaign{}, err
		}
		patch.Spend = &v
	}
	if patch.ROI != nil {
		v, err := fixed2("roi", *patch.ROI)
		if err != nil {
			return domain.Campaign{}, err
		}
		patch.ROI = &v
	}
	return u.repo.UpdateCampaign(ctx, id, patch)
}

// DeleteCampaign removes a campaign.
func (u *DashboardUseCase) DeleteCampaign(ctx context.Context, id string) error {
	ok, err := u.repo.DeleteCampaign(ctx, id)
	if err != nil {
		return errors.Trace(err)
	}
	if !ok {
		return errors.NotFoundf("campaign %q", id)
	}
	return nil
}

// Chart returns the chart of chartType scaled to r.
func (u *DashboardUseCase) Chart(ctx context.Context, chartType string, r domain.DateRange) (domain.ChartData, error) {
	base, err := u.repo.ChartData(ctx, chartType)
	if err != nil {
		return domain.ChartData{}, errors.Trace(err)
	}
	if base == nil {
		return domain.ChartData{}, errors.NotFoundf("chart %q", chartType)
	}
	return u.projector.Chart(*base, r), nil
}

// CreateMetrics normalises and stores a snapshot.
func (u *DashboardUseCase) CreateMetrics(ctx context.Context, in domain.MetricsInput) (domain.Metrics, error) {
	var err error
	if in.Revenue, err = fixed2("revenue", in.Revenue); err != nil {
		return domain.Metrics{}, err
	}
	if in.Conversions, err = fixed2("conversions", in.Conversions); err != nil {
		return domain.Metrics{}, err
	}
	if in.Growth, err = fixed2("growth", in.Growth); err != nil {
		return domain.Metrics{}, err
	}
	return u.repo.CreateMetrics(ctx, in)
}

// CreateChartData stores a chart after checking its type and that every
// dataset lines up with the labels.
func (u *DashboardUseCase) CreateChartData(ctx context.Context, in domain.ChartDataInput) (domain.ChartData, error) {
	if !slices.Contains(chartTypes, in.Type) {
		return domain.ChartData{}, errors.NotValidf("chart type %q", in.Type)
	}
	if len(in.Data.Datasets) == 0 {
		return domain.ChartData{}, errors.NotValidf("chart without datasets")
	}
	if err := in.Data.Validate(); err != nil {
		return domain.ChartData{}, errors.Trace(err)
	}
	return u.repo.CreateChartData(ctx, in)
}

// RegisterUser hashes the password and stores the user.
func (u *DashboardUseCase) RegisterUser(ctx context.Context, in domain.UserInput) (domain.User, error) {
	if in.Username == "" {
		return domain.User{}, errors.NotValidf("empty username")
	}
	if in.Password == "" {
		return domain.User{}, errors.NotValidf("empty password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.bcryptCost)
	if err != nil {
		return domain.User{}, errors.Annotate(err, "hashing password")
	}
	in.Password = string(hash)
	return u.repo.CreateUser(ctx, in)
}

// User returns a user by id.
func (u *DashboardUseCase) User(ctx context.Context, id string) (domain.User, error) {
	return u.repo.GetUser(ctx, id)
}

func checkStatus(status string) error {
	if !slices.Contains(campaignStatuses, status) {
		return errors.NotValidf("campaign status %q", status)
	}
	return nil
}

// fixed2 parses a decimal string and renders it with two fraction digits.
func fixed2(field, value string) (string, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return "", errors.NewNotValid(err, field)
	}
	return d.StringFixed(2), nil
}

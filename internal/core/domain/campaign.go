package domain

import "time"

// Campaign statuses accepted by the API.
const (
	StatusActive    = "active"
	StatusPaused    = "paused"
	StatusCompleted = "completed"
)

// Campaign represents a marketing campaign shown in the dashboard table.
// Spend and ROI are fixed-point strings with two fraction digits.
type Campaign struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Channel     string    `json:"channel"`
	Spend       string    `json:"spend"`
	Conversions int64     `json:"conversions"`
	ROI         string    `json:"roi"`
	Status      string    `json:"status"` // active, paused, completed
	CreatedAt   time.Time `json:"createdAt"`
}

// CampaignInput is the payload used to create a campaign. ID and CreatedAt
// are assigned by the store.
type CampaignInput struct {
	Name        string `json:"name"`
	Channel     string `json:"channel"`
	Spend       string `json:"spend"`
	Conversions *int64 `json:"conversions,omitempty"`
	ROI         string `json:"roi"`
	Status      string `json:"status,omitempty"`
}

// CampaignPatch carries the fields of a partial update. A nil field is left
// untouched.
type CampaignPatch struct {
	Name        *string `json:"name,omitempty"`
	Channel     *string `json:"channel,omitempty"`
	Spend       *string `json:"spend,omitempty"`
	Conversions *int64  `json:"conversions,omitempty"`
	ROI         *string `json:"roi,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// Apply merges the patch onto c. ID and CreatedAt are never touched.
func (p CampaignPatch) Apply(c Campaign) Campaign {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Channel != nil {
		c.Channel = *p.Channel
	}
	if p.Spend != nil {
		c.Spend = *p.Spend
	}
	if p.Conversions != nil {
		c.Conversions = *p.Conversions
	}
	if p.ROI != nil {
		c.ROI = *p.ROI
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	return c
}

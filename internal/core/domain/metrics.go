package domain

import "time"

// Metrics is an aggregate snapshot rendered by the dashboard metric cards.
// Revenue, Conversions and Growth are decimal strings.
type Metrics struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Revenue     string    `json:"revenue"`
	Users       int64     `json:"users"`
	Conversions string    `json:"conversions"` // percentage
	Growth      string    `json:"growth"`      // percentage
}

// MetricsInput is the payload used to record a new snapshot.
type MetricsInput struct {
	Date        time.Time `json:"date"`
	Revenue     string    `json:"revenue"`
	Users       int64     `json:"users"`
	Conversions string    `json:"conversions"`
	Growth      string    `json:"growth"`
}

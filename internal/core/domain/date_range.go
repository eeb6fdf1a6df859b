package domain

import (
	"time"

	"github.com/juju/errors"
)

const dateLayout = time.DateOnly

// DateRange is an optional reporting window. A range with either end
// missing is incomplete and leaves projected values untouched.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Complete reports whether both ends of the range are set.
func (r DateRange) Complete() bool {
	return r.From != nil && r.To != nil
}

// ParseDateRange parses the raw from/to query values. Empty values are
// treated as absent. Both YYYY-MM-DD and RFC 3339 are accepted.
func ParseDateRange(from, to string) (DateRange, error) {
	var (
		r   DateRange
		err error
	)
	if r.From, err = parseDate(from); err != nil {
		return DateRange{}, errors.NewNotValid(err, "invalid 'from' date")
	}
	if r.To, err = parseDate(to); err != nil {
		return DateRange{}, errors.NewNotValid(err, "invalid 'to' date")
	}
	return r, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return nil, err
		}
	}
	return &t, nil
}

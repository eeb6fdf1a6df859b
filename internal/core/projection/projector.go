// Package projection scales base dashboard figures to a reporting window.
//
// The window length is turned into a multiplier relative to a 30 day
// baseline and applied field by field. Decimal fields are rounded to two
// fraction digits, integer fields are floored. Line and bar chart points
// also receive random jitter.
package projection

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/juju/errors"
	"github.com/shopspring/decimal"

	"adpulse/internal/core/domain"
)

const (
	baselineDays = 30
	msPerDay     = float64(24 * time.Hour / time.Millisecond)
)

// Rand is the source of chart jitter. Float64 returns a value in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

// linear is the factor base + m*slope applied to a field for multiplier m.
type linear struct {
	base, slope decimal.Decimal
}

func lin(base, slope string) linear {
	return linear{base: decimal.RequireFromString(base), slope: decimal.RequireFromString(slope)}
}

func (l linear) at(m decimal.Decimal) decimal.Decimal {
	return l.base.Add(m.Mul(l.slope))
}

var (
	campaignSpend = lin("0", "1")
	campaignROI   = lin("0.8", "0.4")

	metricsRevenue     = lin("0", "1")
	metricsConversions = lin("0.5", "0.5")
	metricsGrowth      = lin("0.6", "0.8")
)

// jitter is the random band lo + rand*span applied to each chart point.
type jitter struct {
	lo, span float64
}

var chartJitter = map[string]jitter{
	domain.ChartLine: {lo: 0.7, span: 0.6},
	domain.ChartBar:  {lo: 0.8, span: 0.4},
}

// Multiplier is the ratio of a window length in days to the 30 day
// baseline. It keeps the day count so integer scaling stays exact.
type Multiplier struct {
	Days int64
}

// MultiplierFor returns the multiplier for r. The second result is false
// when the range is incomplete.
func MultiplierFor(r domain.DateRange) (Multiplier, bool) {
	if !r.Complete() {
		return Multiplier{}, false
	}
	ms := r.To.Sub(*r.From).Milliseconds()
	return Multiplier{Days: int64(math.Ceil(float64(ms) / msPerDay))}, true
}

// Decimal returns days/30.
func (m Multiplier) Decimal() decimal.Decimal {
	return decimal.NewFromInt(m.Days).Div(decimal.NewFromInt(baselineDays))
}

// Float64 returns days/30.
func (m Multiplier) Float64() float64 {
	return float64(m.Days) / baselineDays
}

// floor returns floor(n * days / 30).
func (m Multiplier) floor(n int64) int64 {
	return decimal.NewFromInt(n).
		Mul(decimal.NewFromInt(m.Days)).
		Div(decimal.NewFromInt(baselineDays)).
		Floor().
		IntPart()
}

// Projector applies range scaling. It is safe for concurrent use.
type Projector struct {
	mu  sync.Mutex
	rnd Rand
}

// New returns a projector drawing jitter from rnd.
func New(rnd Rand) *Projector {
	return &Projector{rnd: rnd}
}

// NewSeeded returns a projector backed by a PCG source. A zero seed is
// replaced by the current time.
func NewSeeded(seed uint64) *Projector {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return New(rand.New(rand.NewPCG(seed, seed>>1|1)))
}

func (p *Projector) float64() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rnd.Float64()
}

// Campaign returns c scaled to r. The input is not modified.
func (p *Projector) Campaign(c domain.Campaign, r domain.DateRange) (domain.Campaign, error) {
	m, ok := MultiplierFor(r)
	if !ok {
		return c, nil
	}
	md := m.Decimal()

	spend, err := scale(c.Spend, campaignSpend.at(md))
	if err != nil {
		return domain.Campaign{}, errors.Annotatef(err, "campaign %q spend", c.ID)
	}
	roi, err := scale(c.ROI, campaignROI.at(md))
	if err != nil {
		return domain.Campaign{}, errors.Annotatef(err, "campaign %q roi", c.ID)
	}
	c.Spend = spend
	c.ROI = roi
	c.Conversions = m.floor(c.Conversions)
	return c, nil
}

// Campaigns maps Campaign over list, returning a new slice.
func (p *Projector) Campaigns(list []domain.Campaign, r domain.DateRange) ([]domain.Campaign, error) {
	out := make([]domain.Campaign, 0, len(list))
	for _, c := range list {
		pc, err := p.Campaign(c, r)
		if err != nil {
			return nil, err
		}
		out = append(out, pc)
	}
	return out, nil
}

// Metrics returns s scaled to r. The input is not modified.
func (p *Projector) Metrics(s domain.Metrics, r domain.DateRange) (domain.Metrics, error) {
	m, ok := MultiplierFor(r)
	if !ok {
		return s, nil
	}
	md := m.Decimal()

	var err error
	fields := []struct {
		name   string
		value  *string
		factor linear
	}{
		{"revenue", &s.Revenue, metricsRevenue},
		{"conversions", &s.Conversions, metricsConversions},
		{"growth", &s.Growth, metricsGrowth},
	}
	for _, f := range fields {
		if *f.value, err = scale(*f.value, f.factor.at(md)); err != nil {
			return domain.Metrics{}, errors.Annotatef(err, "metrics %q %s", s.ID, f.name)
		}
	}
	s.Users = m.floor(s.Users)
	return s, nil
}

// Chart returns c with its points scaled to r. Types without a jitter band
// are returned unchanged. The result never shares point slices with c.
func (p *Projector) Chart(c domain.ChartData, r domain.DateRange) domain.ChartData {
	c.Data = c.Data.Clone()
	m, ok := MultiplierFor(r)
	if !ok {
		return c
	}
	j, ok := chartJitter[c.Type]
	if !ok {
		return c
	}
	mf := m.Float64()
	for i := range c.Data.Datasets {
		points := c.Data.Datasets[i].Data
		for k, v := range points {
			points[k] = math.Floor(v * mf * (j.lo + p.float64()*j.span))
		}
	}
	return c
}

func scale(value string, factor decimal.Decimal) (string, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return "", errors.Trace(err)
	}
	return d.Mul(factor).StringFixed(2), nil
}

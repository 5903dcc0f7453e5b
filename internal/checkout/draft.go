package checkout

import (
	"github.com/shopspring/decimal"

	"smmstore/internal/domain"
	"smmstore/internal/pricing"
)

// Draft is the in-progress order for one service. It lives for a single
// checkout session and is never persisted.
type Draft struct {
	service  domain.Service
	url      string
	quantity int
}

func NewDraft(s domain.Service) *Draft {
	return &Draft{service: s, quantity: s.MinQuantity}
}

// SetQuantity clamps raw into [MinQuantity, MaxQuantity]. Out-of-range input
// is silently corrected, there is no error path.
func (d *Draft) SetQuantity(raw int) int {
	q := raw
	if q < d.service.MinQuantity {
		q = d.service.MinQuantity
	}
	if q > d.service.MaxQuantity {
		q = d.service.MaxQuantity
	}
	d.quantity = q
	return q
}

// SetURL stores the target verbatim. Format is deliberately not validated,
// only non-emptiness is checked at submission time.
func (d *Draft) SetURL(raw string) {
	d.url = raw
}

func (d *Draft) Service() domain.Service { return d.service }
func (d *Draft) URL() string             { return d.url }
func (d *Draft) Quantity() int           { return d.quantity }

// Total is recomputed on every call so it can never go stale across a
// quantity change.
func (d *Draft) Total() decimal.Decimal {
	return pricing.Total(d.service, d.quantity)
}

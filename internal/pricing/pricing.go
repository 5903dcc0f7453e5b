package pricing

import (
	"github.com/shopspring/decimal"

	"smmstore/internal/domain"
)

// Total computes the price for quantity units of a service: the service price
// is per 100 for likes and per 1000 for everything else. Pure and total; no
// rounding here, presentation rounds for display only.
func Total(s domain.Service, quantity int) decimal.Decimal {
	unit := decimal.NewFromInt(s.Category.PricingUnit())
	return decimal.NewFromInt(int64(quantity)).Div(unit).Mul(s.Price)
}

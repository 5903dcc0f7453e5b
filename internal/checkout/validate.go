package checkout

import (
	"errors"

	"github.com/shopspring/decimal"

	"smmstore/internal/domain"
)

var (
	ErrMissingURL       = errors.New("target url is required")
	ErrNotAuthenticated = errors.New("authentication required")
)

// ValidatedOrder is an immutable snapshot of a draft that passed submission
// checks. Only a ValidatedOrder can produce a PaymentRequest.
type ValidatedOrder struct {
	Service  domain.Service
	URL      string
	Quantity int
	Total    decimal.Decimal
}

// Validate gates a draft before payment. Checks run in order and stop at the
// first failure: URL presence, then authentication. Quantity bounds are the
// draft's own invariant and are not re-checked here.
func Validate(d *Draft, auth domain.AuthState) (ValidatedOrder, error) {
	if d.URL() == "" {
		return ValidatedOrder{}, ErrMissingURL
	}
	if !auth.Authenticated {
		return ValidatedOrder{}, ErrNotAuthenticated
	}
	return ValidatedOrder{
		Service:  d.Service(),
		URL:      d.URL(),
		Quantity: d.Quantity(),
		Total:    d.Total(),
	}, nil
}

// PaymentRequest builds the one-shot submission for this order.
func (o ValidatedOrder) PaymentRequest(auth domain.AuthState, method string) domain.PaymentRequest {
	return domain.PaymentRequest{
		Amount:    o.Total,
		ServiceID: o.Service.ID,
		Quantity:  o.Quantity,
		URL:       o.URL,
		UserData: domain.UserData{
			Name:  auth.Name,
			Email: auth.Email,
		},
		PaymentMethod: method,
	}
}

package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UserData struct {
	Name  string
	Email string
}

// PaymentRequest is a one-shot submission built from a validated order.
// It is never mutated or retried after construction.
type PaymentRequest struct {
	Amount        decimal.Decimal
	ServiceID     string
	Quantity      int
	URL           string
	UserData      UserData
	PaymentMethod string
}

type OutcomeStatus string

const (
	OutcomeCompleted OutcomeStatus = "completed"
	OutcomeFailed    OutcomeStatus = "failed"
)

// PaymentOutcome is the terminal result of one submission. TransactionID is
// empty when the request was rejected before reaching the gateway.
type PaymentOutcome struct {
	Success       bool
	Message       string
	TransactionID string
	Status        OutcomeStatus
}

type TransactionStatus string

const (
	TransactionProcessing TransactionStatus = "PROCESSING"
	TransactionCompleted  TransactionStatus = "COMPLETED"
	TransactionFailed     TransactionStatus = "FAILED"
)

// Transaction is the best-effort record of a submission. Failing to write it
// never fails the payment itself.
type Transaction struct {
	ID            uuid.UUID
	TransactionID string
	Amount        decimal.Decimal
	ServiceID     string
	Quantity      int
	URL           string
	UserEmail     string
	PaymentMethod string
	Status        TransactionStatus
	Message       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ConsultationRequest is a callback request from the consultation form.
type ConsultationRequest struct {
	Name      string
	Contact   string
	Platform  Platform
	Message   string
	CreatedAt time.Time
}

// AuthState is what the checkout validator knows about the caller. Session
// management itself lives behind the identity facade.
type AuthState struct {
	Authenticated bool
	Name          string
	Email         string
}

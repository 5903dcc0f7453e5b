package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"smmstore/internal/domain"
	"smmstore/internal/infrastructure/payment"
)

var ErrMissingConsultationFields = errors.New("name, contact and platform are required")

// TransactionRecorder persists submission records. All writes are best-effort:
// a failure is logged and the payment proceeds regardless.
type TransactionRecorder interface {
	Create(ctx context.Context, t *domain.Transaction) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus, transactionID, message string) error
}

type ConsultationRecorder interface {
	Create(ctx context.Context, r *domain.ConsultationRequest) error
}

// CheckoutService drives one submission through the payment provider and keeps
// the best-effort paper trail around it. Either recorder may be nil, in which
// case recording is skipped entirely.
type CheckoutService struct {
	provider      payment.Provider
	transactions  TransactionRecorder
	consultations ConsultationRecorder
}

func NewCheckoutService(provider payment.Provider, transactions TransactionRecorder, consultations ConsultationRecorder) *CheckoutService {
	return &CheckoutService{
		provider:      provider,
		transactions:  transactions,
		consultations: consultations,
	}
}

// Submit runs exactly one payment attempt. No retry, no cancellation once the
// provider has the request; errors from the record store never surface to the
// caller.
func (s *CheckoutService) Submit(ctx context.Context, req domain.PaymentRequest) domain.PaymentOutcome {
	recordID := s.beginRecord(ctx, req)

	outcome := s.provider.Submit(ctx, req)

	s.settleRecord(ctx, recordID, outcome)
	return outcome
}

// RequestConsultation validates and stores a callback request. A store failure
// is ignored: the request was still seen by a human-facing channel, so the
// caller gets a success either way.
func (s *CheckoutService) RequestConsultation(ctx context.Context, req domain.ConsultationRequest) error {
	if req.Name == "" || req.Contact == "" || req.Platform == "" {
		return ErrMissingConsultationFields
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	if s.consultations != nil {
		if err := s.consultations.Create(ctx, &req); err != nil {
			log.Printf("[checkout] consultation record failed, ignoring: %v", err)
		}
	}
	return nil
}

func (s *CheckoutService) beginRecord(ctx context.Context, req domain.PaymentRequest) uuid.UUID {
	if s.transactions == nil {
		return uuid.Nil
	}
	now := time.Now()
	t := &domain.Transaction{
		ID:            uuid.New(),
		Amount:        req.Amount,
		ServiceID:     req.ServiceID,
		Quantity:      req.Quantity,
		URL:           req.URL,
		UserEmail:     req.UserData.Email,
		PaymentMethod: req.PaymentMethod,
		Status:        domain.TransactionProcessing,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.transactions.Create(ctx, t); err != nil {
		log.Printf("[checkout] transaction record failed, ignoring: %v", err)
		return uuid.Nil
	}
	return t.ID
}

func (s *CheckoutService) settleRecord(ctx context.Context, id uuid.UUID, outcome domain.PaymentOutcome) {
	if s.transactions == nil || id == uuid.Nil {
		return
	}
	status := domain.TransactionFailed
	if outcome.Success {
		status = domain.TransactionCompleted
	}
	if err := s.transactions.UpdateStatus(ctx, id, status, outcome.TransactionID, outcome.Message); err != nil {
		log.Printf("[checkout] transaction settle failed, ignoring: %v", err)
	}
}

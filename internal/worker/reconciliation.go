package worker

import (
	"context"
	"log"
	"time"

	"smmstore/internal/domain"
	"smmstore/internal/repo"
)

// StatusChecker asks the gateway what actually happened to a transaction.
type StatusChecker interface {
	CheckStatus(ctx context.Context, transactionID string) (charged bool, found bool)
}

// ReconciliationWorker settles transaction records left in PROCESSING, e.g.
// after a crash between submitting to the gateway and writing the outcome.
type ReconciliationWorker struct {
	transactions repo.TransactionRepo
	gateway      StatusChecker
	interval     time.Duration
	olderThan    time.Duration
}

func NewReconciliationWorker(transactions repo.TransactionRepo, gateway StatusChecker, interval, olderThan time.Duration) *ReconciliationWorker {
	return &ReconciliationWorker{
		transactions: transactions,
		gateway:      gateway,
		interval:     interval,
		olderThan:    olderThan,
	}
}

func (rw *ReconciliationWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(rw.interval)
	defer ticker.Stop()

	log.Println("[worker] reconciliation started")

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := rw.process(ctx); err != nil {
				log.Printf("[worker] reconciliation failed: %v", err)
			}
		}
	}
}

func (rw *ReconciliationWorker) process(ctx context.Context) error {
	stuck, err := rw.transactions.FindProcessingBefore(ctx, time.Now().Add(-rw.olderThan), 100)
	if err != nil {
		return err
	}
	if len(stuck) == 0 {
		return nil
	}

	log.Printf("[worker] found %d stuck transactions", len(stuck))

	for _, t := range stuck {
		status, message := rw.settle(ctx, t)
		if err := rw.transactions.UpdateStatus(ctx, t.ID, status, t.TransactionID, message); err != nil {
			log.Printf("[worker] failed to settle transaction %s: %v", t.ID, err)
		}
	}
	return nil
}

// settle decides the terminal status from the gateway's point of view, the
// source of truth for whether money moved.
func (rw *ReconciliationWorker) settle(ctx context.Context, t domain.Transaction) (domain.TransactionStatus, string) {
	// No transaction id means the request never reached the gateway.
	if t.TransactionID == "" {
		return domain.TransactionFailed, "payment never reached the gateway"
	}
	charged, found := rw.gateway.CheckStatus(ctx, t.TransactionID)
	if !found {
		return domain.TransactionFailed, "transaction unknown to the gateway"
	}
	if charged {
		log.Printf("[worker] ghost transaction %s settled as COMPLETED", t.TransactionID)
		return domain.TransactionCompleted, "settled by reconciliation"
	}
	return domain.TransactionFailed, "declined, settled by reconciliation"
}

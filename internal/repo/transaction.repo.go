package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"smmstore/internal/domain"
)

type TransactionRepo interface {
	Create(ctx context.Context, t *domain.Transaction) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus, transactionID, message string) error
	FindByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	FindProcessingBefore(ctx context.Context, before time.Time, limit int) ([]domain.Transaction, error)
}

type transactionRepo struct {
	db *sql.DB
}

func NewTransactionRepo(db *sql.DB) TransactionRepo {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) Create(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO transactions (id, txn_id, amount, service_id, quantity, url, user_email, payment_method, status, message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.TransactionID, t.Amount, t.ServiceID, t.Quantity, t.URL,
		t.UserEmail, t.PaymentMethod, t.Status, t.Message, t.CreatedAt, t.UpdatedAt,
	)
	return err
}

func (r *transactionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus, transactionID, message string) error {
	query := `
		UPDATE transactions
		SET status = $2,
		    txn_id = COALESCE(NULLIF($3, ''), txn_id),
		    message = $4,
		    updated_at = now()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, id, status, transactionID, message)
	return err
}

func (r *transactionRepo) FindByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT id, txn_id, amount, service_id, quantity, url, user_email, payment_method, status, message, created_at, updated_at
		FROM transactions WHERE txn_id = $1`
	row := r.db.QueryRowContext(ctx, query, transactionID)
	var t domain.Transaction
	err := row.Scan(
		&t.ID, &t.TransactionID, &t.Amount, &t.ServiceID, &t.Quantity, &t.URL,
		&t.UserEmail, &t.PaymentMethod, &t.Status, &t.Message, &t.CreatedAt, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil // not found
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *transactionRepo) FindProcessingBefore(ctx context.Context, before time.Time, limit int) ([]domain.Transaction, error) {
	query := `SELECT id, txn_id, amount, service_id, quantity, url, user_email, payment_method, status, message, created_at, updated_at
		FROM transactions
		WHERE status = $1 AND updated_at < $2
		LIMIT $3`
	rows, err := r.db.QueryContext(ctx, query, domain.TransactionProcessing, before, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(
			&t.ID, &t.TransactionID, &t.Amount, &t.ServiceID, &t.Quantity, &t.URL,
			&t.UserEmail, &t.PaymentMethod, &t.Status, &t.Message, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

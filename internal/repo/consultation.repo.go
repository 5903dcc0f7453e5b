package repo

import (
	"context"
	"database/sql"

	"smmstore/internal/domain"
)

type ConsultationRepo interface {
	Create(ctx context.Context, r *domain.ConsultationRequest) error
}

type consultationRepo struct {
	db *sql.DB
}

func NewConsultationRepo(db *sql.DB) ConsultationRepo {
	return &consultationRepo{db: db}
}

func (r *consultationRepo) Create(ctx context.Context, c *domain.ConsultationRequest) error {
	query := `INSERT INTO consultation_requests (name, contact, platform, message, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, c.Name, c.Contact, c.Platform, c.Message, c.CreatedAt)
	return err
}

package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/aerobook/internal/domain"
)

// EnquiryRepository encapsulates contact-enquiry persistence.
type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *domain.Enquiry) error
	GetByID(ctx context.Context, id string) (*domain.Enquiry, error)
}

type enquiryRepository struct {
	pool *pgxpool.Pool
}

// NewEnquiryRepository returns a Postgres-backed implementation.
func NewEnquiryRepository(pool *pgxpool.Pool) EnquiryRepository {
	return &enquiryRepository{pool: pool}
}

func (r *enquiryRepository) Create(ctx context.Context, enquiry *domain.Enquiry) error {
	const query = `
        INSERT INTO enquiries (name, email, subject, message, status)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		enquiry.Name,
		enquiry.Email,
		enquiry.Subject,
		enquiry.Message,
		enquiry.Status,
	).Scan(&enquiry.ID, &enquiry.CreatedAt)
}

func (r *enquiryRepository) GetByID(ctx context.Context, id string) (*domain.Enquiry, error) {
	const query = `
        SELECT id, name, email, subject, message, status, created_at
        FROM enquiries WHERE id=$1`
	var enquiry domain.Enquiry
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&enquiry.ID,
		&enquiry.Name,
		&enquiry.Email,
		&enquiry.Subject,
		&enquiry.Message,
		&enquiry.Status,
		&enquiry.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &enquiry, nil
}

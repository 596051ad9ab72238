package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

// Repository persists invoice records. FindByOwner returns every invoice for
// the owner with fields already normalized; it applies no date or status
// filtering of its own.
type Repository interface {
	Insert(ctx context.Context, invoice *Invoice) error
	Update(ctx context.Context, invoice *Invoice) error
	Delete(ctx context.Context, ownerID, id snowflake.ID) error
	FindByID(ctx context.Context, ownerID, id snowflake.ID) (*Invoice, error)
	FindByOwner(ctx context.Context, ownerID snowflake.ID) ([]Invoice, error)
}

// Service exposes invoice CRUD to the HTTP layer. Every mutation evicts the
// owner's cached reports.
type Service interface {
	Create(ctx context.Context, invoice *Invoice) error
	Update(ctx context.Context, invoice *Invoice) error
	Delete(ctx context.Context, ownerID, id snowflake.ID) error
	Get(ctx context.Context, ownerID, id snowflake.ID) (*Invoice, error)
	List(ctx context.Context, ownerID snowflake.ID) ([]Invoice, error)
}

var (
	ErrNotFound      = errors.New("invoice_not_found")
	ErrInvalidOwner  = errors.New("invalid_owner")
	ErrInvalidStatus = errors.New("invalid_status")
	ErrInvalidAmount = errors.New("invalid_amount")
	ErrMissingIssue  = errors.New("missing_issue_date")
)

package domain

import (
	"context"
	"errors"

	invoicedomain "github.com/a13312860897-create/invomate-sub001/internal/invoice/domain"
	"github.com/bwmarrin/snowflake"
)

// InvoiceRepository is the persistence collaborator. FindByOwner returns
// every invoice for the owner as a flat, already-tenant-scoped list with the
// amount field normalized; it applies no date or status filtering itself.
type InvoiceRepository interface {
	FindByOwner(ctx context.Context, ownerID snowflake.ID) ([]invoicedomain.Invoice, error)
}

// Service is the reporting entry point used by the HTTP layer.
type Service interface {
	// GetUnifiedReport validates its arguments, serves a fresh-enough cached
	// report when one exists, and otherwise recomputes from the repository.
	GetUnifiedReport(ctx context.Context, ownerID snowflake.ID, monthKey string) (UnifiedReport, error)

	// Invalidate evicts cached reports for the owner. An empty monthKey
	// evicts every month.
	Invalidate(ownerID snowflake.ID, monthKey string) error
}

var (
	ErrInvalidOwner          = errors.New("invalid_owner")
	ErrRepositoryUnavailable = errors.New("repository_unavailable")
	ErrInternalAggregation   = errors.New("internal_aggregation_error")
)

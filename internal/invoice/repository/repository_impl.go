package repository

import (
	"context"
	"errors"

	"github.com/a13312860897-create/invomate-sub001/internal/invoice/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB *gorm.DB
}

type repo struct {
	db *gorm.DB
}

func Provide(p Params) domain.Repository {
	return &repo{db: p.DB}
}

func (r *repo) Insert(ctx context.Context, invoice *domain.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *repo) Update(ctx context.Context, invoice *domain.Invoice) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("owner_id = ? AND id = ?", invoice.OwnerID, invoice.ID).
		Updates(map[string]any{
			"client_id":  invoice.ClientID,
			"number":     invoice.Number,
			"status":     invoice.Status,
			"amount":     invoice.Amount,
			"currency":   invoice.Currency,
			"issue_date": invoice.IssueDate,
			"due_date":   invoice.DueDate,
			"paid_date":  invoice.PaidDate,
			"metadata":   invoice.Metadata,
			"updated_at": invoice.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, ownerID, id snowflake.ID) error {
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Delete(&domain.Invoice{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) FindByID(ctx context.Context, ownerID, id snowflake.ID) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	normalizeAmount(&invoice)
	return &invoice, nil
}

func (r *repo) FindByOwner(ctx context.Context, ownerID snowflake.ID) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("issue_date asc, id asc").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		normalizeAmount(&invoices[i])
	}
	return invoices, nil
}

// normalizeAmount folds the historical amount aliases into the canonical
// field. Rows migrated from earlier schema generations carry a zero amount
// with total_amount or total populated; consumers must only ever see Amount.
func normalizeAmount(invoice *domain.Invoice) {
	if invoice.Amount == 0 {
		switch {
		case invoice.LegacyTotalAmount != nil:
			invoice.Amount = *invoice.LegacyTotalAmount
		case invoice.LegacyTotal != nil:
			invoice.Amount = *invoice.LegacyTotal
		}
	}
	invoice.LegacyTotalAmount = nil
	invoice.LegacyTotal = nil
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/a13312860897-create/invomate-sub001/internal/clock"
	"github.com/a13312860897-create/invomate-sub001/internal/invoice/domain"
	reportingdomain "github.com/a13312860897-create/invomate-sub001/internal/reporting/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Insert(ctx context.Context, invoice *domain.Invoice) error {
	return m.Called(ctx, invoice).Error(0)
}

func (m *mockRepository) Update(ctx context.Context, invoice *domain.Invoice) error {
	return m.Called(ctx, invoice).Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, ownerID, id snowflake.ID) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

func (m *mockRepository) FindByID(ctx context.Context, ownerID, id snowflake.ID) (*domain.Invoice, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *mockRepository) FindByOwner(ctx context.Context, ownerID snowflake.ID) ([]domain.Invoice, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

type mockReporting struct {
	mock.Mock
}

func (m *mockReporting) GetUnifiedReport(ctx context.Context, ownerID snowflake.ID, monthKey string) (reportingdomain.UnifiedReport, error) {
	args := m.Called(ctx, ownerID, monthKey)
	return args.Get(0).(reportingdomain.UnifiedReport), args.Error(1)
}

func (m *mockReporting) Invalidate(ownerID snowflake.ID, monthKey string) error {
	return m.Called(ownerID, monthKey).Error(0)
}

func newTestService(repo domain.Repository, reporting reportingdomain.Service) domain.Service {
	node, _ := snowflake.NewNode(1)
	return NewService(Params{
		Repo:      repo,
		Reporting: reporting,
		Log:       zap.NewNop(),
		Clock:     clock.NewFakeClock(time.Date(2025, 9, 20, 10, 0, 0, 0, time.UTC)),
		GenID:     node,
	})
}

func datePtr(t time.Time) *time.Time { return &t }

func TestCreateEvictsTouchedMonths(t *testing.T) {
	repo := &mockRepository{}
	reporting := &mockReporting{}
	svc := newTestService(repo, reporting)

	repo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	reporting.On("Invalidate", snowflake.ID(1), "2025-08").Return(nil)
	reporting.On("Invalidate", snowflake.ID(1), "2025-09").Return(nil)

	invoice := domain.Invoice{
		OwnerID:   1,
		Status:    domain.StatusPaid,
		Amount:    75,
		IssueDate: time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC),
		PaidDate:  datePtr(time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC)),
	}
	assert.NoError(t, svc.Create(context.Background(), &invoice))

	assert.NotZero(t, invoice.ID)
	assert.Equal(t, "EUR", invoice.Currency)
	reporting.AssertCalled(t, "Invalidate", snowflake.ID(1), "2025-08")
	reporting.AssertCalled(t, "Invalidate", snowflake.ID(1), "2025-09")
}

func TestCreateDefaultsIssueDateAndStatus(t *testing.T) {
	repo := &mockRepository{}
	reporting := &mockReporting{}
	svc := newTestService(repo, reporting)

	repo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	reporting.On("Invalidate", mock.Anything, mock.Anything).Return(nil)

	invoice := domain.Invoice{OwnerID: 1, Amount: 10}
	assert.NoError(t, svc.Create(context.Background(), &invoice))
	assert.Equal(t, domain.StatusDraft, invoice.Status)
	assert.Equal(t, time.Date(2025, 9, 20, 10, 0, 0, 0, time.UTC), invoice.IssueDate)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	repo := &mockRepository{}
	reporting := &mockReporting{}
	svc := newTestService(repo, reporting)
	ctx := context.Background()

	err := svc.Create(ctx, &domain.Invoice{OwnerID: 0, Amount: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidOwner)

	err = svc.Create(ctx, &domain.Invoice{OwnerID: 1, Status: "archived", Amount: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	err = svc.Create(ctx, &domain.Invoice{OwnerID: 1, Amount: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	reporting.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestUpdateRequiresIssueDate(t *testing.T) {
	repo := &mockRepository{}
	reporting := &mockReporting{}
	svc := newTestService(repo, reporting)

	invoice := domain.Invoice{ID: 42, OwnerID: 1, Status: domain.StatusSent, Amount: 50}
	err := svc.Update(context.Background(), &invoice)
	assert.ErrorIs(t, err, domain.ErrMissingIssue)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateEvictsAllMonths(t *testing.T) {
	repo := &mockRepository{}
	reporting := &mockReporting{}
	svc := newTestService(repo, reporting)

	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	reporting.On("Invalidate", snowflake.ID(1), "").Return(nil)

	invoice := domain.Invoice{
		ID:        42,
		OwnerID:   1,
		Status:    domain.StatusSent,
		Amount:    50,
		IssueDate: time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, svc.Update(context.Background(), &invoice))
	reporting.AssertCalled(t, "Invalidate", snowflake.ID(1), "")
}

func TestDeleteEvictsAllMonths(t *testing.T) {
	repo := &mockRepository{}
	reporting := &mockReporting{}
	svc := newTestService(repo, reporting)

	repo.On("Delete", mock.Anything, snowflake.ID(1), snowflake.ID(42)).Return(nil)
	reporting.On("Invalidate", snowflake.ID(1), "").Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 1, 42))
	reporting.AssertCalled(t, "Invalidate", snowflake.ID(1), "")
}

func TestDeleteFailureSkipsEviction(t *testing.T) {
	repo := &mockRepository{}
	reporting := &mockReporting{}
	svc := newTestService(repo, reporting)

	repo.On("Delete", mock.Anything, snowflake.ID(1), snowflake.ID(42)).Return(domain.ErrNotFound)

	err := svc.Delete(context.Background(), 1, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	reporting.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

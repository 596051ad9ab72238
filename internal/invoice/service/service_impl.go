package service

import (
	"context"

	"github.com/a13312860897-create/invomate-sub001/internal/clock"
	"github.com/a13312860897-create/invomate-sub001/internal/invoice/domain"
	"github.com/a13312860897-create/invomate-sub001/internal/monthkey"
	reportingdomain "github.com/a13312860897-create/invomate-sub001/internal/reporting/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Repo      domain.Repository
	Reporting reportingdomain.Service
	Log       *zap.Logger
	Clock     clock.Clock
	GenID     *snowflake.Node
}

type Service struct {
	repo      domain.Repository
	reporting reportingdomain.Service
	log       *zap.Logger
	clock     clock.Clock
	genID     *snowflake.Node
}

func NewService(p Params) domain.Service {
	return &Service{
		repo:      p.Repo,
		reporting: p.Reporting,
		log:       p.Log.Named("invoice.service"),
		clock:     p.Clock,
		genID:     p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, invoice *domain.Invoice) error {
	if err := validate(invoice); err != nil {
		return err
	}

	now := s.clock.Now().UTC()
	invoice.ID = s.genID.Generate()
	if invoice.IssueDate.IsZero() {
		invoice.IssueDate = now
	}
	if invoice.Currency == "" {
		invoice.Currency = "EUR"
	}
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	if err := s.repo.Insert(ctx, invoice); err != nil {
		return err
	}

	s.evictReportMonths(invoice)
	return nil
}

func (s *Service) Update(ctx context.Context, invoice *domain.Invoice) error {
	if err := validate(invoice); err != nil {
		return err
	}
	// updates overwrite issue_date, so unlike Create there is no default here
	if invoice.IssueDate.IsZero() {
		return domain.ErrMissingIssue
	}

	invoice.UpdatedAt = s.clock.Now().UTC()
	if err := s.repo.Update(ctx, invoice); err != nil {
		return err
	}

	// the previous revision may have sat in a different month, so every
	// cached month for the owner goes
	s.evictAllReports(invoice.OwnerID)
	return nil
}

func (s *Service) Delete(ctx context.Context, ownerID, id snowflake.ID) error {
	if ownerID <= 0 {
		return domain.ErrInvalidOwner
	}
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.evictAllReports(ownerID)
	return nil
}

func (s *Service) Get(ctx context.Context, ownerID, id snowflake.ID) (*domain.Invoice, error) {
	if ownerID <= 0 {
		return nil, domain.ErrInvalidOwner
	}
	return s.repo.FindByID(ctx, ownerID, id)
}

func (s *Service) List(ctx context.Context, ownerID snowflake.ID) ([]domain.Invoice, error) {
	if ownerID <= 0 {
		return nil, domain.ErrInvalidOwner
	}
	return s.repo.FindByOwner(ctx, ownerID)
}

// evictReportMonths drops the cached reports of the months a new invoice
// lands in: the issue month and, when present, the payment month.
func (s *Service) evictReportMonths(invoice *domain.Invoice) {
	months := map[string]struct{}{
		monthkey.Of(invoice.IssueDate).String(): {},
	}
	if invoice.PaidDate != nil && !invoice.PaidDate.IsZero() {
		months[monthkey.Of(*invoice.PaidDate).String()] = struct{}{}
	}
	for month := range months {
		if err := s.reporting.Invalidate(invoice.OwnerID, month); err != nil {
			s.log.Warn("report cache eviction failed",
				zap.Error(err),
				zap.String("owner_id", invoice.OwnerID.String()),
				zap.String("month_key", month),
			)
		}
	}
}

func (s *Service) evictAllReports(ownerID snowflake.ID) {
	if err := s.reporting.Invalidate(ownerID, ""); err != nil {
		s.log.Warn("report cache eviction failed",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
	}
}

func validate(invoice *domain.Invoice) error {
	if invoice == nil || invoice.OwnerID <= 0 {
		return domain.ErrInvalidOwner
	}
	if invoice.Status == "" {
		invoice.Status = domain.StatusDraft
	}
	if !invoice.Status.Valid() {
		return domain.ErrInvalidStatus
	}
	if invoice.Amount < 0 {
		return domain.ErrInvalidAmount
	}
	return nil
}

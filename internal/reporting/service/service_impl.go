package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/a13312860897-create/invomate-sub001/internal/clock"
	"github.com/a13312860897-create/invomate-sub001/internal/config"
	invoicedomain "github.com/a13312860897-create/invomate-sub001/internal/invoice/domain"
	"github.com/a13312860897-create/invomate-sub001/internal/monthkey"
	"github.com/a13312860897-create/invomate-sub001/internal/reporting/cache"
	reportingdomain "github.com/a13312860897-create/invomate-sub001/internal/reporting/domain"
	"github.com/a13312860897-create/invomate-sub001/internal/reporting/filter"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const kindUnified = "unified"

type Params struct {
	fx.In

	Repo   reportingdomain.InvoiceRepository
	Log    *zap.Logger
	Clock  clock.Clock
	Config config.Config
}

type Service struct {
	repo  reportingdomain.InvoiceRepository
	log   *zap.Logger
	clock clock.Clock
	cache *cache.TTLCache[reportingdomain.UnifiedReport]
}

func NewService(p Params) reportingdomain.Service {
	return &Service{
		repo:  p.Repo,
		log:   p.Log.Named("reporting.service"),
		clock: p.Clock,
		cache: cache.New[reportingdomain.UnifiedReport](p.Clock, p.Config.Reporting.CacheTTL),
	}
}

func (s *Service) GetUnifiedReport(ctx context.Context, ownerID snowflake.ID, monthKeyText string) (reportingdomain.UnifiedReport, error) {
	if ownerID <= 0 {
		return reportingdomain.UnifiedReport{}, reportingdomain.ErrInvalidOwner
	}
	key, err := monthkey.Parse(monthKeyText)
	if err != nil {
		return reportingdomain.UnifiedReport{}, err
	}

	cacheKey := cache.Key{OwnerID: ownerID, Kind: kindUnified, MonthKey: key.String()}
	if cached, ok := s.cache.Get(cacheKey); ok {
		cacheHits.Inc()
		return cached, nil
	}
	cacheMisses.Inc()

	invoices, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		// an unavailable repository must surface as such, never as an empty
		// report: "no data" and "no storage" are different answers
		s.log.Warn("invoice fetch failed",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
			zap.String("month_key", key.String()),
		)
		return reportingdomain.UnifiedReport{}, fmt.Errorf("%w: %v", reportingdomain.ErrRepositoryUnavailable, err)
	}

	distribution := buildStatusDistribution(invoices, key)
	trend := buildRevenueTrend(invoices, key)
	summary := buildMonthlySummary(distribution, trend)

	report := reportingdomain.UnifiedReport{
		MonthKey:           key.String(),
		StatusDistribution: distribution,
		RevenueTrend:       trend,
		MonthlySummary:     summary,
		Metadata: reportingdomain.ReportMetadata{
			GeneratedAt: s.clock.Now().UTC(),
			OwnerID:     ownerID,
		},
	}

	s.cache.Set(cacheKey, report)
	reportsGenerated.Inc()
	return report, nil
}

func (s *Service) Invalidate(ownerID snowflake.ID, monthKeyText string) error {
	if ownerID <= 0 {
		return reportingdomain.ErrInvalidOwner
	}
	if strings.TrimSpace(monthKeyText) == "" {
		s.cache.InvalidateOwner(ownerID)
		return nil
	}
	key, err := monthkey.Parse(monthKeyText)
	if err != nil {
		return err
	}
	s.cache.Invalidate(ownerID, key.String())
	return nil
}

// buildStatusDistribution groups the month's invoices by status, keyed on the
// issue date. Percentages use the filtered total, not the unfiltered owner
// total.
func buildStatusDistribution(invoices []invoicedomain.Invoice, key monthkey.MonthKey) reportingdomain.StatusDistribution {
	scoped := filter.ByMonth(invoices, key, reportingdomain.DateFieldIssue)

	counts := make(map[invoicedomain.Status]int)
	amounts := make(map[invoicedomain.Status]float64)
	for _, invoice := range scoped {
		counts[invoice.Status]++
		amounts[invoice.Status] += invoice.Amount
	}

	total := len(scoped)
	var totalAmount float64
	buckets := make([]reportingdomain.StatusBucket, 0, len(counts))
	for _, status := range invoicedomain.Statuses {
		count := counts[status]
		if count == 0 {
			continue
		}
		amount := round2(amounts[status])
		totalAmount += amounts[status]
		buckets = append(buckets, reportingdomain.StatusBucket{
			Status:     status,
			Count:      count,
			Amount:     amount,
			Percentage: round1(float64(count) / float64(total) * 100),
		})
	}

	return reportingdomain.StatusDistribution{
		MonthKey:      key.String(),
		TotalInvoices: total,
		TotalAmount:   round2(totalAmount),
		Buckets:       buckets,
	}
}

// buildRevenueTrend buckets the month's collected revenue by calendar day of
// the payment date. Only records that both carry a paid date in the month and
// have status paid count; a paid date on a non-paid record (or the reverse)
// is drift in the source data and is excluded rather than guessed about.
func buildRevenueTrend(invoices []invoicedomain.Invoice, key monthkey.MonthKey) reportingdomain.RevenueTrend {
	scoped := filter.ByStatus(
		filter.ByMonth(invoices, key, reportingdomain.DateFieldPaid),
		invoicedomain.StatusPaid,
	)

	revenues := make(map[string]float64)
	dayCounts := make(map[string]int)
	for _, invoice := range scoped {
		day := invoice.PaidDate.UTC().Format("2006-01-02")
		revenues[day] += invoice.Amount
		dayCounts[day]++
	}

	days := make([]string, 0, len(revenues))
	for day := range revenues {
		days = append(days, day)
	}
	sort.Strings(days)

	// the total is the sum over the buckets, never a second computation
	var totalRevenue float64
	buckets := make([]reportingdomain.DailyBucket, 0, len(days))
	for _, day := range days {
		revenue := round2(revenues[day])
		totalRevenue += revenue
		buckets = append(buckets, reportingdomain.DailyBucket{
			Date:    day,
			Revenue: revenue,
			Count:   dayCounts[day],
		})
	}

	return reportingdomain.RevenueTrend{
		MonthKey:       key.String(),
		TotalRevenue:   round2(totalRevenue),
		TotalPaidCount: len(scoped),
		DailyBuckets:   buckets,
	}
}

// buildMonthlySummary derives scalars from the two reports alone, never from
// the repository, so it cannot disagree with them.
func buildMonthlySummary(distribution reportingdomain.StatusDistribution, trend reportingdomain.RevenueTrend) reportingdomain.MonthlySummary {
	if distribution.TotalInvoices == 0 {
		return reportingdomain.MonthlySummary{}
	}
	return reportingdomain.MonthlySummary{
		AverageInvoiceValue: round2(distribution.TotalAmount / float64(distribution.TotalInvoices)),
		PaymentRate:         round1(float64(trend.TotalPaidCount) / float64(distribution.TotalInvoices) * 100),
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

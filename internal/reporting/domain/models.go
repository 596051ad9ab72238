// Package domain defines the report value objects produced by the
// aggregation layer. Reports are built on demand, cached with a TTL and never
// mutated after construction.
package domain

import (
	"time"

	invoicedomain "github.com/a13312860897-create/invomate-sub001/internal/invoice/domain"
	"github.com/bwmarrin/snowflake"
)

// DateField selects which invoice date a month filter keys on. Callers must
// always pick one explicitly; the filter never infers it.
type DateField string

const (
	DateFieldIssue   DateField = "issue_date"
	DateFieldDue     DateField = "due_date"
	DateFieldPaid    DateField = "paid_date"
	DateFieldCreated DateField = "created_at"
)

func (f DateField) Valid() bool {
	switch f {
	case DateFieldIssue, DateFieldDue, DateFieldPaid, DateFieldCreated:
		return true
	default:
		return false
	}
}

// StatusBucket is one status group of a distribution report.
type StatusBucket struct {
	Status     invoicedomain.Status `json:"status"`
	Count      int                  `json:"count"`
	Amount     float64              `json:"amount"`
	Percentage float64              `json:"percentage"`
}

// StatusDistribution groups a month's invoices by status, keyed on the issue
// date: an invoice belongs to the month it was billed in regardless of when
// or whether it was paid.
type StatusDistribution struct {
	MonthKey      string         `json:"month_key"`
	TotalInvoices int            `json:"total_invoices"`
	TotalAmount   float64        `json:"total_amount"`
	Buckets       []StatusBucket `json:"buckets"`
}

// DailyBucket is one calendar day of collected revenue.
type DailyBucket struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Count   int     `json:"count"`
}

// RevenueTrend buckets a month's paid invoices by the day payment was
// received. TotalRevenue is the sum over the buckets, never an independently
// recomputed figure.
type RevenueTrend struct {
	MonthKey       string        `json:"month_key"`
	TotalRevenue   float64       `json:"total_revenue"`
	TotalPaidCount int           `json:"total_paid_count"`
	DailyBuckets   []DailyBucket `json:"daily_buckets"`
}

// MonthlySummary is a scalar view derived from the distribution and trend
// reports, so it can never disagree with them.
type MonthlySummary struct {
	AverageInvoiceValue float64 `json:"average_invoice_value"`
	PaymentRate         float64 `json:"payment_rate"`
}

type ReportMetadata struct {
	GeneratedAt time.Time    `json:"generated_at"`
	OwnerID     snowflake.ID `json:"owner_id"`
}

// UnifiedReport is the complete dashboard payload for one owner and month.
type UnifiedReport struct {
	MonthKey           string             `json:"month_key"`
	StatusDistribution StatusDistribution `json:"status_distribution"`
	RevenueTrend       RevenueTrend       `json:"revenue_trend"`
	MonthlySummary     MonthlySummary     `json:"monthly_summary"`
	Metadata           ReportMetadata     `json:"metadata"`
}

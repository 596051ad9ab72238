// Package consistency cross-validates the reports inside a unified report.
// It is used by diagnostics endpoints and tests, never by production request
// paths, and it only ever returns data — issues are never raised as errors.
package consistency

import (
	"fmt"
	"math"

	invoicedomain "github.com/a13312860897-create/invomate-sub001/internal/invoice/domain"
	reportingdomain "github.com/a13312860897-create/invomate-sub001/internal/reporting/domain"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityInfo  Severity = "info"
)

type IssueKind string

const (
	IssueCountMismatch      IssueKind = "count_mismatch"
	IssueRevenueMismatch    IssueKind = "revenue_mismatch"
	IssueCrossPeriodPayment IssueKind = "cross_period_payment"
)

type Issue struct {
	Kind     IssueKind `json:"kind"`
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
}

// Result lists everything the checker found. IsConsistent reflects only
// error-severity issues; informational findings leave it true.
type Result struct {
	IsConsistent bool    `json:"is_consistent"`
	Issues       []Issue `json:"issues"`
}

const revenueTolerance = 0.01

// Check verifies that the three reports of a unified report agree on their
// totals and counts.
func Check(report reportingdomain.UnifiedReport) Result {
	var issues []Issue

	countSum := 0
	paidCount := 0
	for _, bucket := range report.StatusDistribution.Buckets {
		countSum += bucket.Count
		if bucket.Status == invoicedomain.StatusPaid {
			paidCount = bucket.Count
		}
	}
	if countSum != report.StatusDistribution.TotalInvoices {
		issues = append(issues, Issue{
			Kind:     IssueCountMismatch,
			Severity: SeverityError,
			Message: fmt.Sprintf("distribution totals %d invoices but buckets sum to %d",
				report.StatusDistribution.TotalInvoices, countSum),
		})
	}

	var revenueSum float64
	for _, bucket := range report.RevenueTrend.DailyBuckets {
		revenueSum += bucket.Revenue
	}
	if math.Abs(revenueSum-report.RevenueTrend.TotalRevenue) > revenueTolerance {
		issues = append(issues, Issue{
			Kind:     IssueRevenueMismatch,
			Severity: SeverityError,
			Message: fmt.Sprintf("trend totals %.2f but daily buckets sum to %.2f",
				report.RevenueTrend.TotalRevenue, revenueSum),
		})
	}

	// A paid count that differs between the two reports is the expected
	// footprint of invoices issued in one month and paid in another. It is a
	// legitimate business scenario, reported for diagnostics only.
	if paidCount != report.RevenueTrend.TotalPaidCount {
		issues = append(issues, Issue{
			Kind:     IssueCrossPeriodPayment,
			Severity: SeverityInfo,
			Message: fmt.Sprintf("%d invoices issued and marked paid this month, %d payments collected this month",
				paidCount, report.RevenueTrend.TotalPaidCount),
		})
	}

	consistent := true
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			consistent = false
			break
		}
	}

	return Result{IsConsistent: consistent, Issues: issues}
}

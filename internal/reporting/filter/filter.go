// Package filter provides pure, side-effect-free predicates over in-memory
// invoice slices. Every month filter takes an explicit date field; nothing
// here guesses which date a caller meant.
package filter

import (
	"time"

	invoicedomain "github.com/a13312860897-create/invomate-sub001/internal/invoice/domain"
	"github.com/a13312860897-create/invomate-sub001/internal/monthkey"
	reportingdomain "github.com/a13312860897-create/invomate-sub001/internal/reporting/domain"
	"github.com/bwmarrin/snowflake"
)

// ByOwner keeps invoices belonging to ownerID.
func ByOwner(invoices []invoicedomain.Invoice, ownerID snowflake.ID) []invoicedomain.Invoice {
	out := make([]invoicedomain.Invoice, 0, len(invoices))
	for _, invoice := range invoices {
		if invoice.OwnerID == ownerID {
			out = append(out, invoice)
		}
	}
	return out
}

// ByStatus keeps invoices with the given status.
func ByStatus(invoices []invoicedomain.Invoice, status invoicedomain.Status) []invoicedomain.Invoice {
	out := make([]invoicedomain.Invoice, 0, len(invoices))
	for _, invoice := range invoices {
		if invoice.Status == status {
			out = append(out, invoice)
		}
	}
	return out
}

// ByMonth keeps invoices whose date in the requested field falls inside the
// month. Records lacking the field are excluded, not treated as match-all.
func ByMonth(invoices []invoicedomain.Invoice, key monthkey.MonthKey, field reportingdomain.DateField) []invoicedomain.Invoice {
	if key.IsZero() || !field.Valid() {
		return nil
	}
	out := make([]invoicedomain.Invoice, 0, len(invoices))
	for _, invoice := range invoices {
		at, ok := dateOf(invoice, field)
		if !ok {
			continue
		}
		if key.Contains(at) {
			out = append(out, invoice)
		}
	}
	return out
}

// ByDateRange keeps invoices whose date in the requested field falls inside
// [start, end] inclusive.
func ByDateRange(invoices []invoicedomain.Invoice, field reportingdomain.DateField, start, end time.Time) []invoicedomain.Invoice {
	if !field.Valid() {
		return nil
	}
	out := make([]invoicedomain.Invoice, 0, len(invoices))
	for _, invoice := range invoices {
		at, ok := dateOf(invoice, field)
		if !ok {
			continue
		}
		utc := at.UTC()
		if !utc.Before(start) && !utc.After(end) {
			out = append(out, invoice)
		}
	}
	return out
}

// Criteria describes a composed filter. MonthKey requires Field.
type Criteria struct {
	OwnerID  snowflake.ID
	Status   invoicedomain.Status
	MonthKey monthkey.MonthKey
	Field    reportingdomain.DateField
}

// Compose applies owner, then status, then month, in that fixed order,
// short-circuiting to an empty result as soon as any stage yields none.
func Compose(invoices []invoicedomain.Invoice, criteria Criteria) []invoicedomain.Invoice {
	out := invoices
	if criteria.OwnerID != 0 {
		out = ByOwner(out, criteria.OwnerID)
		if len(out) == 0 {
			return nil
		}
	}
	if criteria.Status != "" {
		out = ByStatus(out, criteria.Status)
		if len(out) == 0 {
			return nil
		}
	}
	if !criteria.MonthKey.IsZero() {
		out = ByMonth(out, criteria.MonthKey, criteria.Field)
		if len(out) == 0 {
			return nil
		}
	}
	return out
}

func dateOf(invoice invoicedomain.Invoice, field reportingdomain.DateField) (time.Time, bool) {
	switch field {
	case reportingdomain.DateFieldIssue:
		if invoice.IssueDate.IsZero() {
			return time.Time{}, false
		}
		return invoice.IssueDate, true
	case reportingdomain.DateFieldDue:
		if invoice.DueDate == nil || invoice.DueDate.IsZero() {
			return time.Time{}, false
		}
		return *invoice.DueDate, true
	case reportingdomain.DateFieldPaid:
		if invoice.PaidDate == nil || invoice.PaidDate.IsZero() {
			return time.Time{}, false
		}
		return *invoice.PaidDate, true
	case reportingdomain.DateFieldCreated:
		if invoice.CreatedAt.IsZero() {
			return time.Time{}, false
		}
		return invoice.CreatedAt, true
	default:
		return time.Time{}, false
	}
}

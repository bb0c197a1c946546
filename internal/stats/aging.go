// internal/stats/aging.go
package stats

import (
	"time"

	"github.com/google/uuid"
)

// Receivables aging for the finance dashboard. Amounts are kept in
// cents to avoid floating point drift on money, and asOf is an explicit
// argument so the whole report is reproducible in tests.

// InvoiceStatus tracks the invoice lifecycle. Only FINALIZED invoices
// are outstanding; DRAFT has not been issued and PAID/VOID owe nothing.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "DRAFT"
	InvoiceFinalized InvoiceStatus = "FINALIZED"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceVoid      InvoiceStatus = "VOID"
)

// Invoice is a receivable issued to a customer of the agency.
type Invoice struct {
	InvoiceID    uuid.UUID
	CustomerName string
	AmountCents  int64
	Currency     string
	Status       InvoiceStatus
	IssuedAt     time.Time
	DueAt        time.Time
}

// AgingReport buckets outstanding receivables by days overdue.
// Boundaries are inclusive in the lower bucket: exactly 30 days overdue
// lands in Days1To30, exactly 0 days overdue (due today) is current.
type AgingReport struct {
	CurrentCents    int64
	Days1To30Cents  int64
	Days31To60Cents int64
	Days61To90Cents int64
	Over90Cents     int64
	TotalCents      int64
}

// WeeklyInflow is one week of projected cash receipts.
type WeeklyInflow struct {
	WeekStart   time.Time
	AmountCents int64
}

// AgeInvoices classifies every outstanding invoice by how many whole
// days overdue it is relative to asOf. Draft, paid and void invoices
// are excluded entirely.
func AgeInvoices(invoices []Invoice, asOf time.Time) AgingReport {
	var report AgingReport
	for _, inv := range invoices {
		if inv.Status != InvoiceFinalized {
			continue
		}
		overdue := daysBetween(inv.DueAt, asOf)
		switch {
		case overdue <= 0:
			report.CurrentCents += inv.AmountCents
		case overdue <= 30:
			report.Days1To30Cents += inv.AmountCents
		case overdue <= 60:
			report.Days31To60Cents += inv.AmountCents
		case overdue <= 90:
			report.Days61To90Cents += inv.AmountCents
		default:
			report.Over90Cents += inv.AmountCents
		}
		report.TotalCents += inv.AmountCents
	}
	return report
}

// ProjectCashFlow sums outstanding invoice amounts into weekly buckets
// by due date for the next weeks weeks starting at asOf. Amounts
// already overdue are expected immediately and land in the first week.
// Invoices due beyond the horizon are left out of the projection.
func ProjectCashFlow(invoices []Invoice, asOf time.Time, weeks int) []WeeklyInflow {
	if weeks <= 0 {
		return nil
	}
	inflows := make([]WeeklyInflow, weeks)
	for i := range inflows {
		inflows[i].WeekStart = asOf.AddDate(0, 0, i*7)
	}
	for _, inv := range invoices {
		if inv.Status != InvoiceFinalized {
			continue
		}
		week := daysBetween(asOf, inv.DueAt) / 7
		if week < 0 {
			week = 0 // overdue: count it in the current week
		}
		if week >= weeks {
			continue
		}
		inflows[week].AmountCents += inv.AmountCents
	}
	return inflows
}

// daysBetween returns the number of whole days from a to b, negative
// when b precedes a.
func daysBetween(a, b time.Time) int {
	d := b.Sub(a)
	days := int(d.Hours() / 24)
	return days
}

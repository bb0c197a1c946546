package stats

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var asOf = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func inv(status InvoiceStatus, amountCents int64, dueDaysAgo int) Invoice {
	return Invoice{
		InvoiceID:    uuid.New(),
		CustomerName: "PT Samudera Jaya",
		AmountCents:  amountCents,
		Currency:     "USD",
		Status:       status,
		IssuedAt:     asOf.AddDate(0, 0, -dueDaysAgo-30),
		DueAt:        asOf.AddDate(0, 0, -dueDaysAgo),
	}
}

func TestAgeInvoices_Buckets(t *testing.T) {
	invoices := []Invoice{
		inv(InvoiceFinalized, 100_00, -5), // due in 5 days: current
		inv(InvoiceFinalized, 200_00, 0),  // due today: current
		inv(InvoiceFinalized, 300_00, 15), // 15 days overdue
		inv(InvoiceFinalized, 400_00, 45),
		inv(InvoiceFinalized, 500_00, 75),
		inv(InvoiceFinalized, 600_00, 120),
	}

	r := AgeInvoices(invoices, asOf)

	require.Equal(t, int64(300_00), r.CurrentCents)
	require.Equal(t, int64(300_00), r.Days1To30Cents)
	require.Equal(t, int64(400_00), r.Days31To60Cents)
	require.Equal(t, int64(500_00), r.Days61To90Cents)
	require.Equal(t, int64(600_00), r.Over90Cents)
	require.Equal(t, int64(2100_00), r.TotalCents)
}

// Exactly 30/60/90 days overdue belong to the lower bucket.
func TestAgeInvoices_BoundaryDays(t *testing.T) {
	r := AgeInvoices([]Invoice{
		inv(InvoiceFinalized, 1_00, 30),
		inv(InvoiceFinalized, 2_00, 31),
		inv(InvoiceFinalized, 4_00, 60),
		inv(InvoiceFinalized, 8_00, 61),
		inv(InvoiceFinalized, 16_00, 90),
		inv(InvoiceFinalized, 32_00, 91),
	}, asOf)

	require.Equal(t, int64(1_00), r.Days1To30Cents)
	require.Equal(t, int64(2_00+4_00), r.Days31To60Cents)
	require.Equal(t, int64(8_00+16_00), r.Days61To90Cents)
	require.Equal(t, int64(32_00), r.Over90Cents)
}

func TestAgeInvoices_SkipsNonOutstanding(t *testing.T) {
	r := AgeInvoices([]Invoice{
		inv(InvoiceDraft, 100_00, 40),
		inv(InvoicePaid, 100_00, 40),
		inv(InvoiceVoid, 100_00, 40),
	}, asOf)
	require.Zero(t, r.TotalCents)
}

func TestProjectCashFlow_WeeklyBuckets(t *testing.T) {
	invoices := []Invoice{
		inv(InvoiceFinalized, 100_00, 10),  // overdue: week 0
		inv(InvoiceFinalized, 200_00, 0),   // due today: week 0
		inv(InvoiceFinalized, 300_00, -8),  // due in 8 days: week 1
		inv(InvoiceFinalized, 400_00, -20), // due in 20 days: week 2
		inv(InvoiceFinalized, 500_00, -60), // beyond 4-week horizon: dropped
		inv(InvoicePaid, 900_00, -3),       // paid: dropped
	}

	inflows := ProjectCashFlow(invoices, asOf, 4)

	require.Len(t, inflows, 4)
	require.Equal(t, int64(300_00), inflows[0].AmountCents)
	require.Equal(t, int64(300_00), inflows[1].AmountCents)
	require.Equal(t, int64(400_00), inflows[2].AmountCents)
	require.Equal(t, int64(0), inflows[3].AmountCents)
	require.Equal(t, asOf, inflows[0].WeekStart)
	require.Equal(t, asOf.AddDate(0, 0, 7), inflows[1].WeekStart)
}

func TestProjectCashFlow_NoWeeks(t *testing.T) {
	require.Nil(t, ProjectCashFlow([]Invoice{inv(InvoiceFinalized, 1_00, 0)}, asOf, 0))
}

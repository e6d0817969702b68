package ledger

import (
	"testing"
	"time"

	"CardSentinel/internal/model"
)

func fixedNow() time.Time {
	return time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
}

func testLedger() *Ledger {
	return &Ledger{
		UserID: 42,
		Records: []model.ExpenseRecord{
			{Date: "2024-12-30 10:00:00", Category: "Dining", Amount: 900, Card: "X"},
			{Date: "2025-02-28 23:59:59", Category: "Grocery", Amount: 1000, Card: "X"},
			{Date: "2025-03-01 00:00:00", Category: "Grocery", Amount: 2000, Card: "X"},
			{Date: "2025-03-10 09:30:00", Category: "Shopping", Amount: 3000, Card: "Y", ViaVoucher: "Amazon Pay"},
			{Date: "2025-03-12 18:00:00", Category: "Shopping", Amount: 500, Card: "X", ViaVoucher: "Amazon Pay"},
			{Date: "2025-03-14 11:00:00", Category: "Dining", Amount: 700, Card: "X"},
		},
	}
}

func TestMonthToDateSpend(t *testing.T) {
	led := testLedger()
	now := fixedNow()

	if got := led.MonthToDateSpend("X", now); got != 3200 {
		t.Errorf("expected 3200 for X, got %.0f", got)
	}
	if got := led.MonthToDateSpend("Y", now); got != 3000 {
		t.Errorf("expected 3000 for Y, got %.0f", got)
	}
	if got := led.MonthToDateSpend("Z", now); got != 0 {
		t.Errorf("expected 0 for unknown card, got %.0f", got)
	}

	// The 2025-02-28 record sits on the previous side of the month boundary.
	feb := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	if got := led.MonthToDateSpend("X", feb); got != 1000 {
		t.Errorf("expected 1000 in February, got %.0f", got)
	}
}

func TestMonthToDateVoucherUsage(t *testing.T) {
	led := testLedger()
	now := fixedNow()

	if got := led.MonthToDateVoucherUsage("X", "Amazon Pay", now); got != 500 {
		t.Errorf("expected 500, got %.0f", got)
	}
	// Exact voucher identity, not substring.
	if got := led.MonthToDateVoucherUsage("X", "Amazon", now); got != 0 {
		t.Errorf("voucher match must be exact, got %.0f", got)
	}
	// Usage resets across a month boundary even with prior-month records.
	apr := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	if got := led.MonthToDateVoucherUsage("X", "Amazon Pay", apr); got != 0 {
		t.Errorf("expected reset to 0 in April, got %.0f", got)
	}
}

func TestYearToDateSpend(t *testing.T) {
	led := testLedger()
	now := fixedNow()

	// Everything in 2025 on X, including the February record.
	if got := led.YearToDateSpend("X", now); got != 4200 {
		t.Errorf("expected 4200, got %.0f", got)
	}
	dec := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	if got := led.YearToDateSpend("X", dec); got != 900 {
		t.Errorf("expected 900 for 2024, got %.0f", got)
	}
}

func TestRecentRecords(t *testing.T) {
	led := testLedger()
	now := fixedNow()

	recent := led.RecentRecords(2, now)
	if len(recent) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recent))
	}
	// Most recent last.
	if recent[1].Date != "2025-03-14 11:00:00" {
		t.Errorf("expected newest record last, got %s", recent[1].Date)
	}

	all := led.RecentRecords(10, now)
	if len(all) != 4 {
		t.Errorf("expected all 4 month records, got %d", len(all))
	}
}

// Package ledger owns per-user expense history: one append-only JSON file
// per user, loaded fully on each access, with pure period-scoped projections
// over the loaded records.
package ledger

import (
	"strings"
	"time"

	"CardSentinel/internal/model"
)

// Ledger is one user's ordered expense history. All query methods are read
// projections of the loaded records; nothing here mutates state. Period
// boundaries are wall-clock calendar months and years (string prefix against
// the stored dates), not rolling windows.
type Ledger struct {
	UserID  int64
	Records []model.ExpenseRecord
}

// MonthRecords returns the records of the calendar month containing now,
// oldest first.
func (l *Ledger) MonthRecords(now time.Time) []model.ExpenseRecord {
	prefix := now.Format("2006-01")
	var out []model.ExpenseRecord
	for _, r := range l.Records {
		if strings.HasPrefix(r.Date, prefix) {
			out = append(out, r)
		}
	}
	return out
}

// MonthToDateSpend sums the current month's spend on one card.
func (l *Ledger) MonthToDateSpend(card string, now time.Time) float64 {
	var total float64
	for _, r := range l.MonthRecords(now) {
		if r.Card == card {
			total += r.Amount
		}
	}
	return total
}

// MonthToDateVoucherUsage sums the current month's spend on one card routed
// through one voucher channel. The voucher name is compared exactly: by the
// time a record exists, the matcher name has already been resolved.
func (l *Ledger) MonthToDateVoucherUsage(card, voucher string, now time.Time) float64 {
	var total float64
	for _, r := range l.MonthRecords(now) {
		if r.Card == card && r.ViaVoucher == voucher {
			total += r.Amount
		}
	}
	return total
}

// YearToDateSpend sums the current calendar year's spend on one card.
func (l *Ledger) YearToDateSpend(card string, now time.Time) float64 {
	prefix := now.Format("2006")
	var total float64
	for _, r := range l.Records {
		if r.Card == card && strings.HasPrefix(r.Date, prefix) {
			total += r.Amount
		}
	}
	return total
}

// RecentRecords returns up to limit of the current month's records, most
// recent last. Display only.
func (l *Ledger) RecentRecords(limit int, now time.Time) []model.ExpenseRecord {
	month := l.MonthRecords(now)
	if limit > 0 && len(month) > limit {
		month = month[len(month)-limit:]
	}
	return month
}

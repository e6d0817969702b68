// Package advisor combines the card catalog, reward resolution, and the
// spend ledger into the recommendation service the front-end talks to.
package advisor

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"CardSentinel/internal/catalog"
	"CardSentinel/internal/ledger"
	"CardSentinel/internal/model"
	"CardSentinel/internal/recorder"
	"CardSentinel/internal/reward"
)

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrEmptyCategory = errors.New("category must not be empty")
	ErrUnknownCard   = errors.New("unknown card")
)

// Service answers recommendation requests and records confirmed expenses.
// It carries no conversational state; every call is a complete request.
type Service struct {
	catalog *catalog.Catalog
	store   *ledger.FileStore
	rec     recorder.Recorder
	now     func() time.Time
}

// New builds a Service. The recorder may be a NoopRecorder.
func New(cat *catalog.Catalog, store *ledger.FileStore, rec recorder.Recorder) *Service {
	return &Service{catalog: cat, store: store, rec: rec, now: time.Now}
}

// Recommend picks the best card for the request. ok=false is the normal
// "no suitable card / all limits exceeded" outcome, not an error.
func (s *Service) Recommend(userID int64, req model.RecommendationRequest) (model.Recommendation, bool) {
	led := s.store.Load(userID)
	now := s.now()

	var preferred string
	if req.PreferFeeWaiver {
		if card, ok := s.catalog.FeeWaiverCard(); ok {
			preferred = card.Name
		}
	}

	card, rate, reason, ok := selectBest(s.catalog.Cards(), led, req, preferred, now)
	if !ok {
		return model.Recommendation{}, false
	}

	amount, unit := reward.Amount(card, req.Amount, rate)
	rec := model.Recommendation{
		Card:             card,
		Rate:             rate,
		Reason:           reason,
		RewardAmount:     amount,
		RewardUnit:       unit,
		MonthToDateSpend: led.MonthToDateSpend(card.Name, now),
	}
	if card.FeeWaiverSpend > 0 {
		rec.Annual = s.annualProgress(led, card, now)
	}

	if err := s.rec.RecordRecommendation(&recorder.RecommendationEvent{
		UserID: userID, Category: req.Category, Amount: req.Amount,
		ViaVoucher: req.ViaVoucher, Card: card.Name, Rate: rate, Reason: reason,
	}); err != nil {
		log.Printf("[ERROR] record recommendation: %v", err)
	}

	return rec, true
}

// RecordExpense appends a confirmed expense to the user's ledger. The card
// may be one no longer in the catalog only for historical records; new saves
// must name a known card. A persistence failure propagates: a confirmed save
// is never silently dropped.
func (s *Service) RecordExpense(userID int64, category string, amount float64, cardName, viaVoucher string) error {
	if strings.TrimSpace(category) == "" {
		return ErrEmptyCategory
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if _, ok := s.catalog.Find(cardName); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCard, cardName)
	}

	rec := model.ExpenseRecord{
		Date:       s.now().Format(model.DateLayout),
		Category:   category,
		Amount:     amount,
		Card:       cardName,
		ViaVoucher: viaVoucher,
	}
	if err := s.store.Record(userID, rec); err != nil {
		return fmt.Errorf("save expense: %w", err)
	}

	if err := s.rec.RecordExpense(&recorder.ExpenseEvent{
		UserID: userID, Category: category, Amount: amount,
		Card: cardName, ViaVoucher: viaVoucher,
	}); err != nil {
		log.Printf("[ERROR] record expense event: %v", err)
	}
	return nil
}

// MonthlySummary aggregates the current calendar month of the user's ledger.
func (s *Service) MonthlySummary(userID int64) model.MonthlySummary {
	return s.MonthlySummaryAt(userID, s.now())
}

// MonthlySummaryAt aggregates the calendar month containing at. The monthly
// digest uses it to summarize a month just ended.
func (s *Service) MonthlySummaryAt(userID int64, at time.Time) model.MonthlySummary {
	led := s.store.Load(userID)
	month := led.MonthRecords(at)

	sum := model.MonthlySummary{Month: at, Count: len(month)}
	for _, r := range month {
		sum.TotalAmount += r.Amount
	}
	for _, card := range s.catalog.Cards() {
		if spend := led.MonthToDateSpend(card.Name, at); spend > 0 {
			sum.PerCard = append(sum.PerCard, model.CardSpend{Card: card.Name, Amount: spend})
		}
	}
	if card, ok := s.catalog.FeeWaiverCard(); ok {
		if p := s.annualProgress(led, card, at); p.Spend > 0 {
			sum.Annual = p
		}
	}
	return sum
}

// RecentExpenses returns up to limit current-month records, most recent last.
func (s *Service) RecentExpenses(userID int64, limit int) []model.ExpenseRecord {
	return s.store.Load(userID).RecentRecords(limit, s.now())
}

// MonthlyExpenseCount returns how many records the current month holds, so
// the front-end can say "showing last 10 of N".
func (s *Service) MonthlyExpenseCount(userID int64) int {
	return len(s.store.Load(userID).MonthRecords(s.now()))
}

// VoucherLimits reports month-to-date consumption of every voucher cap, in
// catalog declaration order.
func (s *Service) VoucherLimits(userID int64) []model.VoucherStatus {
	led := s.store.Load(userID)
	now := s.now()

	var out []model.VoucherStatus
	for _, card := range s.catalog.Cards() {
		for _, v := range card.Vouchers {
			used := led.MonthToDateVoucherUsage(card.Name, v.Name, now)
			st := model.VoucherStatus{Card: card.Name, Voucher: v.Name, Used: used, Cap: v.MonthlyCap}
			if v.MonthlyCap > 0 {
				st.PercentUsed = used / v.MonthlyCap * 100
			}
			out = append(out, st)
		}
	}
	return out
}

// Catalog exposes the card catalog to the front-end.
func (s *Service) Catalog() *catalog.Catalog { return s.catalog }

func (s *Service) annualProgress(led *ledger.Ledger, card model.Card, now time.Time) *model.AnnualProgress {
	spend := led.YearToDateSpend(card.Name, now)
	return &model.AnnualProgress{
		Card:      card.Name,
		Spend:     spend,
		Threshold: card.FeeWaiverSpend,
		Percent:   spend / card.FeeWaiverSpend * 100,
	}
}

// Package scheduler runs the monthly digest: at the end of each month every
// user with recorded expenses gets their summary pushed, without having to
// ask for it.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"CardSentinel/internal/advisor"
	"CardSentinel/internal/ledger"
	"CardSentinel/internal/notifier"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the cron tasks.
type Scheduler struct {
	Cron     *cron.Cron
	Advisor  *advisor.Service
	Store    *ledger.FileStore
	Notifier *notifier.TelegramNotifier
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, svc *advisor.Service, store *ledger.FileStore, tn *notifier.TelegramNotifier) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Advisor:  svc,
		Store:    store,
		Notifier: tn,
		Ctx:      ctx,
	}
}

// Register registers the monthly digest task. The spec is expected to fire
// on the first of the month; the digest then summarizes the month that just
// ended.
func (s *Scheduler) Register(digestCron string) error {
	if _, err := s.Cron.AddFunc(digestCron, s.monthlyDigest); err != nil {
		return fmt.Errorf("register monthly digest: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunDigestNow executes the monthly digest immediately (manual trigger).
func (s *Scheduler) RunDigestNow() {
	s.monthlyDigest()
}

func (s *Scheduler) monthlyDigest() {
	log.Println("[INFO] running monthly digest")

	users, err := s.Store.ListUsers()
	if err != nil {
		log.Printf("[ERROR] list users for digest: %v", err)
		return
	}

	// Yesterday falls inside the month being summarized.
	at := time.Now().AddDate(0, 0, -1)

	for _, userID := range users {
		sum := s.Advisor.MonthlySummaryAt(userID, at)
		if sum.Count == 0 {
			continue
		}
		// Private chats share the user's ID.
		if err := s.Notifier.SendToWithRetry(s.Ctx, userID, notifier.FormatMonthlySummary(&sum), 3); err != nil {
			log.Printf("[ERROR] send digest to user %d: %v", userID, err)
		}
	}
}

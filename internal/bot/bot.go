// Package bot implements the Telegram conversation flow: collecting the
// category, amount, voucher channel, and fee-waiver preference for a
// suggestion, and the one-shot report commands. All reward logic lives in
// the advisor; this layer only validates input and formats replies.
package bot

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"CardSentinel/internal/advisor"
	"CardSentinel/internal/model"
	"CardSentinel/internal/notifier"
)

// recentLimit caps how many expenses /expenses shows.
const recentLimit = 10

type step int

const (
	stepCategory step = iota
	stepAmount
	stepVoucherAsk
	stepVoucherName
	stepPrefer
	stepSave
)

// session is one chat's suggestion flow in progress.
type session struct {
	step        step
	category    string
	amount      float64
	viaVoucher  string
	recommended *model.Recommendation
}

// Bot routes incoming messages to the advisor. Sessions are per chat; the
// advisor itself is stateless between calls.
type Bot struct {
	advisor *advisor.Service

	mu       sync.Mutex
	sessions map[int64]*session
}

func New(svc *advisor.Service) *Bot {
	return &Bot{advisor: svc, sessions: make(map[int64]*session)}
}

// HandleUpdate processes one incoming message and returns the reply text.
// It satisfies notifier.UpdateHandler.
func (b *Bot) HandleUpdate(chatID, userID int64, text string) string {
	switch text {
	case "/start":
		b.endSession(chatID)
		return notifier.FormatWelcome()
	case "/help":
		return notifier.FormatHelp()
	case "/cancel":
		if b.endSession(chatID) {
			return "Operation cancelled. Use /suggest to start again."
		}
		return "Nothing to cancel."
	case "/suggest":
		b.setSession(chatID, &session{step: stepCategory})
		return "Select expense category (e.g. Dining, Food Delivery, Grocery, Fuel, " +
			"Online Shopping, Utilities, Travel, Amazon Pay Voucher, Flipkart Voucher):"
	case "/summary":
		sum := b.advisor.MonthlySummary(userID)
		if sum.Count == 0 {
			return "📭 No expenses recorded this month."
		}
		return notifier.FormatMonthlySummary(&sum)
	case "/expenses":
		records := b.advisor.RecentExpenses(userID, recentLimit)
		if len(records) == 0 {
			return "📭 No expenses recorded this month."
		}
		total := b.advisor.MonthlyExpenseCount(userID)
		return notifier.FormatExpenses(records, total, time.Now().Format("January 2006"))
	case "/limits":
		return notifier.FormatVoucherLimits(b.advisor.VoucherLimits(userID), time.Now().Format("January 2006"))
	}

	if sess, ok := b.session(chatID); ok {
		return b.advance(chatID, userID, sess, text)
	}
	return "Use /suggest to get a card suggestion, or /help for all commands."
}

// advance moves a suggestion flow one step forward.
func (b *Bot) advance(chatID, userID int64, sess *session, text string) string {
	switch sess.step {
	case stepCategory:
		if strings.TrimSpace(text) == "" {
			return "❌ Category must not be empty. Please enter a category:"
		}
		sess.category = strings.TrimSpace(text)
		sess.step = stepAmount
		return fmt.Sprintf("Category: <b>%s</b>\n\nEnter the amount in ₹:", sess.category)

	case stepAmount:
		amount, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil || amount <= 0 {
			return "❌ Invalid amount. Please enter a positive number:"
		}
		sess.amount = amount
		if voucherLikely(sess.category) {
			sess.step = stepVoucherAsk
			return "Will you buy this via voucher purchase? (yes/no)"
		}
		return b.askPreferOrRecommend(chatID, userID, sess)

	case stepVoucherAsk:
		switch {
		case isYes(text):
			sess.step = stepVoucherName
			return "Which voucher? (e.g. Amazon Pay, Flipkart):"
		case isNo(text):
			return b.askPreferOrRecommend(chatID, userID, sess)
		default:
			return "Please answer yes or no:"
		}

	case stepVoucherName:
		sess.viaVoucher = strings.TrimSpace(text)
		return b.askPreferOrRecommend(chatID, userID, sess)

	case stepPrefer:
		switch {
		case isYes(text):
			return b.recommend(chatID, userID, sess, true)
		case isNo(text):
			return b.recommend(chatID, userID, sess, false)
		default:
			return "Please answer yes or no:"
		}

	case stepSave:
		switch {
		case isYes(text):
			err := b.advisor.RecordExpense(userID, sess.category, sess.amount,
				sess.recommended.Card.Name, sess.viaVoucher)
			b.endSession(chatID)
			if err != nil {
				log.Printf("[ERROR] save expense for user %d: %v", userID, err)
				return "❌ Failed to save the expense. Please try again."
			}
			return "✅ Expense saved successfully!"
		case isNo(text):
			b.endSession(chatID)
			return "Expense not saved."
		default:
			return "Please answer yes or no:"
		}
	}

	b.endSession(chatID)
	return "Use /suggest to start again."
}

func (b *Bot) recommend(chatID, userID int64, sess *session, prefer bool) string {
	rec, ok := b.advisor.Recommend(userID, model.RecommendationRequest{
		Category:        sess.category,
		Amount:          sess.amount,
		ViaVoucher:      sess.viaVoucher,
		PreferFeeWaiver: prefer,
	})
	if !ok {
		b.endSession(chatID)
		return "❌ No suitable card found or limits exceeded!"
	}
	sess.recommended = &rec
	sess.step = stepSave
	return notifier.FormatRecommendation(&rec, sess.amount) + "\n\nSave this expense? (yes/no)"
}

// askPreferOrRecommend asks about fee-waiver steering, or goes straight to
// the recommendation when no catalog card carries a waiver threshold.
func (b *Bot) askPreferOrRecommend(chatID, userID int64, sess *session) string {
	card, ok := b.advisor.Catalog().FeeWaiverCard()
	if !ok {
		return b.recommend(chatID, userID, sess, false)
	}
	sess.step = stepPrefer
	return fmt.Sprintf("Prefer %s to help reach the annual fee waiver? (yes/no)", card.Name)
}

func (b *Bot) session(chatID int64) (*session, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.sessions[chatID]
	return s, ok
}

func (b *Bot) setSession(chatID int64, s *session) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sessions[chatID] = s
}

func (b *Bot) endSession(chatID int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.sessions[chatID]
	delete(b.sessions, chatID)
	return ok
}

// voucherLikely mirrors the heuristic for when the voucher question is worth
// asking: voucher-style categories and utility payments routed through
// gift-card channels.
func voucherLikely(category string) bool {
	c := strings.ToLower(category)
	return strings.Contains(c, "voucher") || strings.Contains(c, "utilities")
}

func isYes(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	return t == "yes" || t == "y"
}

func isNo(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	return t == "no" || t == "n"
}

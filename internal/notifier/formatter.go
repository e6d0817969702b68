package notifier

import (
	"fmt"
	"strings"

	"CardSentinel/internal/model"

	"github.com/dustin/go-humanize"
)

func money(v float64) string {
	return "₹" + humanize.CommafWithDigits(v, 2)
}

// FormatRecommendation formats the winning card for a spending event.
func FormatRecommendation(rec *model.Recommendation, spend float64) string {
	var b strings.Builder

	b.WriteString("💳 <b>RECOMMENDED CARD</b>\n\n")
	b.WriteString(fmt.Sprintf("Card: <b>%s</b>\n", rec.Card.Name))
	b.WriteString(fmt.Sprintf("Reward Rate: <b>%.2f%%</b>\n", rec.Rate))
	b.WriteString(fmt.Sprintf("Reason: %s\n\n", rec.Reason))
	b.WriteString(fmt.Sprintf("You'll earn: <b>%.0f %s</b>\n", rec.RewardAmount, rec.RewardUnit))
	b.WriteString(fmt.Sprintf("On spend: %s\n\n", money(spend)))
	b.WriteString(fmt.Sprintf("Current month spend on this card: %s", money(rec.MonthToDateSpend)))

	if rec.Annual != nil {
		b.WriteString(fmt.Sprintf("\n\n🎯 Annual spend: %s (%.1f%% toward fee waiver)",
			money(rec.Annual.Spend), rec.Annual.Percent))
	}

	return b.String()
}

// FormatMonthlySummary formats one calendar month's totals and per-card
// breakdown.
func FormatMonthlySummary(sum *model.MonthlySummary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>MONTHLY SUMMARY</b>\n<i>%s</i>\n\n", sum.Month.Format("January 2006")))
	b.WriteString(fmt.Sprintf("Total Expenses: %d\n", sum.Count))
	b.WriteString(fmt.Sprintf("Total Spend: %s\n\n", money(sum.TotalAmount)))

	b.WriteString("<b>Card-wise Breakdown:</b>\n")
	for _, cs := range sum.PerCard {
		b.WriteString(fmt.Sprintf("• %s: %s\n", cs.Card, money(cs.Amount)))
	}

	if sum.Annual != nil {
		b.WriteString(fmt.Sprintf("\n🎯 <b>%s Fee Waiver:</b>\n", sum.Annual.Card))
		b.WriteString(fmt.Sprintf("Annual: %s (%.1f%%)\n", money(sum.Annual.Spend), sum.Annual.Percent))
		if sum.Annual.Percent >= 100 {
			b.WriteString("✓ Target achieved!")
		} else {
			b.WriteString(fmt.Sprintf("%s more needed", money(sum.Annual.Threshold-sum.Annual.Spend)))
		}
	}

	return b.String()
}

// FormatExpenses formats the most recent expenses of the month. total is the
// full month count, so the header can note truncation.
func FormatExpenses(records []model.ExpenseRecord, total int, month string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📝 <b>RECENT EXPENSES</b>\n<i>%s</i>\n\n", month))
	for i, exp := range records {
		voucherInfo := ""
		if exp.ViaVoucher != "" {
			voucherInfo = fmt.Sprintf(" (via %s)", exp.ViaVoucher)
		}
		b.WriteString(fmt.Sprintf("%d. %s%s\n", i+1, exp.Category, voucherInfo))
		b.WriteString(fmt.Sprintf("   %s • %s\n", money(exp.Amount), exp.Card))
		b.WriteString(fmt.Sprintf("   <i>%s</i>\n\n", exp.Date))
	}
	if total > len(records) {
		b.WriteString(fmt.Sprintf("<i>(Showing last %d of %d expenses)</i>", len(records), total))
	}

	return b.String()
}

// FormatVoucherLimits formats month-to-date voucher cap consumption grouped
// by card.
func FormatVoucherLimits(statuses []model.VoucherStatus, month string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🎫 <b>VOUCHER LIMITS</b>\n<i>%s</i>\n\n", month))
	lastCard := ""
	for _, st := range statuses {
		if st.Card != lastCard {
			if lastCard != "" {
				b.WriteString("\n")
			}
			b.WriteString(fmt.Sprintf("<b>%s:</b>\n", st.Card))
			lastCard = st.Card
		}
		b.WriteString(fmt.Sprintf("• %s: %s/%s (%.0f%%)\n",
			st.Voucher, money(st.Used), money(st.Cap), st.PercentUsed))
	}

	return b.String()
}

// FormatWelcome is the /start greeting.
func FormatWelcome() string {
	return "👋 <b>Welcome to CardSentinel!</b>\n\n" +
		"I'll help you choose the best credit card for each expense " +
		"and track your spending to maximize rewards.\n\n" +
		"Commands:\n" +
		"💳 /suggest — get a card suggestion\n" +
		"📊 /summary — monthly summary\n" +
		"📝 /expenses — recent expenses\n" +
		"🎫 /limits — voucher limits\n" +
		"❓ /help — how to use"
}

// FormatHelp explains the commands.
func FormatHelp() string {
	return "❓ <b>HOW TO USE</b>\n\n" +
		"<b>💳 /suggest:</b>\n" +
		"Tell me your expense category and amount, and I'll recommend the best card.\n\n" +
		"<b>📊 /summary:</b>\n" +
		"View your total spending and card-wise breakdown.\n\n" +
		"<b>📝 /expenses:</b>\n" +
		"See your recorded expenses for the month.\n\n" +
		"<b>🎫 /limits:</b>\n" +
		"Check remaining voucher purchase limits.\n\n" +
		"Use /cancel to abandon a suggestion in progress."
}

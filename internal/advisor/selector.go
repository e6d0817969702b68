package advisor

import (
	"fmt"
	"time"

	"CardSentinel/internal/ledger"
	"CardSentinel/internal/model"
	"CardSentinel/internal/reward"

	"github.com/dustin/go-humanize"
)

// selectBest scans the cards in declaration order and returns the winner for
// the request, or ok=false when no card achieves a positive rate (all
// excluded, unmatched, or capacity-exhausted).
//
// Per card:
//  1. resolve the rate and reason;
//  2. when a voucher was requested and resolved, charge the request against
//     the remaining monthly cap: over-cap overrides the rate to 0, otherwise
//     the remaining headroom is appended to the reason;
//  3. the preferred card (fee waiver steering) takes the lead whenever its
//     rate is positive and within 10% of the best so far; anyone else needs
//     a strictly greater rate, so ties stay with the earlier-declared card.
func selectBest(cards []model.Card, led *ledger.Ledger, req model.RecommendationRequest, preferred string, now time.Time) (model.Card, float64, string, bool) {
	var (
		bestCard   model.Card
		bestRate   float64
		bestReason string
		found      bool
	)

	for _, card := range cards {
		rate, reason := reward.Resolve(card, req.Category, req.Amount, req.ViaVoucher)

		if req.ViaVoucher != "" && rate > 0 {
			if v, ok := reward.MatchVoucher(card, req.ViaVoucher); ok {
				used := led.MonthToDateVoucherUsage(card.Name, v.Name, now)
				remaining := v.MonthlyCap - used
				if req.Amount > remaining {
					rate = 0
					reason = fmt.Sprintf("Limit exceeded (₹%s/₹%s used)",
						humanize.Commaf(used), humanize.Commaf(v.MonthlyCap))
				} else {
					reason += fmt.Sprintf(" [₹%s left]", humanize.Commaf(remaining))
				}
			}
		}

		switch {
		case preferred != "" && card.Name == preferred && rate > 0 && rate >= bestRate*0.9:
			bestCard = card
			bestRate = rate
			bestReason = reason + " [Fee waiver]"
			found = true
		case rate > bestRate:
			bestCard = card
			bestRate = rate
			bestReason = reason
			found = true
		}
	}

	if !found || bestRate == 0 {
		return model.Card{}, 0, "", false
	}
	return bestCard, bestRate, bestReason, true
}

// Package reward resolves one card's reward rate for a spending event.
// Resolution is a pure function of the card's rule set; cap consumption is
// checked upstream by the selection scan.
package reward

import (
	"fmt"
	"strings"

	"CardSentinel/internal/model"

	"github.com/dustin/go-humanize"
)

// Resolve returns the reward rate (percent) and a human-auditable reason for
// spending amount in category on card, optionally via a voucher channel.
//
// Precedence, first match wins:
//  1. an exclusion matching the category forces rate 0, even when a voucher
//     is requested;
//  2. with a voucher requested, the first voucher entry whose name appears
//     in the requested channel wins, and an unmatched voucher disqualifies
//     the card entirely;
//  3. otherwise the first special category rate wins. The containment test
//     here is deliberately bidirectional ("Amazon" matches "Amazon Shopping"
//     and vice versa) while the voucher test above is one-directional;
//  4. otherwise the base rate.
//
// amount does not affect the rate; it is part of the signature because the
// caller resolves and converts in one conceptual step.
func Resolve(card model.Card, category string, amount float64, viaVoucher string) (float64, string) {
	cat := strings.ToLower(category)

	for _, excl := range card.Exclusions {
		e := strings.ToLower(excl)
		if strings.Contains(cat, e) || strings.Contains(e, cat) {
			return 0, "Excluded category"
		}
	}

	if viaVoucher != "" {
		vv := strings.ToLower(viaVoucher)
		for _, v := range card.Vouchers {
			if strings.Contains(vv, strings.ToLower(v.Name)) {
				return v.Rate, fmt.Sprintf("Via %s voucher", v.Name)
			}
		}
		return 0, "Voucher not available"
	}

	for _, sp := range card.Specials {
		s := strings.ToLower(sp.Category)
		if strings.Contains(cat, s) || strings.Contains(s, cat) {
			if sp.MonthlyCap > 0 {
				return sp.Rate, fmt.Sprintf("Special rate (₹%s monthly cap)", humanize.Commaf(sp.MonthlyCap))
			}
			return sp.Rate, "Special rate"
		}
	}

	return card.BaseRate, "Base rate"
}

// MatchVoucher returns the voucher entry Resolve would match for the
// requested channel, so the selection scan can check the same cap Resolve
// priced against.
func MatchVoucher(card model.Card, viaVoucher string) (model.VoucherRate, bool) {
	vv := strings.ToLower(viaVoucher)
	for _, v := range card.Vouchers {
		if strings.Contains(vv, strings.ToLower(v.Name)) {
			return v, true
		}
	}
	return model.VoucherRate{}, false
}

// Amount converts a resolved rate into the reward earned on a spend, in the
// card's declared unit. No rounding happens here; display formatting owns
// that.
func Amount(card model.Card, spend, rate float64) (float64, model.RewardUnit) {
	return spend * rate / 100, card.Unit
}

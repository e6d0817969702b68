package reward

import (
	"strings"
	"testing"

	"CardSentinel/internal/model"
)

func testCard() model.Card {
	return model.Card{
		Name:     "Test Points",
		Unit:     model.UnitPoints,
		BaseRate: 1.5,
		Specials: []model.CategoryRate{
			{Category: "Grocery", Rate: 10},
			{Category: "Amazon", Rate: 5, MonthlyCap: 1500},
		},
		Vouchers: []model.VoucherRate{
			{Name: "Amazon Pay", Rate: 16.67, MonthlyCap: 10000},
			{Name: "Flipkart", Rate: 16.67, MonthlyCap: 10000},
		},
		Exclusions: []string{"Tax", "Fuel", "Rent"},
	}
}

func TestResolve_ExclusionWinsAlways(t *testing.T) {
	card := testCard()
	tests := []struct {
		name     string
		category string
		voucher  string
	}{
		{"plain excluded category", "Fuel", ""},
		{"exclusion inside longer category", "Fuel Surcharge", ""},
		{"category inside exclusion matcher", "Ren", ""},
		{"different case", "TAX", ""},
		{"excluded even with voucher requested", "Tax", "Amazon Pay"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, reason := Resolve(card, tt.category, 5000, tt.voucher)
			if rate != 0 {
				t.Errorf("expected rate 0, got %.2f", rate)
			}
			if reason != "Excluded category" {
				t.Errorf("unexpected reason: %q", reason)
			}
		})
	}
}

func TestResolve_VoucherMatching(t *testing.T) {
	card := testCard()

	rate, reason := Resolve(card, "Online Shopping", 5000, "Amazon Pay gift card")
	if rate != 16.67 {
		t.Errorf("expected voucher rate 16.67, got %.2f", rate)
	}
	if reason != "Via Amazon Pay voucher" {
		t.Errorf("unexpected reason: %q", reason)
	}

	// One-directional test: the matcher must appear inside the requested
	// channel, not the other way around.
	rate, reason = Resolve(card, "Online Shopping", 5000, "Amazon")
	if rate != 0 || reason != "Voucher not available" {
		t.Errorf("expected disqualification, got %.2f %q", rate, reason)
	}

	rate, reason = Resolve(card, "Online Shopping", 5000, "Myntra")
	if rate != 0 || reason != "Voucher not available" {
		t.Errorf("unmatched voucher should disqualify, got %.2f %q", rate, reason)
	}
}

func TestResolve_SpecialBidirectional(t *testing.T) {
	card := testCard()
	tests := []struct {
		category string
		rate     float64
	}{
		{"Grocery", 10},
		{"grocery delivery", 10}, // matcher inside category
		{"Groc", 10},             // category inside matcher
		{"Amazon Shopping", 5},
	}
	for _, tt := range tests {
		rate, _ := Resolve(card, tt.category, 5000, "")
		if rate != tt.rate {
			t.Errorf("category %q: expected %.1f, got %.1f", tt.category, tt.rate, rate)
		}
	}
}

func TestResolve_SpecialCapInReason(t *testing.T) {
	card := testCard()
	_, reason := Resolve(card, "Amazon Shopping", 5000, "")
	if !strings.Contains(reason, "1,500 monthly cap") {
		t.Errorf("expected cap note in reason, got %q", reason)
	}
	_, reason = Resolve(card, "Grocery", 5000, "")
	if reason != "Special rate" {
		t.Errorf("uncapped special should have plain reason, got %q", reason)
	}
}

func TestResolve_BaseFallback(t *testing.T) {
	card := testCard()
	rate, reason := Resolve(card, "Travel", 5000, "")
	if rate != 1.5 || reason != "Base rate" {
		t.Errorf("expected base rate 1.5, got %.2f %q", rate, reason)
	}
}

func TestResolve_FirstMatchWins(t *testing.T) {
	card := model.Card{
		Name:     "Overlap",
		Unit:     model.UnitCashback,
		BaseRate: 1,
		Specials: []model.CategoryRate{
			{Category: "Amazon Pay Voucher", Rate: 4},
			{Category: "Amazon", Rate: 2},
		},
	}
	rate, _ := Resolve(card, "Amazon Pay Voucher", 1000, "")
	if rate != 4 {
		t.Errorf("first declared special should win, got %.1f", rate)
	}
}

func TestMatchVoucher(t *testing.T) {
	card := testCard()
	v, ok := MatchVoucher(card, "flipkart gift voucher")
	if !ok || v.Name != "Flipkart" {
		t.Fatalf("expected Flipkart match, got %v %v", v, ok)
	}
	if _, ok := MatchVoucher(card, "Myntra"); ok {
		t.Error("expected no match for Myntra")
	}
}

func TestAmount(t *testing.T) {
	card := testCard()
	amount, unit := Amount(card, 5000, 10)
	if amount != 500 {
		t.Errorf("expected reward 500, got %.2f", amount)
	}
	if unit != model.UnitPoints {
		t.Errorf("expected points, got %s", unit)
	}
}

package model

import "time"

// RecommendationRequest carries one fully-formed spending event from the
// front-end. ViaVoucher empty means ordinary category spend.
type RecommendationRequest struct {
	Category        string
	Amount          float64
	ViaVoucher      string
	PreferFeeWaiver bool
}

// AnnualProgress tracks year-to-date spend on a card against its annual fee
// waiver threshold.
type AnnualProgress struct {
	Card      string
	Spend     float64
	Threshold float64
	Percent   float64
}

// Recommendation is the winning card for a request, with the resolved rate,
// the human-auditable reason chain, and display context.
type Recommendation struct {
	Card             Card
	Rate             float64
	Reason           string
	RewardAmount     float64
	RewardUnit       RewardUnit
	MonthToDateSpend float64
	Annual           *AnnualProgress
}

// CardSpend is one card's month-to-date total, in catalog declaration order.
type CardSpend struct {
	Card   string
	Amount float64
}

// MonthlySummary aggregates one calendar month of a user's ledger.
type MonthlySummary struct {
	Month       time.Time
	Count       int
	TotalAmount float64
	PerCard     []CardSpend
	Annual      *AnnualProgress
}

// VoucherStatus reports month-to-date consumption of one voucher cap.
type VoucherStatus struct {
	Card        string
	Voucher     string
	Used        float64
	Cap         float64
	PercentUsed float64
}

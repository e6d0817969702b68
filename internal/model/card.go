package model

// RewardUnit is the currency a card pays rewards in.
type RewardUnit string

const (
	UnitPoints   RewardUnit = "points"
	UnitCashback RewardUnit = "cashback"
)

// VoucherRate is an elevated rate for purchases routed through a voucher
// channel, always subject to a monthly cap.
type VoucherRate struct {
	Name       string  `yaml:"name"`
	Rate       float64 `yaml:"rate"`
	MonthlyCap float64 `yaml:"monthly_cap"`
}

// CategoryRate is an elevated rate for a spend category. MonthlyCap 0 means
// uncapped.
type CategoryRate struct {
	Category   string  `yaml:"category"`
	Rate       float64 `yaml:"rate"`
	MonthlyCap float64 `yaml:"monthly_cap,omitempty"`
}

// Card describes one payment instrument's reward structure. Cards are built
// once at startup and never mutated; all matchers are case-insensitive
// substrings. Declaration order inside the catalog is significant: it breaks
// ties during selection.
type Card struct {
	Name           string         `yaml:"name"`
	Unit           RewardUnit     `yaml:"unit"`
	BaseRate       float64        `yaml:"base_rate"`
	Specials       []CategoryRate `yaml:"specials,omitempty"`
	Vouchers       []VoucherRate  `yaml:"vouchers,omitempty"`
	Exclusions     []string       `yaml:"exclusions,omitempty"`
	AnnualFee      float64        `yaml:"annual_fee,omitempty"`
	FeeWaiverSpend float64        `yaml:"fee_waiver_spend,omitempty"`
}

package model

// DateLayout is the stored representation of expense timestamps. Month and
// year aggregation works by string prefix against this layout, so the format
// must stay lexicographically ordered.
const DateLayout = "2006-01-02 15:04:05"

// ExpenseRecord is one persisted expense. Records are append-only: once
// written they are never mutated or deleted, and Card may reference a card
// that has since left the catalog. New fields must be optional so old ledger
// files stay readable.
type ExpenseRecord struct {
	Date       string  `json:"date"`
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Card       string  `json:"card"`
	ViaVoucher string  `json:"via_voucher,omitempty"`
}

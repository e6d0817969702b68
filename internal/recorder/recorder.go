package recorder

// RecommendationEvent holds one served recommendation.
type RecommendationEvent struct {
	UserID     int64
	Category   string
	Amount     float64
	ViaVoucher string
	Card       string
	Rate       float64
	Reason     string
}

// ExpenseEvent holds one saved expense.
type ExpenseEvent struct {
	UserID     int64
	Category   string
	Amount     float64
	Card       string
	ViaVoucher string
}

// Recorder persists an audit trail of recommendations and saved expenses for
// later analysis. It is advisory: callers log failures and move on.
type Recorder interface {
	RecordRecommendation(evt *RecommendationEvent) error
	RecordExpense(evt *ExpenseEvent) error
	Close() error
}

package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists the audit trail to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so analysis tooling can read while the bot writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS recommendations (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			user_id     INTEGER NOT NULL,
			category    TEXT,
			amount      REAL,
			via_voucher TEXT,
			card        TEXT,
			rate        REAL,
			reason      TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reco_user_ts ON recommendations(user_id, timestamp)`,

		`CREATE TABLE IF NOT EXISTS expenses (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			user_id     INTEGER NOT NULL,
			category    TEXT,
			amount      REAL,
			card        TEXT,
			via_voucher TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_expense_user_ts ON expenses(user_id, timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRecommendation(evt *RecommendationEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO recommendations
		(timestamp, user_id, category, amount, via_voucher, card, rate, reason)
		VALUES (?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.UserID, evt.Category, evt.Amount,
		evt.ViaVoucher, evt.Card, evt.Rate, evt.Reason,
	)
	return err
}

func (r *SQLiteRecorder) RecordExpense(evt *ExpenseEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO expenses
		(timestamp, user_id, category, amount, card, via_voucher)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), evt.UserID, evt.Category, evt.Amount,
		evt.Card, evt.ViaVoucher,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

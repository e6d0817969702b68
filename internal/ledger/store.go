package ledger

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"CardSentinel/internal/model"
)

// FileStore keeps one JSON ledger file per user under a data directory.
// Histories are small (months of personal expenses), so every access loads
// the full file and every append rewrites it atomically.
//
// Appends for the same user are serialized by a per-user mutex spanning
// load-then-append, so concurrent saves never drop a record. Different users
// are fully independent. Reads take no lock: the rename on save is atomic,
// so a loader sees either the previous or the new full ledger.
type FileStore struct {
	dir string

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir, locks: make(map[int64]*sync.Mutex)}, nil
}

func (s *FileStore) userLock(userID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

func (s *FileStore) path(userID int64) string {
	return filepath.Join(s.dir, fmt.Sprintf("user_%d.json", userID))
}

// Load returns the user's ledger. A missing file is an empty ledger, not an
// error; an unreadable or corrupt file degrades to an empty ledger with a
// warning, so a recommendation can still be computed (capacity-blind) rather
// than failing outright.
func (s *FileStore) Load(userID int64) *Ledger {
	led := &Ledger{UserID: userID}
	data, err := os.ReadFile(s.path(userID))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[WARN] read ledger for user %d: %v, treating as empty", userID, err)
		}
		return led
	}
	if err := json.Unmarshal(data, &led.Records); err != nil {
		log.Printf("[WARN] corrupt ledger for user %d: %v, treating as empty", userID, err)
		led.Records = nil
	}
	return led
}

// Record appends one expense to the user's ledger and persists the full
// ledger atomically (temp file + rename). A write failure here must reach
// the caller: a user-confirmed save is the one place data loss is reported,
// never masked.
func (s *FileStore) Record(userID int64, rec model.ExpenseRecord) error {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	led := s.Load(userID)
	led.Records = append(led.Records, rec)

	data, err := json.MarshalIndent(led.Records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	path := s.path(userID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace ledger: %w", err)
	}
	return nil
}

// ListUsers enumerates every user with a ledger file, ascending.
func (s *FileStore) ListUsers() ([]int64, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read data dir: %w", err)
	}
	var users []int64
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "user_") || !strings.HasSuffix(name, ".json") {
			continue
		}
		id, err := strconv.ParseInt(strings.TrimSuffix(strings.TrimPrefix(name, "user_"), ".json"), 10, 64)
		if err != nil {
			continue
		}
		users = append(users, id)
	}
	sort.Slice(users, func(i, j int) bool { return users[i] < users[j] })
	return users, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ameliaholt/weekplan/internal/codec"
	"github.com/ameliaholt/weekplan/internal/domain"
)

// Storage keys within the schedule_store table. CurrentKey holds the
// versioned envelope; LegacyKey is the pre-envelope bare-array entry older
// installs wrote.
const (
	CurrentKey = "schedule.v2"
	LegacyKey  = "scheduleDataV1"
)

// SQLiteScheduleStore implements ScheduleStore over a SQLite database.
type SQLiteScheduleStore struct {
	db *sql.DB
}

// NewSQLiteScheduleStore creates a new SQLiteScheduleStore.
func NewSQLiteScheduleStore(db *sql.DB) *SQLiteScheduleStore {
	return &SQLiteScheduleStore{db: db}
}

// Load reads the stored schedule. When only a legacy entry exists it is
// decoded, rewritten once under the current key, and left in place under
// its own key. ErrNotFound means a fresh install; a decode error means the
// stored value is corrupt, and the caller decides whether that is fatal.
func (r *SQLiteScheduleStore) Load(ctx context.Context) (*domain.Schedule, error) {
	raw, err := r.get(ctx, CurrentKey)
	if err == nil {
		s, decErr := codec.Decode([]byte(raw), "")
		if decErr != nil {
			return nil, fmt.Errorf("decoding stored schedule: %w", decErr)
		}
		return s, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("reading stored schedule: %w", err)
	}

	// One-time migration path.
	raw, err = r.get(ctx, LegacyKey)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading legacy schedule: %w", err)
	}
	s, decErr := codec.Decode([]byte(raw), "")
	if decErr != nil {
		return nil, fmt.Errorf("decoding legacy schedule: %w", decErr)
	}
	if saveErr := r.Save(ctx, s); saveErr != nil {
		return nil, fmt.Errorf("rewriting legacy schedule: %w", saveErr)
	}
	return s, nil
}

// Save writes the full schedule under the current key.
func (r *SQLiteScheduleStore) Save(ctx context.Context, s *domain.Schedule) error {
	data, err := codec.Encode(s)
	if err != nil {
		return err
	}
	query := `INSERT INTO schedule_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, CurrentKey, string(data), nowUTC()); err != nil {
		return fmt.Errorf("writing schedule: %w", err)
	}
	return nil
}

// PutRaw writes an arbitrary value under a key, bypassing the codec. Used
// by tests and the legacy migration fixtures.
func (r *SQLiteScheduleStore) PutRaw(ctx context.Context, key, value string) error {
	query := `INSERT INTO schedule_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, value, nowUTC()); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func (r *SQLiteScheduleStore) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM schedule_store WHERE key = ?`, key).Scan(&value)
	return value, err
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

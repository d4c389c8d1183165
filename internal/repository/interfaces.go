package repository

import (
	"context"
	"errors"

	"github.com/ameliaholt/weekplan/internal/domain"
)

// ErrNotFound is returned by Load when no schedule has ever been stored.
var ErrNotFound = errors.New("no stored schedule")

// ScheduleStore is the durable persistence channel: a single keyed document
// read at startup and rewritten after every mutation.
type ScheduleStore interface {
	Load(ctx context.Context) (*domain.Schedule, error)
	Save(ctx context.Context, s *domain.Schedule) error
}

package service

import (
	"context"
	"errors"

	"github.com/ameliaholt/weekplan/internal/domain"
)

// ErrClassNotFound is returned when an id does not resolve to a record.
var ErrClassNotFound = errors.New("class not found")

// ScheduleService owns the single in-memory schedule for the session and
// funnels every mutation through validation and the durable store. All
// methods run on the caller's goroutine; there is no concurrent access.
type ScheduleService interface {
	// Bootstrap establishes session state: a non-empty share link is a
	// one-shot import that replaces and persists state (the link source
	// wins; nothing is merged), otherwise the durable store is loaded.
	Bootstrap(ctx context.Context, shareLink string) error

	// Schedule returns the live session schedule. Callers treat it as
	// read-only and mutate only through the operations below.
	Schedule() *domain.Schedule

	Find(id string) (*domain.ClassRecord, error)

	AddClass(ctx context.Context, fields domain.ClassFields) (string, error)
	UpdateClass(ctx context.Context, id string, fields domain.ClassFields) error
	DeleteClass(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
	SetTitle(ctx context.Context, title string) error

	ExportFile(ctx context.Context, dir string) (string, error)
	ImportFile(ctx context.Context, path string) error
	ShareLink(base string) (string, error)
	ImportLink(ctx context.Context, link string) error
}

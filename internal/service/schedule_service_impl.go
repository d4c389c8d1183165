package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ameliaholt/weekplan/internal/codec"
	"github.com/ameliaholt/weekplan/internal/domain"
	"github.com/ameliaholt/weekplan/internal/repository"
	"github.com/google/uuid"
)

type scheduleService struct {
	store   repository.ScheduleStore
	current *domain.Schedule

	// diag receives background-channel decode problems the user never
	// directly triggered. os.Stderr in the binary, io.Discard in tests.
	diag io.Writer
}

// NewScheduleService creates the session service. diag may be nil.
func NewScheduleService(store repository.ScheduleStore, diag io.Writer) ScheduleService {
	if diag == nil {
		diag = io.Discard
	}
	return &scheduleService{
		store:   store,
		current: domain.NewSchedule(),
		diag:    diag,
	}
}

func (s *scheduleService) Bootstrap(ctx context.Context, shareLink string) error {
	if shareLink != "" {
		imported, err := codec.DecodeShareLink(shareLink, s.current.Title)
		if err == nil {
			s.current = imported
			return s.persist(ctx)
		}
		// Non-fatal: note it and fall back to the durable store.
		fmt.Fprintf(s.diag, "weekplan: ignoring share link: %v\n", err)
	}

	stored, err := s.store.Load(ctx)
	switch {
	case err == nil:
		s.current = stored
	case errors.Is(err, repository.ErrNotFound):
		s.current = domain.NewSchedule()
	default:
		// Corrupt durable data must not kill the session; start empty and
		// leave the stored row for inspection.
		fmt.Fprintf(s.diag, "weekplan: ignoring stored schedule: %v\n", err)
		s.current = domain.NewSchedule()
	}
	return nil
}

func (s *scheduleService) Schedule() *domain.Schedule {
	return s.current
}

func (s *scheduleService) Find(id string) (*domain.ClassRecord, error) {
	if c := s.current.Find(id); c != nil {
		return c, nil
	}
	return nil, ErrClassNotFound
}

func (s *scheduleService) AddClass(ctx context.Context, fields domain.ClassFields) (string, error) {
	if verr := fields.Validate(); verr != nil {
		return "", verr
	}
	c := &domain.ClassRecord{ID: uuid.New().String()}
	fields.Apply(c)
	s.current.Classes = append(s.current.Classes, c)
	if err := s.persist(ctx); err != nil {
		return "", err
	}
	return c.ID, nil
}

func (s *scheduleService) UpdateClass(ctx context.Context, id string, fields domain.ClassFields) error {
	if verr := fields.Validate(); verr != nil {
		return verr
	}
	c := s.current.Find(id)
	if c == nil {
		return ErrClassNotFound
	}
	fields.Apply(c)
	return s.persist(ctx)
}

func (s *scheduleService) DeleteClass(ctx context.Context, id string) error {
	// Absent ids are a no-op, not an error.
	if !s.current.Remove(id) {
		return nil
	}
	return s.persist(ctx)
}

func (s *scheduleService) ClearAll(ctx context.Context) error {
	s.current.Classes = nil
	return s.persist(ctx)
}

func (s *scheduleService) SetTitle(ctx context.Context, title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		// Rejected silently; the title keeps its current value.
		return nil
	}
	s.current.Title = trimmed
	return s.persist(ctx)
}

func (s *scheduleService) ExportFile(ctx context.Context, dir string) (string, error) {
	data, err := codec.EncodePretty(s.current)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, codec.ExportFileName(s.current.Title))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing export file: %w", err)
	}
	return path, nil
}

func (s *scheduleService) ImportFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}
	imported, err := codec.Decode(data, s.current.Title)
	if err != nil {
		return err
	}
	s.current = imported
	return s.persist(ctx)
}

func (s *scheduleService) ShareLink(base string) (string, error) {
	return codec.BuildShareURL(base, s.current)
}

func (s *scheduleService) ImportLink(ctx context.Context, link string) error {
	imported, err := codec.DecodeShareLink(link, s.current.Title)
	if err != nil {
		return err
	}
	s.current = imported
	return s.persist(ctx)
}

func (s *scheduleService) persist(ctx context.Context) error {
	return s.store.Save(ctx, s.current)
}

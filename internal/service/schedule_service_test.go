package service_test

import (
	"context"
	"testing"

	"github.com/ameliaholt/weekplan/internal/domain"
	"github.com/ameliaholt/weekplan/internal/repository"
	"github.com/ameliaholt/weekplan/internal/service"
	"github.com/ameliaholt/weekplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (service.ScheduleService, repository.ScheduleStore) {
	t.Helper()
	store := repository.NewSQLiteScheduleStore(testutil.NewTestDB(t))
	svc := service.NewScheduleService(store, nil)
	require.NoError(t, svc.Bootstrap(context.Background(), ""))
	return svc, store
}

func mathFields() domain.ClassFields {
	return domain.ClassFields{
		Name:    "Linear Algebra",
		Teacher: "Dr. Okafor",
		Room:    "B212",
		Start:   "09:00",
		End:     "10:30",
		Days:    []domain.Weekday{domain.Monday, domain.Wednesday},
		Color:   "#22c55e",
	}
}

func TestAddClass_LookupReturnsExactFields(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	id, err := svc.AddClass(ctx, mathFields())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	c, err := svc.Find(id)
	require.NoError(t, err)
	assert.Equal(t, "Linear Algebra", c.Name)
	assert.Equal(t, "Dr. Okafor", c.Teacher)
	assert.Equal(t, "B212", c.Room)
	assert.Equal(t, "09:00", c.Start)
	assert.Equal(t, "10:30", c.End)
	assert.Equal(t, []domain.Weekday{domain.Monday, domain.Wednesday}, c.Days)
	assert.Equal(t, "#22c55e", c.Color)
}

func TestAddClass_ValidationFailureMutatesNothing(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	fields := mathFields()
	fields.Name = ""
	_, err := svc.AddClass(ctx, fields)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Please enter a class name.", verr.Message)
	assert.Empty(t, svc.Schedule().Classes)

	// Nothing was persisted either.
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateClass_ReplacesAllFieldsButID(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	id, err := svc.AddClass(ctx, mathFields())
	require.NoError(t, err)

	updated := domain.ClassFields{
		Name:  "Chemistry",
		Start: "14:00",
		End:   "15:00",
		Days:  []domain.Weekday{domain.Friday},
	}
	require.NoError(t, svc.UpdateClass(ctx, id, updated))

	c, err := svc.Find(id)
	require.NoError(t, err)
	assert.Equal(t, id, c.ID)
	assert.Equal(t, "Chemistry", c.Name)
	assert.Empty(t, c.Teacher)
	assert.Empty(t, c.Room)
	assert.Equal(t, []domain.Weekday{domain.Friday}, c.Days)
}

func TestUpdateClass_UnknownID(t *testing.T) {
	svc, _ := newService(t)
	err := svc.UpdateClass(context.Background(), "nope", mathFields())
	assert.ErrorIs(t, err, service.ErrClassNotFound)
}

func TestUpdateClass_ValidationFailureLeavesRecord(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	id, err := svc.AddClass(ctx, mathFields())
	require.NoError(t, err)

	bad := mathFields()
	bad.Start, bad.End = "10:00", "09:00"
	err = svc.UpdateClass(ctx, id, bad)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)

	c, err := svc.Find(id)
	require.NoError(t, err)
	assert.Equal(t, "09:00", c.Start)
}

func TestDeleteClass_RemovesExactlyOne(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	first, err := svc.AddClass(ctx, mathFields())
	require.NoError(t, err)
	second, err := svc.AddClass(ctx, domain.ClassFields{
		Name: "Studio", Start: "13:00", End: "15:00", Days: []domain.Weekday{domain.Friday},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteClass(ctx, first))
	require.Len(t, svc.Schedule().Classes, 1)
	assert.Equal(t, second, svc.Schedule().Classes[0].ID)

	// Absent id is a no-op.
	require.NoError(t, svc.DeleteClass(ctx, first))
	assert.Len(t, svc.Schedule().Classes, 1)
}

func TestClearAll(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	_, err := svc.AddClass(ctx, mathFields())
	require.NoError(t, err)
	require.NoError(t, svc.ClearAll(ctx))
	assert.Empty(t, svc.Schedule().Classes)

	stored, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored.Classes)
}

func TestSetTitle(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetTitle(ctx, "  Fall 2026  "))
	assert.Equal(t, "Fall 2026", svc.Schedule().Title)

	// Whitespace-only input is rejected silently.
	require.NoError(t, svc.SetTitle(ctx, "   "))
	assert.Equal(t, "Fall 2026", svc.Schedule().Title)
}

func TestMutationsPersistAcrossSessions(t *testing.T) {
	store := repository.NewSQLiteScheduleStore(testutil.NewTestDB(t))
	ctx := context.Background()

	first := service.NewScheduleService(store, nil)
	require.NoError(t, first.Bootstrap(ctx, ""))
	id, err := first.AddClass(ctx, mathFields())
	require.NoError(t, err)
	require.NoError(t, first.SetTitle(ctx, "Persisted"))

	second := service.NewScheduleService(store, nil)
	require.NoError(t, second.Bootstrap(ctx, ""))
	assert.Equal(t, "Persisted", second.Schedule().Title)
	c, err := second.Find(id)
	require.NoError(t, err)
	assert.Equal(t, "Linear Algebra", c.Name)
}

package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iiitdwd/timetable-api/internal/models"
	appErrors "github.com/iiitdwd/timetable-api/pkg/errors"
)

func course(id, code string) *models.Course {
	return models.NewCourse(id, "Course "+code, code, 4, 60, models.CourseTypeLecture, 40)
}

func TestStorePutGet(t *testing.T) {
	store := NewStore[*models.Course]()
	store.Put(course("c1", "CS101"))

	got, err := store.Get("c1")
	require.NoError(t, err)
	assert.Equal(t, "CS101", got.Code)
	assert.Equal(t, 1, store.Len())
}

func TestStoreGetNotFound(t *testing.T) {
	store := NewStore[*models.Course]()
	_, err := store.Get("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestStoreListInsertionOrder(t *testing.T) {
	store := NewStore[*models.Course]()
	store.Put(course("c2", "CS201"))
	store.Put(course("c1", "CS101"))
	store.Put(course("c3", "CS301"))

	var ids []string
	for _, c := range store.List() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"c2", "c1", "c3"}, ids)
}

func TestStoreUpsertKeepsPosition(t *testing.T) {
	store := NewStore[*models.Course]()
	store.Put(course("c1", "CS101"))
	store.Put(course("c2", "CS201"))

	replacement := course("c1", "CS101R")
	store.Put(replacement)

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, "c1", list[0].ID)
	assert.Equal(t, "CS101R", list[0].Code)
}

func TestStoreDelete(t *testing.T) {
	store := NewStore[*models.Course]()
	store.Put(course("c1", "CS101"))
	store.Put(course("c2", "CS201"))

	require.NoError(t, store.Delete("c1"))
	assert.Equal(t, 1, store.Len())

	var ids []string
	for _, c := range store.List() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"c2"}, ids)

	err := store.Delete("c1")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestStoreClear(t *testing.T) {
	store := NewStore[*models.Course]()
	store.Put(course("c1", "CS101"))
	store.Put(course("c2", "CS201"))

	store.Clear()
	assert.Zero(t, store.Len())
	assert.Empty(t, store.List())

	// The store stays usable after clearing.
	store.Put(course("c3", "CS301"))
	assert.Equal(t, 1, store.Len())
}

func TestRepositoryReset(t *testing.T) {
	repo := New()
	repo.Courses.Put(course("c1", "CS101"))
	repo.Professors.Put(models.NewProfessor("p1", "Anita Rao", "anita@iiitdwd.ac.in", "CSE", models.DesignationProfessor))
	repo.Schedules.Put(models.NewSchedule("s1", "Schedule", nil))

	repo.Reset()
	assert.Zero(t, repo.Courses.Len())
	assert.Zero(t, repo.Professors.Len())
	assert.Zero(t, repo.Rooms.Len())
	assert.Zero(t, repo.TimeSlots.Len())
	assert.Zero(t, repo.Schedules.Len())
}

package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iiitdwd/timetable-api/internal/models"
	"github.com/iiitdwd/timetable-api/internal/repository"
	appErrors "github.com/iiitdwd/timetable-api/pkg/errors"
)

func newTestExportService(t *testing.T) (*ExportService, *repository.Repository) {
	t.Helper()
	repo := repository.New()
	return NewExportService(repo, nil), repo
}

func seedExportFixture(t *testing.T, repo *repository.Repository) *models.Schedule {
	t.Helper()

	repo.Courses.Put(models.NewCourse("c1", "Data Structures", "CS201", 4, 60, models.CourseTypeLecture, 40))
	repo.Professors.Put(models.NewProfessor("p1", "Anita Rao", "anita@iiitdwd.ac.in", "CSE", models.DesignationProfessor))
	repo.Rooms.Put(models.NewRoom("r1", "LH-101", "Main Block", 1, 50, models.RoomTypeClassroom))
	repo.TimeSlots.Put(models.NewTimeSlot("ts1", models.Monday, models.Clock{Hour: 9}, models.Clock{Hour: 10}, models.SlotTypeRegular))

	schedule := models.NewSchedule("s1", "Export Fixture", []models.Assignment{
		{ID: "c1_p1_r1_ts1", CourseID: "c1", ProfessorID: "p1", RoomID: "r1", TimeSlotID: "ts1", SessionNumber: 1},
	})
	repo.Schedules.Put(schedule)
	return schedule
}

func TestExportCSVResolvesNames(t *testing.T) {
	svc, repo := newTestExportService(t)
	seedExportFixture(t, repo)

	file, err := svc.ExportSchedule("s1", FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.Equal(t, "schedule_s1.csv", file.Filename)

	content := string(file.Content)
	assert.Contains(t, content, "CS201")
	assert.Contains(t, content, "Data Structures")
	assert.Contains(t, content, "Anita Rao")
	assert.Contains(t, content, "LH-101")
	assert.Contains(t, content, "monday")
	assert.Contains(t, content, "09:00 - 10:00")
}

func TestExportCSVFallsBackToRawIDs(t *testing.T) {
	svc, repo := newTestExportService(t)
	seedExportFixture(t, repo)

	// Entities deleted after generation no longer resolve.
	require.NoError(t, repo.Professors.Delete("p1"))
	require.NoError(t, repo.TimeSlots.Delete("ts1"))

	file, err := svc.ExportSchedule("s1", FormatCSV)
	require.NoError(t, err)
	content := string(file.Content)
	assert.Contains(t, content, "p1")
	assert.Contains(t, content, "ts1")
}

func TestExportJSON(t *testing.T) {
	svc, repo := newTestExportService(t)
	seedExportFixture(t, repo)

	file, err := svc.ExportSchedule("s1", FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "application/json", file.ContentType)

	decoded, err := models.ScheduleFromJSON(file.Content)
	require.NoError(t, err)
	assert.Equal(t, "s1", decoded.ID)
	assert.Len(t, decoded.Assignments, 1)
}

func TestExportPDF(t *testing.T) {
	svc, repo := newTestExportService(t)
	seedExportFixture(t, repo)

	file, err := svc.ExportSchedule("s1", FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasPrefix(string(file.Content), "%PDF"))
}

func TestExportUnsupportedFormat(t *testing.T) {
	svc, repo := newTestExportService(t)
	seedExportFixture(t, repo)

	_, err := svc.ExportSchedule("s1", "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestExportUnknownSchedule(t *testing.T) {
	svc, _ := newTestExportService(t)

	_, err := svc.ExportSchedule("missing", FormatCSV)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

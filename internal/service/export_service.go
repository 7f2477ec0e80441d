package service

import (
	"go.uber.org/zap"

	"github.com/iiitdwd/timetable-api/internal/models"
	"github.com/iiitdwd/timetable-api/internal/repository"
	appErrors "github.com/iiitdwd/timetable-api/pkg/errors"
	"github.com/iiitdwd/timetable-api/pkg/export"
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ExportFile is a rendered download.
type ExportFile struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders stored schedules into downloadable formats, resolving
// assignment ids against the entity catalog.
type ExportService struct {
	repo   *repository.Repository
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
}

// NewExportService wires export dependencies.
func NewExportService(repo *repository.Repository, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		repo:   repo,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
	}
}

// ExportSchedule renders a stored schedule in the requested format.
func (s *ExportService) ExportSchedule(scheduleID, format string) (*ExportFile, error) {
	schedule, err := s.repo.Schedules.Get(scheduleID)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatCSV:
		content, err := s.csv.Render(s.resolveRows(schedule))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render csv export")
		}
		return &ExportFile{Content: content, ContentType: "text/csv", Filename: "schedule_" + schedule.ID + ".csv"}, nil
	case FormatPDF:
		content, err := s.pdf.Render(s.resolveRows(schedule), schedule.Name)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render pdf export")
		}
		return &ExportFile{Content: content, ContentType: "application/pdf", Filename: "schedule_" + schedule.ID + ".pdf"}, nil
	case FormatJSON:
		content, err := schedule.ToJSON()
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render json export")
		}
		return &ExportFile{Content: content, ContentType: "application/json", Filename: "schedule_" + schedule.ID + ".json"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format "+format)
	}
}

// resolveRows flattens assignments against the catalog. Entities deleted
// since generation fall back to their raw ids.
func (s *ExportService) resolveRows(schedule *models.Schedule) []export.TimetableRow {
	rows := make([]export.TimetableRow, 0, len(schedule.Assignments))
	for _, a := range schedule.Assignments {
		row := export.TimetableRow{
			CourseCode:    a.CourseID,
			CourseName:    a.CourseID,
			Professor:     a.ProfessorID,
			Room:          a.RoomID,
			Day:           a.TimeSlotID,
			SessionNumber: a.SessionNumber,
		}
		if course, err := s.repo.Courses.Get(a.CourseID); err == nil {
			row.CourseCode = course.Code
			row.CourseName = course.Name
		}
		if professor, err := s.repo.Professors.Get(a.ProfessorID); err == nil {
			row.Professor = professor.Name
		}
		if room, err := s.repo.Rooms.Get(a.RoomID); err == nil {
			row.Room = room.Name
		}
		if slot, err := s.repo.TimeSlots.Get(a.TimeSlotID); err == nil {
			row.Day = string(slot.Day)
			row.Time = slot.FormatTimeRange()
		}
		rows = append(rows, row)
	}
	return rows
}

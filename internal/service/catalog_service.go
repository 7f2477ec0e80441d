package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iiitdwd/timetable-api/internal/dto"
	"github.com/iiitdwd/timetable-api/internal/models"
	"github.com/iiitdwd/timetable-api/internal/repository"
	appErrors "github.com/iiitdwd/timetable-api/pkg/errors"
)

// CatalogService manages the scheduling entities: courses, professors, rooms
// and time slots.
type CatalogService struct {
	repo      *repository.Repository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCatalogService wires catalog dependencies.
func NewCatalogService(repo *repository.Repository, validate *validator.Validate, logger *zap.Logger) *CatalogService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{repo: repo, validator: validate, logger: logger}
}

// CreateCourse registers a course. Missing optional fields take the entity
// defaults.
func (s *CatalogService) CreateCourse(req dto.CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	courseType := models.CourseType(req.CourseType)
	if !courseType.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown course_type "+req.CourseType)
	}
	if _, err := s.repo.Courses.Get(req.ID); req.ID != "" && err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "course id "+req.ID+" already exists")
	}

	course := models.NewCourse(orGenerated(req.ID), req.Name, req.Code, req.Credits, req.Duration, courseType, req.Capacity)
	course.ProfessorID = req.ProfessorID
	if len(req.RequiredEquipment) > 0 {
		course.RequiredEquipment = req.RequiredEquipment
	}
	if len(req.Prerequisites) > 0 {
		course.Prerequisites = req.Prerequisites
	}
	course.IsElective = req.IsElective
	if req.Semester > 0 {
		course.Semester = req.Semester
	}
	if req.Branch != "" {
		course.Branch = req.Branch
	}

	s.repo.Courses.Put(course)
	s.logger.Info("course registered", zap.String("course_id", course.ID), zap.String("code", course.Code))
	return course, nil
}

// CreateProfessor registers a professor and applies slot preferences.
// Preference values must be one of preferred, available, not_preferred or
// unavailable; slots listed as unavailable override any preference.
func (s *CatalogService) CreateProfessor(req dto.CreateProfessorRequest) (*models.Professor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid professor payload")
	}

	designation := models.Designation(req.Designation)
	if req.Designation == "" {
		designation = models.DesignationAssistantProfessor
	}
	if !designation.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown designation "+req.Designation)
	}
	if _, err := s.repo.Professors.Get(req.ID); req.ID != "" && err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "professor id "+req.ID+" already exists")
	}

	professor := models.NewProfessor(orGenerated(req.ID), req.Name, req.Email, req.Department, designation)
	professor.Specializations = req.Specializations
	if req.MaxHoursPerWeek > 0 {
		professor.MaxHoursPerWeek = req.MaxHoursPerWeek
	}
	if req.MaxCourses > 0 {
		professor.MaxCourses = req.MaxCourses
	}
	for slotID, value := range req.Preferences {
		availability := models.Availability(value)
		if !availability.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unknown availability "+value+" for slot "+slotID)
		}
		professor.SetPreference(slotID, availability)
	}
	for _, slotID := range req.UnavailableSlots {
		professor.AddUnavailableSlot(slotID)
	}

	s.repo.Professors.Put(professor)
	s.logger.Info("professor registered", zap.String("professor_id", professor.ID), zap.String("department", professor.Department))
	return professor, nil
}

// CreateRoom registers a room. Unknown feature names are dropped rather than
// rejected.
func (s *CatalogService) CreateRoom(req dto.CreateRoomRequest) (*models.Room, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid room payload")
	}
	roomType := models.RoomType(req.RoomType)
	if !roomType.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown room_type "+req.RoomType)
	}
	if _, err := s.repo.Rooms.Get(req.ID); req.ID != "" && err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "room id "+req.ID+" already exists")
	}

	room := models.NewRoom(orGenerated(req.ID), req.Name, req.Building, req.Floor, req.Capacity, roomType)
	room.Features = models.CoerceFeatures(req.Features)
	room.IsAccessible = req.IsAccessible
	if req.BookingPriority > 0 {
		room.BookingPriority = req.BookingPriority
	}
	for _, slotID := range req.MaintenanceSlots {
		room.AddMaintenanceSlot(slotID)
	}

	s.repo.Rooms.Put(room)
	s.logger.Info("room registered", zap.String("room_id", room.ID), zap.String("room_type", string(room.RoomType)))
	return room, nil
}

// CreateTimeSlot registers a time slot. Times are "HH:MM" strings; an end
// time at or before the start is treated as wrapping past midnight.
func (s *CatalogService) CreateTimeSlot(req dto.CreateTimeSlotRequest) (*models.TimeSlot, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid time slot payload")
	}
	day := models.DayOfWeek(req.Day)
	if !day.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown day "+req.Day)
	}
	start, err := models.ParseClock(req.StartTime)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid start_time")
	}
	end, err := models.ParseClock(req.EndTime)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid end_time")
	}
	slotType := models.SlotTypeRegular
	if req.SlotType != "" {
		slotType = models.SlotType(req.SlotType)
		if !slotType.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unknown slot_type "+req.SlotType)
		}
	}
	if _, err := s.repo.TimeSlots.Get(req.ID); req.ID != "" && err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "time slot id "+req.ID+" already exists")
	}

	slot := models.NewTimeSlot(orGenerated(req.ID), day, start, end, slotType)
	if req.Name != "" {
		slot.Name = req.Name
	}
	if req.Priority > 0 {
		slot.Priority = req.Priority
	}

	s.repo.TimeSlots.Put(slot)
	s.logger.Info("time slot registered", zap.String("time_slot_id", slot.ID), zap.String("day", string(slot.Day)))
	return slot, nil
}

// ListCourses returns all courses in insertion order.
func (s *CatalogService) ListCourses() []*models.Course { return s.repo.Courses.List() }

// ListProfessors returns all professors in insertion order.
func (s *CatalogService) ListProfessors() []*models.Professor { return s.repo.Professors.List() }

// ListRooms returns all rooms in insertion order.
func (s *CatalogService) ListRooms() []*models.Room { return s.repo.Rooms.List() }

// ListTimeSlots returns all time slots in insertion order.
func (s *CatalogService) ListTimeSlots() []*models.TimeSlot { return s.repo.TimeSlots.List() }

// GetCourse fetches one course.
func (s *CatalogService) GetCourse(id string) (*models.Course, error) { return s.repo.Courses.Get(id) }

// GetProfessor fetches one professor.
func (s *CatalogService) GetProfessor(id string) (*models.Professor, error) {
	return s.repo.Professors.Get(id)
}

// GetRoom fetches one room.
func (s *CatalogService) GetRoom(id string) (*models.Room, error) { return s.repo.Rooms.Get(id) }

// GetTimeSlot fetches one time slot.
func (s *CatalogService) GetTimeSlot(id string) (*models.TimeSlot, error) {
	return s.repo.TimeSlots.Get(id)
}

// DeleteCourse removes a course.
func (s *CatalogService) DeleteCourse(id string) error { return s.repo.Courses.Delete(id) }

// DeleteProfessor removes a professor.
func (s *CatalogService) DeleteProfessor(id string) error { return s.repo.Professors.Delete(id) }

// DeleteRoom removes a room.
func (s *CatalogService) DeleteRoom(id string) error { return s.repo.Rooms.Delete(id) }

// DeleteTimeSlot removes a time slot.
func (s *CatalogService) DeleteTimeSlot(id string) error { return s.repo.TimeSlots.Delete(id) }

func orGenerated(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

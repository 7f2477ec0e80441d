package dto

// CreateCourseRequest captures the payload for registering a course.
type CreateCourseRequest struct {
	ID                string   `json:"id"`
	Name              string   `json:"name" validate:"required"`
	Code              string   `json:"code" validate:"required"`
	Credits           int      `json:"credits" validate:"required,min=1,max=10"`
	Duration          int      `json:"duration" validate:"required,min=30,max=300"`
	CourseType        string   `json:"course_type" validate:"required"`
	Capacity          int      `json:"capacity" validate:"required,min=1"`
	ProfessorID       string   `json:"professor_id"`
	RequiredEquipment []string `json:"required_equipment"`
	Prerequisites     []string `json:"prerequisites"`
	IsElective        bool     `json:"is_elective"`
	Semester          int      `json:"semester" validate:"omitempty,min=1,max=10"`
	Branch            string   `json:"branch"`
}

// CreateProfessorRequest captures the payload for registering a professor.
type CreateProfessorRequest struct {
	ID               string            `json:"id"`
	Name             string            `json:"name" validate:"required"`
	Email            string            `json:"email" validate:"required,email"`
	Department       string            `json:"department" validate:"required"`
	Designation      string            `json:"designation"`
	Specializations  []string          `json:"specializations"`
	MaxHoursPerWeek  int               `json:"max_hours_per_week" validate:"omitempty,min=1,max=60"`
	MaxCourses       int               `json:"max_courses" validate:"omitempty,min=1,max=10"`
	Preferences      map[string]string `json:"preferences"`
	UnavailableSlots []string          `json:"unavailable_slots"`
}

// CreateRoomRequest captures the payload for registering a room.
type CreateRoomRequest struct {
	ID               string   `json:"id"`
	Name             string   `json:"name" validate:"required"`
	Building         string   `json:"building"`
	Floor            int      `json:"floor"`
	Capacity         int      `json:"capacity" validate:"required,min=1"`
	RoomType         string   `json:"room_type" validate:"required"`
	Features         []string `json:"features"`
	IsAccessible     bool     `json:"is_accessible"`
	BookingPriority  int      `json:"booking_priority" validate:"omitempty,min=1,max=10"`
	MaintenanceSlots []string `json:"maintenance_slots"`
}

// CreateTimeSlotRequest captures the payload for registering a time slot.
type CreateTimeSlotRequest struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Day       string `json:"day" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	SlotType  string `json:"slot_type"`
	Priority  int    `json:"priority" validate:"omitempty,min=1,max=10"`
}

package models

import "strings"

// CourseType enumerates the kinds of courses that can be scheduled.
type CourseType string

const (
	CourseTypeLecture    CourseType = "lecture"
	CourseTypeLaboratory CourseType = "laboratory"
	CourseTypeTutorial   CourseType = "tutorial"
	CourseTypeSeminar    CourseType = "seminar"
)

// Valid reports whether the value is a known course type.
func (t CourseType) Valid() bool {
	switch t {
	case CourseTypeLecture, CourseTypeLaboratory, CourseTypeTutorial, CourseTypeSeminar:
		return true
	}
	return false
}

// Course represents a unit of instruction that must be placed on the timetable.
type Course struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Code              string     `json:"code"`
	Credits           int        `json:"credits"`
	Duration          int        `json:"duration"` // minutes per session
	CourseType        CourseType `json:"course_type"`
	Capacity          int        `json:"capacity"`
	ProfessorID       string     `json:"professor_id,omitempty"`
	RequiredEquipment []string   `json:"required_equipment"`
	Prerequisites     []string   `json:"prerequisites"`
	IsElective        bool       `json:"is_elective"`
	Semester          int        `json:"semester"`
	Branch            string     `json:"branch"`
}

// NewCourse builds a course with explicit defaults so that optional slices are
// never shared nil references.
func NewCourse(id, name, code string, credits, duration int, courseType CourseType, capacity int) *Course {
	return &Course{
		ID:                id,
		Name:              name,
		Code:              code,
		Credits:           credits,
		Duration:          duration,
		CourseType:        courseType,
		Capacity:          capacity,
		RequiredEquipment: []string{},
		Prerequisites:     []string{},
		Semester:          1,
		Branch:            "CSE",
	}
}

// HasEquipmentRequirement reports whether the course lists the given equipment,
// matched case-insensitively.
func (c *Course) HasEquipmentRequirement(equipment string) bool {
	for _, eq := range c.RequiredEquipment {
		if strings.EqualFold(eq, equipment) {
			return true
		}
	}
	return false
}

// PrerequisitesSatisfied reports whether every prerequisite appears in the
// completed course list.
func (c *Course) PrerequisitesSatisfied(completed []string) bool {
	for _, prereq := range c.Prerequisites {
		found := false
		for _, done := range completed {
			if done == prereq {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// SessionsPerWeek derives the weekly session count from credits and type.
// Labs meet once per credit, lectures roughly every other credit, everything
// else once a week.
func (c *Course) SessionsPerWeek() int {
	switch c.CourseType {
	case CourseTypeLaboratory:
		return c.Credits
	case CourseTypeLecture:
		if c.Credits/2 < 1 {
			return 1
		}
		return c.Credits / 2
	default:
		return 1
	}
}

package models

import (
	"encoding/json"
	"time"
)

// Assignment binds one course session to a professor, room and time slot.
type Assignment struct {
	ID            string `json:"id"`
	CourseID      string `json:"course_id"`
	ProfessorID   string `json:"professor_id"`
	RoomID        string `json:"room_id"`
	TimeSlotID    string `json:"time_slot_id"`
	SessionNumber int    `json:"session_number"`
}

// Schedule is a complete generated timetable: an ordered list of assignments
// plus the metadata the solvers attach to it. An empty assignment list
// represents "no solution found".
type Schedule struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	Assignments          []Assignment   `json:"assignments"`
	CreatedAt            time.Time      `json:"created_at"`
	AlgorithmUsed        string         `json:"algorithm_used,omitempty"`
	QualityScore         float64        `json:"quality_score"`
	Statistics           map[string]any `json:"statistics,omitempty"`
	ConstraintsSatisfied int            `json:"constraints_satisfied"`
	TotalConstraints     int            `json:"total_constraints"`
}

// NewSchedule builds a schedule with a non-nil assignment list.
func NewSchedule(id, name string, assignments []Assignment) *Schedule {
	if assignments == nil {
		assignments = []Assignment{}
	}
	return &Schedule{
		ID:          id,
		Name:        name,
		Assignments: assignments,
		CreatedAt:   time.Now().UTC(),
	}
}

// AddAssignment appends an assignment to the schedule.
func (s *Schedule) AddAssignment(a Assignment) {
	s.Assignments = append(s.Assignments, a)
}

// AssignmentsByCourse returns assignments for the course, in schedule order.
func (s *Schedule) AssignmentsByCourse(courseID string) []Assignment {
	var result []Assignment
	for _, a := range s.Assignments {
		if a.CourseID == courseID {
			result = append(result, a)
		}
	}
	return result
}

// AssignmentsByProfessor returns assignments for the professor, in schedule order.
func (s *Schedule) AssignmentsByProfessor(professorID string) []Assignment {
	var result []Assignment
	for _, a := range s.Assignments {
		if a.ProfessorID == professorID {
			result = append(result, a)
		}
	}
	return result
}

// AssignmentsByTimeSlot returns assignments occupying the slot, in schedule order.
func (s *Schedule) AssignmentsByTimeSlot(timeSlotID string) []Assignment {
	var result []Assignment
	for _, a := range s.Assignments {
		if a.TimeSlotID == timeSlotID {
			result = append(result, a)
		}
	}
	return result
}

// HasConflicts reports whether any two assignments share a time slot together
// with either a professor or a room.
func (s *Schedule) HasConflicts() bool {
	type pair struct{ resource, slot string }

	professorSlots := make(map[pair]struct{}, len(s.Assignments))
	for _, a := range s.Assignments {
		key := pair{a.ProfessorID, a.TimeSlotID}
		if _, seen := professorSlots[key]; seen {
			return true
		}
		professorSlots[key] = struct{}{}
	}

	roomSlots := make(map[pair]struct{}, len(s.Assignments))
	for _, a := range s.Assignments {
		key := pair{a.RoomID, a.TimeSlotID}
		if _, seen := roomSlots[key]; seen {
			return true
		}
		roomSlots[key] = struct{}{}
	}

	return false
}

// ConflictCount counts double-bookings per time slot: within each slot group
// it adds (assignments − distinct professors) + (assignments − distinct
// rooms). When three or more assignments collide on one slot this
// double-counts; that behaviour is intentional and relied upon nowhere except
// reporting, so it is kept as-is.
func (s *Schedule) ConflictCount() int {
	bySlot := make(map[string][]Assignment)
	for _, a := range s.Assignments {
		bySlot[a.TimeSlotID] = append(bySlot[a.TimeSlotID], a)
	}

	conflicts := 0
	for _, group := range bySlot {
		if len(group) <= 1 {
			continue
		}
		professors := make(map[string]struct{}, len(group))
		rooms := make(map[string]struct{}, len(group))
		for _, a := range group {
			professors[a.ProfessorID] = struct{}{}
			rooms[a.RoomID] = struct{}{}
		}
		conflicts += len(group) - len(professors)
		conflicts += len(group) - len(rooms)
	}
	return conflicts
}

// UtilizationStats summarises how often each professor, room and slot is used.
func (s *Schedule) UtilizationStats() map[string]any {
	professorUsage := make(map[string]int)
	roomUsage := make(map[string]int)
	timeSlotUsage := make(map[string]int)
	for _, a := range s.Assignments {
		professorUsage[a.ProfessorID]++
		roomUsage[a.RoomID]++
		timeSlotUsage[a.TimeSlotID]++
	}
	return map[string]any{
		"professors":        professorUsage,
		"rooms":             roomUsage,
		"time_slots":        timeSlotUsage,
		"total_assignments": len(s.Assignments),
		"unique_professors": len(professorUsage),
		"unique_rooms":      len(roomUsage),
		"unique_time_slots": len(timeSlotUsage),
	}
}

// ToJSON renders the schedule as indented JSON.
func (s *Schedule) ToJSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// ScheduleFromJSON reconstructs a schedule from its JSON form.
func ScheduleFromJSON(data []byte) (*Schedule, error) {
	var s Schedule
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.Assignments == nil {
		s.Assignments = []Assignment{}
	}
	return &s, nil
}

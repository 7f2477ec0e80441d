// Package scheduler contains the timetable solving core: a constraint
// satisfaction solver and a genetic solver behind a common interface, plus
// the schedule quality evaluation both share. The package operates on a
// read-only snapshot of entities and never mutates them; the schedules it
// returns are owned by the caller.
package scheduler

import (
	"sort"

	"github.com/samber/lo"

	"github.com/iiitdwd/timetable-api/internal/models"
)

// Algorithm names accepted by the service layer.
const (
	AlgorithmConstraintSatisfaction = "constraint_satisfaction"
	AlgorithmGenetic                = "genetic"
)

// Scheduler is the capability surface every solving strategy implements.
// Callers hold this interface, never a concrete solver type.
type Scheduler interface {
	// GenerateSchedule runs the algorithm to completion and returns the best
	// schedule found. Infeasibility is reported through a sentinel schedule
	// with zero assignments, never through an error.
	GenerateSchedule() *models.Schedule
	// ValidateSchedule reports whether the schedule satisfies the hard
	// constraints (no professor or room double-bookings).
	ValidateSchedule(s *models.Schedule) bool
	// OptimizeSchedule attempts to improve the soft-constraint quality of an
	// existing schedule without breaking hard constraints.
	OptimizeSchedule(s *models.Schedule) *models.Schedule
}

// Dataset is the read-only entity snapshot a solver works from.
type Dataset struct {
	Courses    []*models.Course
	Professors []*models.Professor
	Rooms      []*models.Room
	TimeSlots  []*models.TimeSlot
}

// Canonicalize returns a copy of the dataset with every collection in the
// canonical order both solvers preprocess to: courses by (semester, descending
// credits, code), professors by (department, name), rooms by (room type,
// descending capacity), time slots by (day, start time). Heuristic
// tie-breaking depends on this order, so it must stay stable.
func (d Dataset) Canonicalize() Dataset {
	out := Dataset{
		Courses:    append([]*models.Course(nil), d.Courses...),
		Professors: append([]*models.Professor(nil), d.Professors...),
		Rooms:      append([]*models.Room(nil), d.Rooms...),
		TimeSlots:  append([]*models.TimeSlot(nil), d.TimeSlots...),
	}

	sort.SliceStable(out.Courses, func(i, j int) bool {
		a, b := out.Courses[i], out.Courses[j]
		if a.Semester != b.Semester {
			return a.Semester < b.Semester
		}
		if a.Credits != b.Credits {
			return a.Credits > b.Credits
		}
		return a.Code < b.Code
	})

	sort.SliceStable(out.Professors, func(i, j int) bool {
		a, b := out.Professors[i], out.Professors[j]
		if a.Department != b.Department {
			return a.Department < b.Department
		}
		return a.Name < b.Name
	})

	sort.SliceStable(out.Rooms, func(i, j int) bool {
		a, b := out.Rooms[i], out.Rooms[j]
		if a.RoomType != b.RoomType {
			return a.RoomType < b.RoomType
		}
		return a.Capacity > b.Capacity
	})

	sort.SliceStable(out.TimeSlots, func(i, j int) bool {
		a, b := out.TimeSlots[i], out.TimeSlots[j]
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		return a.StartTime.Minutes() < b.StartTime.Minutes()
	})

	return out
}

// index provides id lookups over a dataset.
type index struct {
	courses    map[string]*models.Course
	professors map[string]*models.Professor
	rooms      map[string]*models.Room
	timeSlots  map[string]*models.TimeSlot
}

func newIndex(d Dataset) index {
	return index{
		courses:    lo.KeyBy(d.Courses, func(c *models.Course) string { return c.ID }),
		professors: lo.KeyBy(d.Professors, func(p *models.Professor) string { return p.ID }),
		rooms:      lo.KeyBy(d.Rooms, func(r *models.Room) string { return r.ID }),
		timeSlots:  lo.KeyBy(d.TimeSlots, func(ts *models.TimeSlot) string { return ts.ID }),
	}
}

// Quality scores a schedule against the dataset: the average per-assignment
// score, where each assignment earns a base 1.0 plus weighted bonuses for
// time-of-day preference (0.2), professor slot preference (0.3) and room
// suitability (0.2). An empty schedule scores 0.0. The score is only
// meaningful for conflict-free schedules.
func Quality(s *models.Schedule, d Dataset) float64 {
	if s == nil || len(s.Assignments) == 0 {
		return 0.0
	}

	idx := newIndex(d)
	total := 0.0
	for _, a := range s.Assignments {
		score := 1.0

		slot, slotOK := idx.timeSlots[a.TimeSlotID]
		if slotOK {
			score += slot.TimePreferenceScore() * 0.2
		}

		if professor, ok := idx.professors[a.ProfessorID]; ok && slotOK {
			score += professor.PreferenceScore(a.TimeSlotID) * 0.3
		}

		room, roomOK := idx.rooms[a.RoomID]
		course, courseOK := idx.courses[a.CourseID]
		if roomOK && courseOK {
			score += room.SuitabilityScore(course.CourseType, course.Capacity, course.RequiredEquipment) * 0.2
		}

		total += score
	}

	return total / float64(len(s.Assignments))
}

// Statistics summarises a generated schedule for reporting.
func Statistics(s *models.Schedule, d Dataset) map[string]any {
	if s == nil || len(s.Assignments) == 0 {
		return map[string]any{"total_assignments": 0, "courses_scheduled": 0}
	}

	stats := map[string]any{
		"total_assignments":   len(s.Assignments),
		"courses_scheduled":   len(lo.UniqBy(s.Assignments, func(a models.Assignment) string { return a.CourseID })),
		"professors_assigned": len(lo.UniqBy(s.Assignments, func(a models.Assignment) string { return a.ProfessorID })),
		"rooms_used":          len(lo.UniqBy(s.Assignments, func(a models.Assignment) string { return a.RoomID })),
		"time_slots_used":     len(lo.UniqBy(s.Assignments, func(a models.Assignment) string { return a.TimeSlotID })),
		"quality_score":       Quality(s, d),
		"algorithm":           s.AlgorithmUsed,
		"conflict_count":      s.ConflictCount(),
	}

	roomUsage := lo.CountValuesBy(s.Assignments, func(a models.Assignment) string { return a.RoomID })
	if len(roomUsage) > 0 {
		total := 0
		max := 0
		for _, count := range roomUsage {
			total += count
			if count > max {
				max = count
			}
		}
		stats["avg_room_utilization"] = float64(total) / float64(len(roomUsage))
		stats["max_room_usage"] = max
	}

	return stats
}

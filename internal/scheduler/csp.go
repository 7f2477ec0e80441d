package scheduler

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/iiitdwd/timetable-api/internal/models"
)

// candidate is one feasible (professor, room, time slot) placement for a
// course. Domains are slices of candidates kept in deterministic order.
type candidate struct {
	ProfessorID string
	RoomID      string
	TimeSlotID  string
}

// conflicts reports whether two placements for different courses collide:
// same time slot with either the same professor or the same room.
func (c candidate) conflicts(other candidate) bool {
	if c.TimeSlotID != other.TimeSlotID {
		return false
	}
	return c.ProfessorID == other.ProfessorID || c.RoomID == other.RoomID
}

// ConstraintSatisfactionScheduler solves the timetable as a constraint
// satisfaction problem: one variable per course, domains of feasible
// placements, AC-3 propagation and backtracking search with MRV and LCV
// heuristics. The search is fully deterministic: identical inputs always
// produce an identical assignment set.
type ConstraintSatisfactionScheduler struct {
	data Dataset
	opts CSPOptions

	courseIDs []string
	domains   map[string][]candidate
}

// NewConstraintSatisfactionScheduler snapshots the dataset in canonical
// order and builds the initial domains.
func NewConstraintSatisfactionScheduler(d Dataset, opts CSPOptions) *ConstraintSatisfactionScheduler {
	s := &ConstraintSatisfactionScheduler{
		data: d.Canonicalize(),
		opts: opts,
	}
	s.initDomains()
	return s
}

// initDomains enumerates, per course, every placement that passes the unary
// feasibility checks: an active professor from the course's branch who can
// teach it, a suitable and available room, and a slot type and length that
// fit the course.
func (s *ConstraintSatisfactionScheduler) initDomains() {
	s.courseIDs = make([]string, 0, len(s.data.Courses))
	s.domains = make(map[string][]candidate, len(s.data.Courses))

	for _, course := range s.data.Courses {
		s.courseIDs = append(s.courseIDs, course.ID)

		var domain []candidate
		for _, professor := range s.data.Professors {
			if professor.Department != course.Branch || !professor.CanTeach(course.Code, "") {
				continue
			}
			for _, room := range s.data.Rooms {
				if !room.IsSuitableForCourse(course.CourseType, course.Capacity, course.RequiredEquipment) {
					continue
				}
				for _, slot := range s.data.TimeSlots {
					if !slot.IsActive ||
						!slot.SuitableForCourseType(course.CourseType) ||
						!slot.CanAccommodateDuration(course.Duration) {
						continue
					}
					if !professor.IsAvailableAt(slot.ID) || !room.IsAvailableAt(slot.ID) {
						continue
					}
					domain = append(domain, candidate{
						ProfessorID: professor.ID,
						RoomID:      room.ID,
						TimeSlotID:  slot.ID,
					})
				}
			}
		}
		s.domains[course.ID] = domain
	}
}

// GenerateSchedule runs propagation and search. Infeasibility is returned as
// the failed sentinel schedule, never as an error.
func (s *ConstraintSatisfactionScheduler) GenerateSchedule() *models.Schedule {
	if s.opts.ArcConsistency && !s.enforceArcConsistency() {
		return failedSchedule()
	}

	assignment := make(map[string]candidate, len(s.courseIDs))
	if !s.backtrack(assignment) {
		return failedSchedule()
	}

	schedule := models.NewSchedule(uuid.NewString(), "CSP Generated Schedule", nil)
	schedule.AlgorithmUsed = AlgorithmConstraintSatisfaction
	for _, courseID := range s.courseIDs {
		c := assignment[courseID]
		schedule.AddAssignment(models.Assignment{
			ID:            fmt.Sprintf("%s_%s_%s_%s", courseID, c.ProfessorID, c.RoomID, c.TimeSlotID),
			CourseID:      courseID,
			ProfessorID:   c.ProfessorID,
			RoomID:        c.RoomID,
			TimeSlotID:    c.TimeSlotID,
			SessionNumber: 1,
		})
	}
	return schedule
}

// ValidateSchedule reports whether the schedule is free of hard-constraint
// violations.
func (s *ConstraintSatisfactionScheduler) ValidateSchedule(schedule *models.Schedule) bool {
	return schedule != nil && !schedule.HasConflicts()
}

// OptimizeSchedule re-runs the search from scratch and keeps whichever
// schedule scores better. The search itself already commits to the first
// consistent solution, so local improvement happens through value ordering
// rather than repair moves.
func (s *ConstraintSatisfactionScheduler) OptimizeSchedule(schedule *models.Schedule) *models.Schedule {
	regenerated := s.GenerateSchedule()
	if schedule == nil || len(regenerated.Assignments) == 0 {
		return schedule
	}
	if Quality(regenerated, s.data) >= Quality(schedule, s.data) {
		return regenerated
	}
	return schedule
}

// arc identifies a directed constraint edge between two courses.
type arc struct {
	from, to string
}

// enforceArcConsistency runs AC-3 over every ordered course pair, pruning
// domain values that have no consistent support in the neighbour's domain.
// Returns false as soon as any domain is emptied.
func (s *ConstraintSatisfactionScheduler) enforceArcConsistency() bool {
	queue := make([]arc, 0, len(s.courseIDs)*len(s.courseIDs))
	for _, from := range s.courseIDs {
		for _, to := range s.courseIDs {
			if from != to {
				queue = append(queue, arc{from: from, to: to})
			}
		}
	}

	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]

		if !s.revise(a.from, a.to) {
			continue
		}
		if len(s.domains[a.from]) == 0 {
			return false
		}
		for _, neighbour := range s.courseIDs {
			if neighbour != a.from && neighbour != a.to {
				queue = append(queue, arc{from: neighbour, to: a.from})
			}
		}
	}
	return true
}

// revise removes values from the first course's domain that conflict with
// every value in the second course's domain. Reports whether it removed
// anything. Relative value order is preserved.
func (s *ConstraintSatisfactionScheduler) revise(from, to string) bool {
	kept := s.domains[from][:0:len(s.domains[from])]
	revised := false
	for _, value := range s.domains[from] {
		supported := false
		for _, other := range s.domains[to] {
			if !value.conflicts(other) {
				supported = true
				break
			}
		}
		if supported {
			kept = append(kept, value)
		} else {
			revised = true
		}
	}
	s.domains[from] = kept
	return revised
}

// backtrack extends the partial assignment one course at a time.
func (s *ConstraintSatisfactionScheduler) backtrack(assignment map[string]candidate) bool {
	if len(assignment) == len(s.courseIDs) {
		return true
	}

	courseID := s.selectCourse(assignment)
	for _, value := range s.orderValues(courseID, assignment) {
		if !s.consistent(value, assignment) {
			continue
		}

		assignment[courseID] = value

		var pruned map[string][]candidate
		viable := true
		if s.opts.ForwardChecking {
			pruned, viable = s.forwardCheck(courseID, value, assignment)
		}
		if viable && s.backtrack(assignment) {
			return true
		}

		delete(assignment, courseID)
		for id, domain := range pruned {
			s.domains[id] = domain
		}
	}
	return false
}

// selectCourse picks the next unassigned course. With MRV enabled the course
// with the smallest remaining domain wins, ties broken by canonical order;
// otherwise the first unassigned course is taken.
func (s *ConstraintSatisfactionScheduler) selectCourse(assignment map[string]candidate) string {
	best := ""
	bestSize := -1
	for _, courseID := range s.courseIDs {
		if _, ok := assignment[courseID]; ok {
			continue
		}
		if s.opts.VariableOrdering != OrderingMRV {
			return courseID
		}
		if size := len(s.domains[courseID]); bestSize < 0 || size < bestSize {
			best = courseID
			bestSize = size
		}
	}
	return best
}

// orderValues returns the course's domain in trial order. With LCV enabled
// values are stably sorted by how many placements they would eliminate from
// other unassigned courses' domains, fewest first.
func (s *ConstraintSatisfactionScheduler) orderValues(courseID string, assignment map[string]candidate) []candidate {
	domain := s.domains[courseID]
	if s.opts.ValueOrdering != OrderingLCV || len(domain) < 2 {
		return domain
	}

	type scored struct {
		value candidate
		cost  int
	}
	ranked := make([]scored, 0, len(domain))
	for _, value := range domain {
		cost := 0
		for _, other := range s.courseIDs {
			if other == courseID {
				continue
			}
			if _, ok := assignment[other]; ok {
				continue
			}
			for _, option := range s.domains[other] {
				if value.conflicts(option) {
					cost++
				}
			}
		}
		ranked = append(ranked, scored{value: value, cost: cost})
	}

	// Insertion sort keeps equal-cost values in domain order.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].cost < ranked[j-1].cost; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}

	ordered := make([]candidate, len(ranked))
	for i, r := range ranked {
		ordered[i] = r.value
	}
	return ordered
}

// consistent reports whether the value collides with any committed placement.
func (s *ConstraintSatisfactionScheduler) consistent(value candidate, assignment map[string]candidate) bool {
	for _, committed := range assignment {
		if value.conflicts(committed) {
			return false
		}
	}
	return true
}

// forwardCheck prunes every unassigned course's domain to values compatible
// with the new commitment. It returns the saved pre-prune domains for
// restoration on backtrack, and false when some domain was emptied.
func (s *ConstraintSatisfactionScheduler) forwardCheck(courseID string, value candidate, assignment map[string]candidate) (map[string][]candidate, bool) {
	pruned := make(map[string][]candidate)
	for _, other := range s.courseIDs {
		if other == courseID {
			continue
		}
		if _, ok := assignment[other]; ok {
			continue
		}

		domain := s.domains[other]
		kept := domain[:0:0]
		for _, c := range domain {
			if !value.conflicts(c) {
				kept = append(kept, c)
			}
		}
		if len(kept) == len(domain) {
			continue
		}

		pruned[other] = domain
		s.domains[other] = kept
		if len(kept) == 0 {
			return pruned, false
		}
	}
	return pruned, true
}

// failedSchedule is the sentinel returned when the search proves
// infeasibility. Callers detect it by its zero assignment count.
func failedSchedule() *models.Schedule {
	s := models.NewSchedule("failed", "No Solution Found", nil)
	s.AlgorithmUsed = AlgorithmConstraintSatisfaction
	return s
}

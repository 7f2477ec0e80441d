package models

import "strings"

// Designation enumerates faculty ranks.
type Designation string

const (
	DesignationProfessor          Designation = "professor"
	DesignationAssociateProfessor Designation = "associate_professor"
	DesignationAssistantProfessor Designation = "assistant_professor"
	DesignationVisitingFaculty    Designation = "visiting_faculty"
	DesignationAdjunctFaculty     Designation = "adjunct_faculty"
)

// Valid reports whether the value is a known designation.
func (d Designation) Valid() bool {
	switch d {
	case DesignationProfessor, DesignationAssociateProfessor, DesignationAssistantProfessor,
		DesignationVisitingFaculty, DesignationAdjunctFaculty:
		return true
	}
	return false
}

// Availability expresses how a professor relates to a specific time slot.
type Availability string

const (
	AvailabilityAvailable    Availability = "available"
	AvailabilityUnavailable  Availability = "unavailable"
	AvailabilityPreferred    Availability = "preferred"
	AvailabilityNotPreferred Availability = "not_preferred"
)

// Valid reports whether the value is a known availability level.
func (a Availability) Valid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityUnavailable, AvailabilityPreferred, AvailabilityNotPreferred:
		return true
	}
	return false
}

// Professor represents a teaching resource. PreferredTimeSlots and
// UnavailableSlots are kept disjoint: marking a slot unavailable removes any
// preference for it and vice versa.
type Professor struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Department      string      `json:"department"`
	Designation     Designation `json:"designation"`
	Specializations []string    `json:"specializations"`
	MaxHoursPerWeek int         `json:"max_hours_per_week"`
	MaxCourses      int         `json:"max_courses"`
	OfficeLocation  string      `json:"office_location,omitempty"`
	Phone           string      `json:"phone,omitempty"`
	IsActive        bool        `json:"is_active"`

	PreferredTimeSlots map[string]Availability `json:"-"`
	UnavailableSlots   map[string]struct{}     `json:"-"`
}

// NewProfessor builds a professor with initialised preference maps and the
// defaults the scheduling core expects.
func NewProfessor(id, name, email, department string, designation Designation) *Professor {
	return &Professor{
		ID:                 id,
		Name:               name,
		Email:              email,
		Department:         department,
		Designation:        designation,
		Specializations:    []string{},
		MaxHoursPerWeek:    20,
		MaxCourses:         4,
		IsActive:           true,
		PreferredTimeSlots: make(map[string]Availability),
		UnavailableSlots:   make(map[string]struct{}),
	}
}

// CanTeach reports whether the professor may teach a course. When the course
// names a specialization, at least one of the professor's specializations must
// match it as a substring; otherwise any active professor qualifies.
func (p *Professor) CanTeach(courseCode, courseSpecialization string) bool {
	if !p.IsActive {
		return false
	}
	if courseSpecialization != "" && len(p.Specializations) > 0 {
		for _, spec := range p.Specializations {
			if strings.Contains(strings.ToLower(courseSpecialization), strings.ToLower(spec)) {
				return true
			}
		}
		return false
	}
	return true
}

// IsAvailableAt reports whether the professor can be scheduled at the slot.
func (p *Professor) IsAvailableAt(timeSlotID string) bool {
	if _, blocked := p.UnavailableSlots[timeSlotID]; blocked {
		return false
	}
	availability, ok := p.PreferredTimeSlots[timeSlotID]
	if !ok {
		availability = AvailabilityAvailable
	}
	return availability == AvailabilityAvailable || availability == AvailabilityPreferred
}

// PreferenceScore returns 1.0 for preferred slots, 0.5 for plain available
// ones (the default for unmarked slots) and 0.0 for unavailable or
// not-preferred slots.
func (p *Professor) PreferenceScore(timeSlotID string) float64 {
	if _, blocked := p.UnavailableSlots[timeSlotID]; blocked {
		return 0.0
	}
	availability, ok := p.PreferredTimeSlots[timeSlotID]
	if !ok {
		availability = AvailabilityAvailable
	}
	switch availability {
	case AvailabilityPreferred:
		return 1.0
	case AvailabilityAvailable:
		return 0.5
	default:
		return 0.0
	}
}

// AddUnavailableSlot blocks a slot, clearing any recorded preference for it.
func (p *Professor) AddUnavailableSlot(timeSlotID string) {
	p.UnavailableSlots[timeSlotID] = struct{}{}
	delete(p.PreferredTimeSlots, timeSlotID)
}

// SetPreference records an availability level for a slot. Unavailable routes
// through AddUnavailableSlot; any other level unblocks the slot.
func (p *Professor) SetPreference(timeSlotID string, availability Availability) {
	if availability == AvailabilityUnavailable {
		p.AddUnavailableSlot(timeSlotID)
		return
	}
	p.PreferredTimeSlots[timeSlotID] = availability
	delete(p.UnavailableSlots, timeSlotID)
}

package repository

import (
	"github.com/iiitdwd/timetable-api/internal/models"
)

// Repository bundles the per-entity stores the services operate on.
type Repository struct {
	Courses    *Store[*models.Course]
	Professors *Store[*models.Professor]
	Rooms      *Store[*models.Room]
	TimeSlots  *Store[*models.TimeSlot]
	Schedules  *Store[*models.Schedule]
}

// New constructs an empty repository.
func New() *Repository {
	return &Repository{
		Courses:    NewStore[*models.Course](),
		Professors: NewStore[*models.Professor](),
		Rooms:      NewStore[*models.Room](),
		TimeSlots:  NewStore[*models.TimeSlot](),
		Schedules:  NewStore[*models.Schedule](),
	}
}

// Reset clears every store. Generated schedules go with the entities that
// produced them.
func (r *Repository) Reset() {
	r.Courses.Clear()
	r.Professors.Clear()
	r.Rooms.Clear()
	r.TimeSlots.Clear()
	r.Schedules.Clear()
}

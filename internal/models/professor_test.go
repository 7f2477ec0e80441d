package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestProfessor() *Professor {
	return NewProfessor("p1", "Dr. Rao", "rao@example.edu", "CSE", DesignationProfessor)
}

func TestCanTeach(t *testing.T) {
	p := newTestProfessor()

	// No specializations recorded: any course qualifies.
	assert.True(t, p.CanTeach("CS301", "Algorithms"))

	p.Specializations = []string{"algorithms", "graph theory"}
	assert.True(t, p.CanTeach("CS301", "Advanced Algorithms"))
	assert.False(t, p.CanTeach("CS441", "Computer Graphics"))

	p.IsActive = false
	assert.False(t, p.CanTeach("CS301", "Advanced Algorithms"))
}

func TestPreferenceScore(t *testing.T) {
	p := newTestProfessor()

	assert.Equal(t, 0.5, p.PreferenceScore("ts1"))

	p.SetPreference("ts1", AvailabilityPreferred)
	assert.Equal(t, 1.0, p.PreferenceScore("ts1"))

	p.SetPreference("ts2", AvailabilityNotPreferred)
	assert.Equal(t, 0.0, p.PreferenceScore("ts2"))

	p.AddUnavailableSlot("ts3")
	assert.Equal(t, 0.0, p.PreferenceScore("ts3"))
}

func TestPreferenceAndUnavailableStayDisjoint(t *testing.T) {
	p := newTestProfessor()

	p.SetPreference("ts1", AvailabilityPreferred)
	p.AddUnavailableSlot("ts1")
	assert.False(t, p.IsAvailableAt("ts1"))
	_, hasPref := p.PreferredTimeSlots["ts1"]
	assert.False(t, hasPref)

	// Marking unavailable through SetPreference routes the same way.
	p.SetPreference("ts2", AvailabilityUnavailable)
	assert.False(t, p.IsAvailableAt("ts2"))

	// Restoring a preference unblocks the slot.
	p.SetPreference("ts1", AvailabilityAvailable)
	assert.True(t, p.IsAvailableAt("ts1"))
}

func TestIsAvailableAt(t *testing.T) {
	p := newTestProfessor()

	assert.True(t, p.IsAvailableAt("unmarked"))

	p.SetPreference("ts1", AvailabilityNotPreferred)
	assert.False(t, p.IsAvailableAt("ts1"))

	p.SetPreference("ts2", AvailabilityPreferred)
	assert.True(t, p.IsAvailableAt("ts2"))
}

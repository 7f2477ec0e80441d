package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseTypeValid(t *testing.T) {
	assert.True(t, CourseTypeLecture.Valid())
	assert.True(t, CourseTypeLaboratory.Valid())
	assert.False(t, CourseType("workshop").Valid())
}

func TestNewCourseDefaults(t *testing.T) {
	course := NewCourse("c1", "Algorithms", "CS301", 4, 60, CourseTypeLecture, 60)
	require.NotNil(t, course.RequiredEquipment)
	require.NotNil(t, course.Prerequisites)
	assert.Equal(t, 1, course.Semester)
	assert.Equal(t, "CSE", course.Branch)
	assert.False(t, course.IsElective)
}

func TestSessionsPerWeek(t *testing.T) {
	lab := NewCourse("c1", "OS Lab", "CS331", 3, 120, CourseTypeLaboratory, 30)
	assert.Equal(t, 3, lab.SessionsPerWeek())

	lecture := NewCourse("c2", "Networks", "CS341", 4, 60, CourseTypeLecture, 60)
	assert.Equal(t, 2, lecture.SessionsPerWeek())

	lightLecture := NewCourse("c3", "Seminar Prep", "CS101", 1, 60, CourseTypeLecture, 60)
	assert.Equal(t, 1, lightLecture.SessionsPerWeek())

	tutorial := NewCourse("c4", "Tutorial", "CS102", 4, 60, CourseTypeTutorial, 30)
	assert.Equal(t, 1, tutorial.SessionsPerWeek())
}

func TestHasEquipmentRequirement(t *testing.T) {
	course := NewCourse("c1", "Graphics", "CS441", 3, 60, CourseTypeLecture, 40)
	course.RequiredEquipment = []string{"Projector", "whiteboard"}

	assert.True(t, course.HasEquipmentRequirement("projector"))
	assert.True(t, course.HasEquipmentRequirement("WHITEBOARD"))
	assert.False(t, course.HasEquipmentRequirement("computer"))
}

func TestPrerequisitesSatisfied(t *testing.T) {
	course := NewCourse("c1", "Compilers", "CS401", 4, 60, CourseTypeLecture, 40)
	course.Prerequisites = []string{"CS301", "CS201"}

	assert.True(t, course.PrerequisitesSatisfied([]string{"CS101", "CS201", "CS301"}))
	assert.False(t, course.PrerequisitesSatisfied([]string{"CS201"}))
	assert.True(t, NewCourse("c2", "Intro", "CS100", 3, 60, CourseTypeLecture, 80).PrerequisitesSatisfied(nil))
}

package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iiitdwd/timetable-api/internal/models"
)

func smallGeneticOptions(seed int64) GeneticOptions {
	return GeneticOptions{
		PopulationSize: 20,
		Generations:    30,
		MutationRate:   0.1,
		CrossoverRate:  0.8,
		EliteSize:      2,
		Seed:           seed,
	}
}

func TestGeneticGenerateSchedule(t *testing.T) {
	g := NewGeneticScheduler(testDataset(), smallGeneticOptions(42))
	schedule := g.GenerateSchedule()

	require.Len(t, schedule.Assignments, 3)
	assert.Equal(t, "Genetic Algorithm Schedule", schedule.Name)
	assert.Equal(t, AlgorithmGenetic, schedule.AlgorithmUsed)

	scheduled := map[string]bool{}
	for _, a := range schedule.Assignments {
		scheduled[a.CourseID] = true
	}
	assert.Equal(t, map[string]bool{"c1": true, "c2": true, "c3": true}, scheduled)
}

func TestGeneticSeedReproducible(t *testing.T) {
	opts := smallGeneticOptions(1234)
	first := NewGeneticScheduler(testDataset(), opts).GenerateSchedule()
	second := NewGeneticScheduler(testDataset(), opts).GenerateSchedule()
	assert.Equal(t, first.Assignments, second.Assignments)
}

func TestGeneticBestFitnessMonotonic(t *testing.T) {
	g := NewGeneticScheduler(testDataset(), smallGeneticOptions(7))

	var history []float64
	g.onGeneration = func(generation int, bestFitness float64) {
		history = append(history, bestFitness)
	}
	g.GenerateSchedule()

	require.Len(t, history, 30)
	for i := 1; i < len(history); i++ {
		assert.GreaterOrEqual(t, history[i], history[i-1], "generation %d regressed", i)
	}
}

func TestGeneticEmptyDataset(t *testing.T) {
	g := NewGeneticScheduler(Dataset{}, smallGeneticOptions(1))
	schedule := g.GenerateSchedule()

	assert.Equal(t, "empty", schedule.ID)
	assert.Equal(t, "Empty Schedule", schedule.Name)
	assert.Equal(t, AlgorithmGenetic, schedule.AlgorithmUsed)
	assert.Empty(t, schedule.Assignments)
}

func TestGeneticFitnessPenalisesConflicts(t *testing.T) {
	g := NewGeneticScheduler(testDataset(), smallGeneticOptions(1))

	clean := models.NewSchedule("s1", "Clean", []models.Assignment{
		{CourseID: "c1", ProfessorID: "p1", RoomID: "r1", TimeSlotID: "ts1"},
		{CourseID: "c2", ProfessorID: "p2", RoomID: "r2", TimeSlotID: "ts1"},
	})
	conflicted := models.NewSchedule("s2", "Conflicted", []models.Assignment{
		{CourseID: "c1", ProfessorID: "p1", RoomID: "r1", TimeSlotID: "ts1"},
		{CourseID: "c2", ProfessorID: "p1", RoomID: "r1", TimeSlotID: "ts1"},
	})

	assert.Greater(t, g.Fitness(clean), 0.0)
	assert.Less(t, g.Fitness(conflicted), -1000.0)
	assert.Greater(t, g.Fitness(clean), g.Fitness(conflicted))
}

func TestGeneticRandomAssignmentPools(t *testing.T) {
	// Sampling only requires a department match for professors and an active
	// slot. Sabbaticals and awkward slot types lower fitness instead of
	// emptying the pools.
	onLeave := testProfessor("p1", "Anita Rao")
	onLeave.IsActive = false
	lunch := models.NewTimeSlot("ts1", models.Monday, models.Clock{Hour: 12}, models.Clock{Hour: 13}, models.SlotTypeLunch)

	g := NewGeneticScheduler(Dataset{
		Courses:    []*models.Course{testCourse("c1", "CS101", 40)},
		Professors: []*models.Professor{onLeave},
		Rooms:      []*models.Room{testRoom("r1", "LH-101", 50)},
		TimeSlots:  []*models.TimeSlot{lunch},
	}, smallGeneticOptions(3))

	a, ok := g.randomAssignment(g.data.Courses[0])
	require.True(t, ok)
	assert.Equal(t, "p1", a.ProfessorID)
	assert.Equal(t, "ts1", a.TimeSlotID)

	// A professor in another department never enters the pool.
	other := testProfessor("p2", "Bhaskar Joshi")
	other.Department = "ECE"
	g = NewGeneticScheduler(Dataset{
		Courses:    []*models.Course{testCourse("c1", "CS101", 40)},
		Professors: []*models.Professor{other},
		Rooms:      []*models.Room{testRoom("r1", "LH-101", 50)},
		TimeSlots:  []*models.TimeSlot{testSlot("ts1", models.Monday, 9)},
	}, smallGeneticOptions(3))

	_, ok = g.randomAssignment(g.data.Courses[0])
	assert.False(t, ok)
}

func TestGeneticMutatePreservesOriginal(t *testing.T) {
	g := NewGeneticScheduler(testDataset(), smallGeneticOptions(9))

	original := g.randomIndividual()
	require.NotEmpty(t, original.Assignments)
	snapshot := append([]models.Assignment(nil), original.Assignments...)

	mutated := g.mutate(original)
	assert.Equal(t, snapshot, original.Assignments)
	assert.Len(t, mutated.Assignments, len(snapshot))
}

func TestGeneticValidateSchedule(t *testing.T) {
	g := NewGeneticScheduler(testDataset(), smallGeneticOptions(1))

	assert.False(t, g.ValidateSchedule(nil))
	assert.True(t, g.ValidateSchedule(models.NewSchedule("ok", "OK", nil)))

	clash := models.NewSchedule("bad", "Bad", []models.Assignment{
		{CourseID: "c1", ProfessorID: "p1", RoomID: "r1", TimeSlotID: "ts1"},
		{CourseID: "c2", ProfessorID: "p2", RoomID: "r1", TimeSlotID: "ts1"},
	})
	assert.False(t, g.ValidateSchedule(clash))
}

package scheduler

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/iiitdwd/timetable-api/internal/models"
)

// GeneticScheduler evolves a population of candidate schedules. Individuals
// are built without conflict avoidance; conflicts are instead punished so
// heavily by the fitness function that conflict-free individuals always
// dominate. The output is therefore not guaranteed conflict-free and must be
// validated before acceptance.
type GeneticScheduler struct {
	data Dataset
	opts GeneticOptions
	rng  *rand.Rand

	// onGeneration, when set, observes the global best fitness after each
	// generation. Used by tests to assert monotonic improvement.
	onGeneration func(generation int, bestFitness float64)
}

// NewGeneticScheduler snapshots the dataset in canonical order and seeds the
// random source. A zero seed selects a time-based seed; any other value makes
// runs reproducible.
func NewGeneticScheduler(d Dataset, opts GeneticOptions) *GeneticScheduler {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &GeneticScheduler{
		data: d.Canonicalize(),
		opts: opts,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// GenerateSchedule runs the full generational loop and returns the best
// individual seen across all generations.
func (g *GeneticScheduler) GenerateSchedule() *models.Schedule {
	population := make([]*models.Schedule, 0, g.opts.PopulationSize)
	for i := 0; i < g.opts.PopulationSize; i++ {
		population = append(population, g.randomIndividual())
	}
	if len(population) == 0 {
		return emptySchedule()
	}

	var best *models.Schedule
	bestFitness := 0.0

	for generation := 0; generation < g.opts.Generations; generation++ {
		fitness := make([]float64, len(population))
		for i, individual := range population {
			fitness[i] = g.Fitness(individual)
		}

		for i, f := range fitness {
			if best == nil || f > bestFitness {
				best = population[i]
				bestFitness = f
			}
		}
		if g.onGeneration != nil {
			g.onGeneration(generation, bestFitness)
		}

		population = g.nextGeneration(population, fitness)
	}

	if best == nil || len(best.Assignments) == 0 {
		return emptySchedule()
	}

	result := models.NewSchedule(uuid.NewString(), "Genetic Algorithm Schedule", nil)
	result.AlgorithmUsed = AlgorithmGenetic
	result.Assignments = append(result.Assignments, best.Assignments...)
	return result
}

// ValidateSchedule reports whether the schedule is free of hard-constraint
// violations.
func (g *GeneticScheduler) ValidateSchedule(schedule *models.Schedule) bool {
	return schedule != nil && !schedule.HasConflicts()
}

// OptimizeSchedule seeds a fresh run and keeps the better of the two
// schedules by fitness.
func (g *GeneticScheduler) OptimizeSchedule(schedule *models.Schedule) *models.Schedule {
	evolved := g.GenerateSchedule()
	if schedule == nil {
		return evolved
	}
	if g.Fitness(evolved) >= g.Fitness(schedule) {
		return evolved
	}
	return schedule
}

// Fitness scores an individual: soft-constraint quality minus a penalty of
// 1000 per conflict, so any conflict-free schedule outranks any conflicted
// one.
func (g *GeneticScheduler) Fitness(s *models.Schedule) float64 {
	return Quality(s, g.data) - 1000.0*float64(s.ConflictCount())
}

// randomIndividual builds a schedule by independently choosing a placement
// for each course, with no conflict avoidance. Courses with no compatible
// professor, room or slot are skipped.
func (g *GeneticScheduler) randomIndividual() *models.Schedule {
	individual := models.NewSchedule(uuid.NewString(), "Random Schedule", nil)
	individual.AlgorithmUsed = AlgorithmGenetic
	for _, course := range g.data.Courses {
		if a, ok := g.randomAssignment(course); ok {
			individual.AddAssignment(a)
		}
	}
	return individual
}

// randomAssignment picks a random professor from the course's branch, a
// random suitable room and a random active slot. Fitness, not the pools,
// penalises weak picks. Reports false when any of the three pools is empty.
func (g *GeneticScheduler) randomAssignment(course *models.Course) (models.Assignment, bool) {
	var professors []*models.Professor
	for _, p := range g.data.Professors {
		if p.Department == course.Branch {
			professors = append(professors, p)
		}
	}
	var rooms []*models.Room
	for _, r := range g.data.Rooms {
		if r.IsSuitableForCourse(course.CourseType, course.Capacity, course.RequiredEquipment) {
			rooms = append(rooms, r)
		}
	}
	var slots []*models.TimeSlot
	for _, ts := range g.data.TimeSlots {
		if ts.IsActive {
			slots = append(slots, ts)
		}
	}
	if len(professors) == 0 || len(rooms) == 0 || len(slots) == 0 {
		return models.Assignment{}, false
	}

	professor := professors[g.rng.Intn(len(professors))]
	room := rooms[g.rng.Intn(len(rooms))]
	slot := slots[g.rng.Intn(len(slots))]

	return models.Assignment{
		ID:            fmt.Sprintf("%s_%s_%s_%s", course.ID, professor.ID, room.ID, slot.ID),
		CourseID:      course.ID,
		ProfessorID:   professor.ID,
		RoomID:        room.ID,
		TimeSlotID:    slot.ID,
		SessionNumber: 1,
	}, true
}

// nextGeneration applies elitism, tournament selection, crossover and
// mutation to produce a population of the same size.
func (g *GeneticScheduler) nextGeneration(population []*models.Schedule, fitness []float64) []*models.Schedule {
	next := make([]*models.Schedule, 0, len(population))

	// Elitism: carry the top individuals over unchanged. Rank indices by
	// fitness with a stable order so ties favour earlier individuals.
	ranked := make([]int, len(population))
	for i := range ranked {
		ranked[i] = i
	}
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && fitness[ranked[j]] > fitness[ranked[j-1]]; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	elite := g.opts.EliteSize
	if elite > len(ranked) {
		elite = len(ranked)
	}
	for _, i := range ranked[:elite] {
		next = append(next, population[i])
	}

	for len(next) < len(population) {
		parent1 := g.tournament(population, fitness)
		parent2 := g.tournament(population, fitness)

		child := parent1
		if g.rng.Float64() < g.opts.CrossoverRate {
			child = g.crossover(parent1, parent2)
		}
		if g.rng.Float64() < g.opts.MutationRate {
			child = g.mutate(child)
		}
		next = append(next, child)
	}
	return next
}

// tournament samples a small random subset and returns its fittest member.
func (g *GeneticScheduler) tournament(population []*models.Schedule, fitness []float64) *models.Schedule {
	size := 3
	if size > len(population) {
		size = len(population)
	}
	best := -1
	for i := 0; i < size; i++ {
		pick := g.rng.Intn(len(population))
		if best < 0 || fitness[pick] > fitness[best] {
			best = pick
		}
	}
	return population[best]
}

// crossover splices the first half of parent1's assignments with the tail of
// parent2's, with no deduplication or conflict repair.
func (g *GeneticScheduler) crossover(parent1, parent2 *models.Schedule) *models.Schedule {
	child := models.NewSchedule(uuid.NewString(), "Crossover Schedule", nil)
	child.AlgorithmUsed = AlgorithmGenetic

	cut := len(parent1.Assignments) / 2
	child.Assignments = append(child.Assignments, parent1.Assignments[:cut]...)
	if cut < len(parent2.Assignments) {
		child.Assignments = append(child.Assignments, parent2.Assignments[cut:]...)
	}
	return child
}

// mutate reassigns one randomly chosen assignment's course to a fresh random
// placement. The original individual is left untouched.
func (g *GeneticScheduler) mutate(individual *models.Schedule) *models.Schedule {
	if len(individual.Assignments) == 0 {
		return individual
	}

	mutated := models.NewSchedule(uuid.NewString(), individual.Name, nil)
	mutated.AlgorithmUsed = AlgorithmGenetic
	mutated.Assignments = append(mutated.Assignments, individual.Assignments...)

	i := g.rng.Intn(len(mutated.Assignments))
	courseID := mutated.Assignments[i].CourseID
	for _, course := range g.data.Courses {
		if course.ID != courseID {
			continue
		}
		if a, ok := g.randomAssignment(course); ok {
			mutated.Assignments[i] = a
		}
		break
	}
	return mutated
}

// emptySchedule is the sentinel for a run that never formed any assignments.
func emptySchedule() *models.Schedule {
	s := models.NewSchedule("empty", "Empty Schedule", nil)
	s.AlgorithmUsed = AlgorithmGenetic
	return s
}

package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/iiitdwd/timetable-api/internal/dto"
	"github.com/iiitdwd/timetable-api/internal/models"
	"github.com/iiitdwd/timetable-api/internal/repository"
	"github.com/iiitdwd/timetable-api/internal/scheduler"
	"github.com/iiitdwd/timetable-api/pkg/config"
	appErrors "github.com/iiitdwd/timetable-api/pkg/errors"
)

// scheduleRunObserver receives solver timing for instrumentation.
type scheduleRunObserver interface {
	ObserveScheduleRun(algorithm string, duration time.Duration, conflicts int, feasible bool)
}

// ScheduleService orchestrates schedule generation: it snapshots the loaded
// entities, dispatches to the requested algorithm and stores the result.
type ScheduleService struct {
	repo      *repository.Repository
	defaults  config.SchedulerConfig
	validator *validator.Validate
	logger    *zap.Logger
	metrics   scheduleRunObserver
}

// NewScheduleService wires schedule generation dependencies. Zero-valued
// fields of defaults fall back to the built-in solver defaults.
func NewScheduleService(repo *repository.Repository, defaults config.SchedulerConfig, validate *validator.Validate, logger *zap.Logger, metrics scheduleRunObserver) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaults.DefaultAlgorithm == "" {
		defaults.DefaultAlgorithm = scheduler.AlgorithmConstraintSatisfaction
	}
	return &ScheduleService{repo: repo, defaults: defaults, validator: validate, logger: logger, metrics: metrics}
}

// Generate runs the requested algorithm over the loaded entities and stores
// the resulting schedule. Misconfiguration is rejected before any solving
// work begins; an infeasible CSP run is reported as a feasible=false response
// carrying the sentinel schedule, not as an error.
func (s *ScheduleService) Generate(ctx context.Context, req dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule generation payload")
	}
	algorithm := req.Algorithm
	if algorithm == "" {
		algorithm = s.defaults.DefaultAlgorithm
	}

	data := s.dataset()
	if len(data.Courses) == 0 {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "no courses loaded")
	}
	if len(data.Professors) == 0 {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "no professors loaded")
	}
	if len(data.Rooms) == 0 {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "no rooms loaded")
	}
	if len(data.TimeSlots) == 0 {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "no time slots loaded")
	}

	solver, err := s.buildSolver(algorithm, req.Config, data)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "request cancelled")
	}

	started := time.Now()
	schedule := solver.GenerateSchedule()
	elapsed := time.Since(started)

	quality := scheduler.Quality(schedule, data)
	conflicts := schedule.ConflictCount()
	feasible := len(schedule.Assignments) > 0 && !schedule.HasConflicts()

	schedule.QualityScore = quality
	schedule.Statistics = scheduler.Statistics(schedule, data)
	schedule.TotalConstraints = len(data.Courses)
	schedule.ConstraintsSatisfied = coursesScheduled(schedule)

	s.repo.Schedules.Put(schedule)
	if s.metrics != nil {
		s.metrics.ObserveScheduleRun(algorithm, elapsed, conflicts, feasible)
	}
	s.logger.Info("schedule generated",
		zap.String("schedule_id", schedule.ID),
		zap.String("algorithm", algorithm),
		zap.Int("assignments", len(schedule.Assignments)),
		zap.Int("conflicts", conflicts),
		zap.Float64("quality", quality),
		zap.Duration("elapsed", elapsed))

	return &dto.GenerateScheduleResponse{
		Schedule:      schedule,
		QualityScore:  quality,
		ConflictCount: conflicts,
		Feasible:      feasible,
		ElapsedMS:     elapsed.Milliseconds(),
	}, nil
}

// buildSolver decodes and validates the algorithm configuration, then
// constructs the solver.
func (s *ScheduleService) buildSolver(algorithm string, config map[string]any, data scheduler.Dataset) (scheduler.Scheduler, error) {
	switch algorithm {
	case scheduler.AlgorithmConstraintSatisfaction:
		opts, err := s.baseCSPOptions().Merge(config)
		if err != nil {
			return nil, err
		}
		return scheduler.NewConstraintSatisfactionScheduler(data, opts), nil
	case scheduler.AlgorithmGenetic:
		opts, err := s.baseGeneticOptions().Merge(config)
		if err != nil {
			return nil, err
		}
		return scheduler.NewGeneticScheduler(data, opts), nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported algorithm "+algorithm)
	}
}

// baseCSPOptions applies environment overrides on top of the built-in
// defaults. Unset toggles leave the defaults in place.
func (s *ScheduleService) baseCSPOptions() scheduler.CSPOptions {
	opts := scheduler.DefaultCSPOptions()
	if s.defaults.ArcConsistency != nil {
		opts.ArcConsistency = *s.defaults.ArcConsistency
	}
	if s.defaults.ForwardChecking != nil {
		opts.ForwardChecking = *s.defaults.ForwardChecking
	}
	return opts
}

func (s *ScheduleService) baseGeneticOptions() scheduler.GeneticOptions {
	opts := scheduler.DefaultGeneticOptions()
	if s.defaults.PopulationSize > 0 {
		opts.PopulationSize = s.defaults.PopulationSize
	}
	if s.defaults.Generations > 0 {
		opts.Generations = s.defaults.Generations
	}
	if s.defaults.MutationRate > 0 {
		opts.MutationRate = s.defaults.MutationRate
	}
	if s.defaults.CrossoverRate > 0 {
		opts.CrossoverRate = s.defaults.CrossoverRate
	}
	if s.defaults.EliteSize > 0 {
		opts.EliteSize = s.defaults.EliteSize
	}
	return opts
}

// List returns every stored schedule in generation order.
func (s *ScheduleService) List() []*models.Schedule {
	return s.repo.Schedules.List()
}

// Get fetches a stored schedule.
func (s *ScheduleService) Get(id string) (*models.Schedule, error) {
	return s.repo.Schedules.Get(id)
}

// Delete removes a stored schedule.
func (s *ScheduleService) Delete(id string) error {
	return s.repo.Schedules.Delete(id)
}

// Validate re-checks a stored schedule against the hard constraints and
// re-scores it against the currently loaded entities.
func (s *ScheduleService) Validate(id string) (*dto.ValidateScheduleResponse, error) {
	schedule, err := s.repo.Schedules.Get(id)
	if err != nil {
		return nil, err
	}
	return &dto.ValidateScheduleResponse{
		ScheduleID:    schedule.ID,
		Valid:         !schedule.HasConflicts(),
		ConflictCount: schedule.ConflictCount(),
		QualityScore:  scheduler.Quality(schedule, s.dataset()),
	}, nil
}

// Summary reports loaded entity counts.
func (s *ScheduleService) Summary() dto.DataSummaryResponse {
	return dto.DataSummaryResponse{
		Courses:    s.repo.Courses.Len(),
		Professors: s.repo.Professors.Len(),
		Rooms:      s.repo.Rooms.Len(),
		TimeSlots:  s.repo.TimeSlots.Len(),
		Schedules:  s.repo.Schedules.Len(),
	}
}

// ClearData wipes every entity and stored schedule.
func (s *ScheduleService) ClearData() {
	s.repo.Reset()
	s.logger.Info("all scheduling data cleared")
}

func (s *ScheduleService) dataset() scheduler.Dataset {
	return scheduler.Dataset{
		Courses:    s.repo.Courses.List(),
		Professors: s.repo.Professors.List(),
		Rooms:      s.repo.Rooms.List(),
		TimeSlots:  s.repo.TimeSlots.List(),
	}
}

func coursesScheduled(schedule *models.Schedule) int {
	seen := make(map[string]struct{}, len(schedule.Assignments))
	for _, a := range schedule.Assignments {
		seen[a.CourseID] = struct{}{}
	}
	return len(seen)
}

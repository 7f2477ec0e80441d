package scheduler

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/iiitdwd/timetable-api/pkg/errors"
)

// Variable and value ordering heuristics for the constraint solver.
const (
	OrderingMRV   = "mrv"
	OrderingFirst = "first"

	OrderingLCV  = "lcv"
	OrderingNone = "none"
)

// CSPOptions tunes the constraint satisfaction solver.
type CSPOptions struct {
	ArcConsistency   bool   `mapstructure:"use_arc_consistency"`
	ForwardChecking  bool   `mapstructure:"use_forward_checking"`
	VariableOrdering string `mapstructure:"variable_ordering"`
	ValueOrdering    string `mapstructure:"value_ordering"`
}

// DefaultCSPOptions returns the solver defaults: full propagation with MRV
// and LCV heuristics enabled.
func DefaultCSPOptions() CSPOptions {
	return CSPOptions{
		ArcConsistency:   true,
		ForwardChecking:  true,
		VariableOrdering: OrderingMRV,
		ValueOrdering:    OrderingLCV,
	}
}

// Validate rejects unknown heuristic names.
func (o CSPOptions) Validate() error {
	if o.VariableOrdering != OrderingMRV && o.VariableOrdering != OrderingFirst {
		return errors.Clone(errors.ErrValidation,
			fmt.Sprintf("unknown variable_ordering %q, expected %q or %q", o.VariableOrdering, OrderingMRV, OrderingFirst))
	}
	if o.ValueOrdering != OrderingLCV && o.ValueOrdering != OrderingNone {
		return errors.Clone(errors.ErrValidation,
			fmt.Sprintf("unknown value_ordering %q, expected %q or %q", o.ValueOrdering, OrderingLCV, OrderingNone))
	}
	return nil
}

// GeneticOptions tunes the evolutionary solver.
type GeneticOptions struct {
	PopulationSize int     `mapstructure:"population_size"`
	Generations    int     `mapstructure:"generations"`
	MutationRate   float64 `mapstructure:"mutation_rate"`
	CrossoverRate  float64 `mapstructure:"crossover_rate"`
	EliteSize      int     `mapstructure:"elite_size"`
	Seed           int64   `mapstructure:"seed"`
}

// DefaultGeneticOptions returns the evolutionary solver defaults.
func DefaultGeneticOptions() GeneticOptions {
	return GeneticOptions{
		PopulationSize: 50,
		Generations:    100,
		MutationRate:   0.1,
		CrossoverRate:  0.8,
		EliteSize:      5,
	}
}

// Validate checks the option ranges.
func (o GeneticOptions) Validate() error {
	if o.PopulationSize < 1 {
		return errors.Clone(errors.ErrValidation, "population_size must be at least 1")
	}
	if o.Generations < 1 {
		return errors.Clone(errors.ErrValidation, "generations must be at least 1")
	}
	if o.MutationRate < 0 || o.MutationRate > 1 {
		return errors.Clone(errors.ErrValidation, "mutation_rate must be between 0 and 1")
	}
	if o.CrossoverRate < 0 || o.CrossoverRate > 1 {
		return errors.Clone(errors.ErrValidation, "crossover_rate must be between 0 and 1")
	}
	if o.EliteSize < 0 || o.EliteSize > o.PopulationSize {
		return errors.Clone(errors.ErrValidation, "elite_size must be between 0 and population_size")
	}
	return nil
}

// Merge overlays a free-form config map onto the receiver. Unknown keys are
// ignored so callers can pass a mixed config through untouched.
func (o CSPOptions) Merge(raw map[string]any) (CSPOptions, error) {
	if err := decode(raw, &o); err != nil {
		return o, err
	}
	return o, o.Validate()
}

// Merge overlays a free-form config map onto the receiver.
func (o GeneticOptions) Merge(raw map[string]any) (GeneticOptions, error) {
	if err := decode(raw, &o); err != nil {
		return o, err
	}
	return o, o.Validate()
}

// DecodeCSPOptions overlays a free-form config map onto the defaults.
func DecodeCSPOptions(raw map[string]any) (CSPOptions, error) {
	return DefaultCSPOptions().Merge(raw)
}

// DecodeGeneticOptions overlays a free-form config map onto the defaults.
func DecodeGeneticOptions(raw map[string]any) (GeneticOptions, error) {
	return DefaultGeneticOptions().Merge(raw)
}

func decode(raw map[string]any, target any) error {
	if len(raw) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal.Code, errors.ErrInternal.Status, "build options decoder")
	}
	if err := dec.Decode(raw); err != nil {
		return errors.Wrap(err, errors.ErrValidation.Code, errors.ErrValidation.Status, "invalid solver configuration")
	}
	return nil
}

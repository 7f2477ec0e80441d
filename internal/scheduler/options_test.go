package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	csp := DefaultCSPOptions()
	assert.True(t, csp.ArcConsistency)
	assert.True(t, csp.ForwardChecking)
	assert.Equal(t, OrderingMRV, csp.VariableOrdering)
	assert.Equal(t, OrderingLCV, csp.ValueOrdering)
	require.NoError(t, csp.Validate())

	genetic := DefaultGeneticOptions()
	assert.Equal(t, 50, genetic.PopulationSize)
	assert.Equal(t, 100, genetic.Generations)
	assert.InDelta(t, 0.1, genetic.MutationRate, 1e-9)
	assert.InDelta(t, 0.8, genetic.CrossoverRate, 1e-9)
	assert.Equal(t, 5, genetic.EliteSize)
	require.NoError(t, genetic.Validate())
}

func TestDecodeCSPOptions(t *testing.T) {
	opts, err := DecodeCSPOptions(map[string]any{
		"use_arc_consistency": false,
		"variable_ordering":   "first",
	})
	require.NoError(t, err)
	assert.False(t, opts.ArcConsistency)
	assert.True(t, opts.ForwardChecking)
	assert.Equal(t, OrderingFirst, opts.VariableOrdering)
	assert.Equal(t, OrderingLCV, opts.ValueOrdering)
}

func TestDecodeCSPOptionsPropagationToggles(t *testing.T) {
	opts, err := DecodeCSPOptions(map[string]any{
		"use_arc_consistency":  false,
		"use_forward_checking": false,
	})
	require.NoError(t, err)
	assert.False(t, opts.ArcConsistency)
	assert.False(t, opts.ForwardChecking)
}

func TestDecodeCSPOptionsRejectsUnknownHeuristics(t *testing.T) {
	_, err := DecodeCSPOptions(map[string]any{"variable_ordering": "random"})
	assert.Error(t, err)

	_, err = DecodeCSPOptions(map[string]any{"value_ordering": "max"})
	assert.Error(t, err)
}

func TestDecodeGeneticOptions(t *testing.T) {
	opts, err := DecodeGeneticOptions(map[string]any{
		"population_size": 10,
		"mutation_rate":   0.25,
		"seed":            99,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, opts.PopulationSize)
	assert.Equal(t, 100, opts.Generations)
	assert.InDelta(t, 0.25, opts.MutationRate, 1e-9)
	assert.Equal(t, int64(99), opts.Seed)
}

func TestDecodeGeneticOptionsWeakTyping(t *testing.T) {
	// JSON payloads arrive with numbers as float64 and sometimes as strings.
	opts, err := DecodeGeneticOptions(map[string]any{
		"population_size": float64(30),
		"generations":     "40",
	})
	require.NoError(t, err)
	assert.Equal(t, 30, opts.PopulationSize)
	assert.Equal(t, 40, opts.Generations)
}

func TestDecodeIgnoresUnknownKeys(t *testing.T) {
	opts, err := DecodeGeneticOptions(map[string]any{
		"generations":     20,
		"something_else":  true,
		"another_unknown": "value",
	})
	require.NoError(t, err)
	assert.Equal(t, 20, opts.Generations)
}

func TestGeneticOptionsValidateRanges(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*GeneticOptions)
	}{
		{"zero population", func(o *GeneticOptions) { o.PopulationSize = 0 }},
		{"zero generations", func(o *GeneticOptions) { o.Generations = 0 }},
		{"mutation rate above one", func(o *GeneticOptions) { o.MutationRate = 1.5 }},
		{"negative crossover rate", func(o *GeneticOptions) { o.CrossoverRate = -0.1 }},
		{"elite beyond population", func(o *GeneticOptions) { o.EliteSize = o.PopulationSize + 1 }},
		{"negative elite", func(o *GeneticOptions) { o.EliteSize = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultGeneticOptions()
			tc.mutate(&opts)
			assert.Error(t, opts.Validate())
		})
	}
}

func TestMergeOverlaysBase(t *testing.T) {
	base := GeneticOptions{
		PopulationSize: 80,
		Generations:    200,
		MutationRate:   0.05,
		CrossoverRate:  0.9,
		EliteSize:      8,
	}
	merged, err := base.Merge(map[string]any{"generations": 50})
	require.NoError(t, err)
	assert.Equal(t, 80, merged.PopulationSize)
	assert.Equal(t, 50, merged.Generations)
	assert.Equal(t, 8, merged.EliteSize)
}

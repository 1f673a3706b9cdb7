package conformance

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daydash/restq"
)

// Runner executes scenarios against the public converter API.
type Runner struct {
	logger *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger routes scenario progress to l instead of discarding it.
// Useful when narrowing down which scenario broke a golden file.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = l
	}
}

// NewRunner creates a Runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // Suppress logs in tests
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run converts the scenario's params and checks the outcome.
//
// Golden scenarios encode the resulting descriptor canonically and
// compare it against testdata/golden/{scenario.Golden}.golden:
//
//	go test ./internal/conformance -update
//
// regenerates the golden files. Error scenarios require the conversion
// to fail with an invalid-input error whose message contains the
// scenario's substring.
func (r *Runner) Run(t *testing.T, scenario *Scenario) {
	t.Helper()

	r.logger.Info("running scenario", "name", scenario.Name)

	defaults, err := buildDefaults(scenario.Defaults)
	require.NoError(t, err)

	q, err := buildConverter(scenario).Convert(scenario.Params, defaults)

	if scenario.Error != "" {
		require.Error(t, err, "conversion should have failed")
		assert.True(t, restq.IsInvalidInput(err), "expected an invalid-input error, got %v", err)
		assert.Contains(t, err.Error(), scenario.Error)
		return
	}

	require.NoError(t, err)

	data, err := restq.MarshalCanonical(q)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Golden, data)
}

// buildConverter applies the scenario's publication states, if any.
func buildConverter(scenario *Scenario) *restq.Converter {
	if len(scenario.PublicationStates) == 0 {
		return restq.New()
	}
	states := make([]restq.PublicationState, len(scenario.PublicationStates))
	for i, s := range scenario.PublicationStates {
		states[i] = restq.PublicationState(s)
	}
	return restq.New(restq.WithPublicationStates(states...))
}

// buildDefaults translates the YAML defaults block into converter
// defaults, parsing sort entries and the where mapping through the
// public API so scenario files use caller-facing syntax.
func buildDefaults(d *ScenarioDefaults) (*restq.Defaults, error) {
	if d == nil {
		return nil, nil
	}

	defaults := &restq.Defaults{
		Start:            d.Start,
		Limit:            d.Limit,
		PublicationState: restq.PublicationState(d.PublicationState),
	}
	if len(d.Sort) > 0 {
		sort, err := restq.ConvertSort(d.Sort)
		if err != nil {
			return nil, fmt.Errorf("defaults.sort: %w", err)
		}
		defaults.Sort = sort
	}
	if d.Where != nil {
		where, err := restq.ParseWhere(d.Where)
		if err != nil {
			return nil, fmt.Errorf("defaults.where: %w", err)
		}
		defaults.Where = where
	}

	return defaults, nil
}

package screening

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/hh-planner/internal/hiring"
)

// Filter represents a single screening step applied to the candidate pool.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, pool *hiring.CandidateList) (*hiring.CandidateList, Step, error)
}

// Deps aggregates dependencies shared across all screening steps.
type Deps struct {
	Logger *zap.Logger
}

// Step describes the result of executing a screening step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains configuration settings consumed by the filters.
type Config struct {
	Excluded   []string    `mapstructure:"excluded"`
	MaxPayRate float64     `mapstructure:"max-pay-rate"`
	Window     *HourWindow `mapstructure:"window"`
}

// HourWindow is an inclusive range of hours.
type HourWindow struct {
	From int `mapstructure:"from"`
	To   int `mapstructure:"to"`
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

// statusProvider is implemented by filters that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// Default returns every filter in the order they are applied.
func Default() []Filter {
	return []Filter{
		NewNoHours(),
		NewExcluded(),
		NewMaxPay(),
		NewHourWindow(),
	}
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run executes the supplied filters sequentially and returns the screened pool.
// The input pool is never modified.
func Run(ctx context.Context, cfg *Config, deps Deps, steps []Filter, pool *hiring.CandidateList) (*hiring.CandidateList, error) {
	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	pool = pool.DeepCopy()
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !step.IsEnabled() {
			if deps.Logger != nil {
				deps.Logger.Info("filter disabled", zap.String("name", step.Name()))
			}
			continue
		}

		next, info, err := step.Apply(ctx, deps, pool)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Info("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		pool = next
	}

	return pool, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}

// drop removes every candidate matching the predicate from pool and returns the ids of the removed ones.
func drop(pool *hiring.CandidateList, match func(*hiring.Candidate) bool) []string {
	var dropped []string
	for _, c := range pool.Items() {
		if match(c) {
			pool.Remove(c)
			dropped = append(dropped, c.ID())
		}
	}
	return dropped
}

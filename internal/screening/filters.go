package screening

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/hh-planner/internal/hiring"
)

type noHoursFilter struct{}

// NewNoHours creates a filter that removes candidates covering no hours. They can never improve coverage.
func NewNoHours() Filter {
	return &noHoursFilter{}
}

func (f *noHoursFilter) Name() string { return "no_hours" }

func (f *noHoursFilter) Disable(string) {}

func (f *noHoursFilter) IsEnabled() bool { return true }

func (f *noHoursFilter) Validate(*Config) error { return nil }

func (f *noHoursFilter) Apply(_ context.Context, deps Deps, pool *hiring.CandidateList) (*hiring.CandidateList, Step, error) {
	initial := pool.Len()
	dropped := drop(pool, func(c *hiring.Candidate) bool { return len(c.Hours()) == 0 })
	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding candidates without hours",
			zap.Strings("excluded_candidates", dropped),
			zap.Int("candidates_left", pool.Len()),
		)
	}

	return pool, Step{Initial: initial, Dropped: len(dropped), Left: pool.Len()}, nil
}

type excludedFilter struct {
	ids []string
}

// NewExcluded creates a filter that removes candidates listed in the config by id.
func NewExcluded() Filter {
	return &excludedFilter{}
}

func (f *excludedFilter) Name() string { return "excluded" }

func (f *excludedFilter) Disable(string) {}

func (f *excludedFilter) IsEnabled() bool { return true }

func (f *excludedFilter) Validate(cfg *Config) error {
	f.ids = nil
	if cfg != nil {
		f.ids = append(f.ids, cfg.Excluded...)
	}
	return nil
}

func (f *excludedFilter) Apply(_ context.Context, deps Deps, pool *hiring.CandidateList) (*hiring.CandidateList, Step, error) {
	initial := pool.Len()
	if len(f.ids) == 0 {
		return pool, Step{Initial: initial, Dropped: 0, Left: pool.Len()}, nil
	}

	dropped := drop(pool, func(c *hiring.Candidate) bool { return slices.Contains(f.ids, c.ID()) })
	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding candidates by id",
			zap.Strings("excluded_candidates", dropped),
			zap.Int("candidates_left", pool.Len()),
		)
	}

	return pool, Step{Initial: initial, Dropped: len(dropped), Left: pool.Len()}, nil
}

func (f *excludedFilter) Status() Status {
	details := map[string]string{}
	if len(f.ids) > 0 {
		details["excluded"] = strings.Join(f.ids, ",")
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}

type maxPayFilter struct {
	disabled bool
	reason   string
	limit    float64
}

// NewMaxPay creates a filter that removes candidates paid above the configured rate.
func NewMaxPay() Filter {
	return &maxPayFilter{}
}

func (f *maxPayFilter) Name() string { return "max_pay" }

func (f *maxPayFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *maxPayFilter) IsEnabled() bool { return !f.disabled }

func (f *maxPayFilter) Validate(cfg *Config) error {
	f.limit = 0
	if cfg == nil {
		return nil
	}
	if cfg.MaxPayRate < 0 {
		return fmt.Errorf("max pay rate must not be negative, got %v", cfg.MaxPayRate)
	}
	f.limit = cfg.MaxPayRate
	return nil
}

func (f *maxPayFilter) Apply(_ context.Context, deps Deps, pool *hiring.CandidateList) (*hiring.CandidateList, Step, error) {
	initial := pool.Len()
	if f.limit == 0 {
		return pool, Step{Initial: initial, Dropped: 0, Left: pool.Len()}, nil
	}

	dropped := drop(pool, func(c *hiring.Candidate) bool { return c.PayRate() > f.limit })
	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding candidates above the pay limit",
			zap.Float64("max_pay_rate", f.limit),
			zap.Strings("excluded_candidates", dropped),
			zap.Int("candidates_left", pool.Len()),
		)
	}

	return pool, Step{Initial: initial, Dropped: len(dropped), Left: pool.Len()}, nil
}

func (f *maxPayFilter) Status() Status {
	details := map[string]string{}
	if f.limit > 0 {
		details["max_pay_rate"] = strconv.FormatFloat(f.limit, 'f', -1, 64)
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}

type hourWindowFilter struct {
	disabled bool
	reason   string
	window   *HourWindow
}

// NewHourWindow creates a filter that removes candidates with no hour inside the configured window.
func NewHourWindow() Filter {
	return &hourWindowFilter{}
}

func (f *hourWindowFilter) Name() string { return "hour_window" }

func (f *hourWindowFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *hourWindowFilter) IsEnabled() bool { return !f.disabled }

func (f *hourWindowFilter) Validate(cfg *Config) error {
	f.window = nil
	if cfg == nil || cfg.Window == nil {
		return nil
	}
	if cfg.Window.From > cfg.Window.To {
		return fmt.Errorf("hour window is empty: from %d is after to %d", cfg.Window.From, cfg.Window.To)
	}
	f.window = cfg.Window
	return nil
}

func (f *hourWindowFilter) Apply(_ context.Context, deps Deps, pool *hiring.CandidateList) (*hiring.CandidateList, Step, error) {
	initial := pool.Len()
	if f.window == nil {
		return pool, Step{Initial: initial, Dropped: 0, Left: pool.Len()}, nil
	}

	outside := func(c *hiring.Candidate) bool {
		for _, h := range c.Hours() {
			if h >= f.window.From && h <= f.window.To {
				return false
			}
		}
		return true
	}

	dropped := drop(pool, outside)
	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding candidates outside the hour window",
			zap.Int("from", f.window.From),
			zap.Int("to", f.window.To),
			zap.Strings("excluded_candidates", dropped),
			zap.Int("candidates_left", pool.Len()),
		)
	}

	return pool, Step{Initial: initial, Dropped: len(dropped), Left: pool.Len()}, nil
}

func (f *hourWindowFilter) Status() Status {
	details := map[string]string{}
	if f.window != nil {
		details["window"] = fmt.Sprintf("%d-%d", f.window.From, f.window.To)
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}

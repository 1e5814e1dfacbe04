package hiring

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/hh-planner/internal/logger"
)

// Strategy names a search algorithm.
type Strategy string

const (
	StrategyGreedy  Strategy = "greedy"
	StrategyOptimal Strategy = "optimal"
	StrategyMinCost Strategy = "min-cost"
)

var (
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrPoolTooLarge    = errors.New("pool is too large for an exact search")
)

// Strategies lists every supported strategy in display order.
func Strategies() []Strategy {
	return []Strategy{StrategyGreedy, StrategyOptimal, StrategyMinCost}
}

// ParseStrategy converts a user supplied name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Strategies() {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Exact reports whether the strategy enumerates every selection.
func (s Strategy) Exact() bool {
	return s == StrategyOptimal || s == StrategyMinCost
}

// Request describes a single search.
type Request struct {
	Strategy Strategy
	Pool     *CandidateList
	Hired    *CandidateList
	// Hires is the hire budget of the greedy and optimal strategies.
	Hires int
	// MinHours is the coverage threshold of the min-cost strategy.
	MinHours float64
}

// Result is the outcome of a search.
type Result struct {
	Strategy Strategy
	Hired    *CandidateList
	Coverage int
	TotalPay float64
	Stats    Stats
	Duration time.Duration
}

// Observer is notified about every finished search.
type Observer interface {
	Observe(res *Result, err error)
}

// Engine runs searches and reports them to the logger and the observer.
type Engine struct {
	// MaxExactPool limits the pool size accepted by exact strategies. Zero means no limit.
	MaxExactPool int

	logger   *zap.Logger
	observer Observer
}

// NewEngine returns an engine logging to log and reporting to observer. Both may be nil.
func NewEngine(log *zap.Logger, observer Observer) *Engine {
	return &Engine{
		logger:   logger.WithFields(log),
		observer: observer,
	}
}

// Run executes the requested strategy. ErrNoSolution from the min-cost strategy is
// returned together with a result holding the unchanged hired list.
func (e *Engine) Run(ctx context.Context, req Request) (*Result, error) {
	res, err := e.run(ctx, req)
	if e.observer != nil {
		e.observer.Observe(res, err)
	}
	return res, err
}

func (e *Engine) run(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	strategy, err := ParseStrategy(string(req.Strategy))
	if err != nil {
		return nil, err
	}
	req.Strategy = strategy

	log := e.logger.With(logger.SearchFields(string(req.Strategy), req.Pool.Len())...)

	if req.Strategy.Exact() && e.MaxExactPool > 0 && req.Pool.Len() > e.MaxExactPool {
		return &Result{Strategy: req.Strategy}, fmt.Errorf("%w: %d candidates, limit is %d", ErrPoolTooLarge, req.Pool.Len(), e.MaxExactPool)
	}

	log.Debug("starting the search",
		zap.Int("hired", req.Hired.Len()),
		zap.Int("hires", req.Hires),
		zap.Float64("min_hours", req.MinHours),
	)

	var (
		hired *CandidateList
		stats Stats
	)

	started := time.Now()
	switch req.Strategy {
	case StrategyGreedy:
		hired, stats = greedy(req.Pool, req.Hired, req.Hires)
	case StrategyOptimal:
		hired, stats = optimal(req.Pool, req.Hired, req.Hires)
	case StrategyMinCost:
		hired, stats, err = minCost(req.Pool, req.Hired, req.MinHours)
	}

	res := &Result{
		Strategy: req.Strategy,
		Stats:    stats,
		Duration: time.Since(started),
	}

	if errors.Is(err, ErrNoSolution) {
		res.Hired = req.Hired.DeepCopy()
		res.Coverage = res.Hired.Coverage()
		res.TotalPay = res.Hired.TotalPay()
		log.Info("no selection found",
			zap.Float64("min_hours", req.MinHours),
			zap.Int("pool_coverage", req.Pool.Coverage()),
		)
		return res, err
	}

	res.Hired = hired
	res.Coverage = hired.Coverage()
	res.TotalPay = hired.TotalPay()

	log.Info("search finished",
		zap.Int("hired", res.Hired.Len()),
		zap.Int("coverage", res.Coverage),
		zap.Float64("total_pay", res.TotalPay),
		zap.Int("nodes", stats.Nodes),
		zap.Int("pruned", stats.Pruned),
		zap.Duration("duration", res.Duration),
	)

	return res, nil
}

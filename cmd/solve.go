package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/spigell/hh-planner/internal/hiring"
	"github.com/spigell/hh-planner/internal/logger"
	"github.com/spigell/hh-planner/internal/metrics"
	"github.com/spigell/hh-planner/internal/pool"
	"github.com/spigell/hh-planner/internal/screening"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	defaultRandomHours  = 8
	defaultRandomMaxPay = 50
	// Candidate labels longer than this are truncated in logs.
	labelLimit = 40
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Pick candidates from the pool with the selected strategy",
	Run: func(cmd *cobra.Command, _ []string) {
		solve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringP("strategy", "s", "", "search strategy: greedy, optimal or min-cost")
	solveCmd.Flags().IntP("hires", "n", 0, "number of candidates to hire (greedy and optimal)")
	solveCmd.Flags().Float64P("min-hours", "m", 0, "hours to cover at the lowest pay (min-cost)")
	solveCmd.Flags().Int("random", 0, "generate a random pool of the given size instead of the configured one")
	solveCmd.Flags().Int64("seed", 0, "seed for the random pool. Default is the current time")
	solveCmd.Flags().BoolP("interactive", "i", false, "choose the strategy from a prompt")
	solveCmd.Flags().String("metrics-file", "", "write search metrics to this file in the Prometheus text format")

	viper.BindPFlag("strategy", solveCmd.Flags().Lookup("strategy"))
	viper.BindPFlag("hires", solveCmd.Flags().Lookup("hires"))
	viper.BindPFlag("min-hours", solveCmd.Flags().Lookup("min-hours"))
	viper.BindPFlag("random.candidates", solveCmd.Flags().Lookup("random"))
	viper.BindPFlag("random.seed", solveCmd.Flags().Lookup("seed"))
	viper.BindPFlag("metrics-file", solveCmd.Flags().Lookup("metrics-file"))
}

// solve is the main command for the cli.
func solve(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config == nil {
		logger.Fatal("config is required")
	}

	logger.Info("starting the hh-planner", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	strategy, err := chooseStrategy(cmd, config)
	if err != nil {
		logger.Fatal("choosing a strategy", zap.Error(err))
	}

	candidates, err := buildPool(config, logger)
	if err != nil {
		logger.Fatal("building the candidate pool", zap.Error(err))
	}

	candidates, hired, err := splitHired(candidates, config.Hired)
	if err != nil {
		logger.Fatal("resolving already hired candidates", zap.Error(err))
	}

	logger.Info("got candidates", zap.Int("pool", candidates.Len()), zap.Int("hired", hired.Len()))

	candidates, err = screening.Run(ctx, config.Screening, screening.Deps{Logger: logger}, screening.Default(), candidates)
	if err != nil {
		logger.Fatal("screening failed", zap.Error(err))
	}

	if candidates.IsEmpty() {
		logger.Info("pool is empty after screening", zap.String("hint", "nobody new can be hired"))
	}

	recorder := metrics.NewRecorder()
	engine := hiring.NewEngine(logger, recorder)
	engine.MaxExactPool = config.MaxExactPool

	res, err := engine.Run(ctx, hiring.Request{
		Strategy: strategy,
		Pool:     candidates,
		Hired:    hired,
		Hires:    config.Hires,
		MinHours: config.MinHours,
	})

	if err := writeMetrics(recorder, config.MetricsFile, logger); err != nil {
		logger.Warn("writing metrics", zap.Error(err))
	}

	switch {
	case errors.Is(err, hiring.ErrNoSolution):
		logger.Info("exiting", zap.String("reason", "the whole pool can not cover the requested hours"))
		return
	case err != nil:
		logger.Fatal("search failed", zap.Error(err))
	}

	report(logger, res)
}

func chooseStrategy(cmd *cobra.Command, config *Config) (hiring.Strategy, error) {
	if cmd != nil && cmd.Flag("interactive").Value.String() == "true" {
		items := make([]string, 0, len(hiring.Strategies()))
		for _, s := range hiring.Strategies() {
			items = append(items, string(s))
		}

		prompt := promptui.Select{
			Label: "Choose a strategy and press ENTER",
			Items: items,
		}

		_, selected, err := prompt.Run()
		if err != nil {
			return "", err
		}
		return hiring.ParseStrategy(selected)
	}

	return hiring.ParseStrategy(config.Strategy)
}

// buildPool returns the configured pool or a random one when random generation is requested.
func buildPool(config *Config, logger *zap.Logger) (*hiring.CandidateList, error) {
	if config.Random == nil || config.Random.Candidates <= 0 {
		return pool.Decode(config.Pool)
	}

	params := pool.GenerateParams{
		Candidates: config.Random.Candidates,
		Hours:      config.Random.Hours,
		MaxPay:     config.Random.MaxPay,
	}
	if params.Hours <= 0 {
		params.Hours = defaultRandomHours
	}
	if params.MaxPay <= 0 {
		params.MaxPay = defaultRandomMaxPay
	}

	seed := config.Random.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Info("generating a random pool",
		zap.Int("candidates", params.Candidates),
		zap.Int("hours", params.Hours),
		zap.Int64("seed", seed),
	)

	return pool.Generate(rand.New(rand.NewSource(seed)), params)
}

// splitHired moves the candidates with the given ids from the pool to a separate hired list.
func splitHired(candidates *hiring.CandidateList, ids []string) (*hiring.CandidateList, *hiring.CandidateList, error) {
	remaining := candidates.DeepCopy()
	hired := hiring.NewCandidateList()

	for _, id := range ids {
		var found *hiring.Candidate
		for _, c := range remaining.Items() {
			if c.ID() == id {
				found = c
				break
			}
		}
		if found == nil {
			return nil, nil, fmt.Errorf("there is no candidate with id %s in the pool", id)
		}

		remaining.Remove(found)
		hired.Add(found)
	}

	return remaining, hired, nil
}

func report(log *zap.Logger, res *hiring.Result) {
	labels := make([]string, 0, res.Hired.Len())
	for _, c := range res.Hired.Items() {
		labels = append(labels, c.String())
	}

	log.Info("selection",
		zap.String("strategy", string(res.Strategy)),
		logger.Candidates("hired", labels, labelLimit),
		zap.Int("coverage", res.Coverage),
		zap.Ints("hours", res.Hired.Hours()),
		zap.Float64("total_pay", res.TotalPay),
	)
}

func writeMetrics(recorder *metrics.Recorder, path string, logger *zap.Logger) error {
	if path == "" {
		return nil
	}
	if err := recorder.WriteTextfile(path); err != nil {
		return err
	}
	logger.Debug("metrics written", zap.String("filename", path))
	return nil
}

package cmd

import (
	"errors"
	"log"
	"strings"

	"github.com/spigell/hh-planner/internal/screening"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "hh-planner"
)

type Config struct {
	Strategy     string            `mapstructure:"strategy"`
	Hires        int               `mapstructure:"hires"`
	MinHours     float64           `mapstructure:"min-hours"`
	MaxExactPool int               `mapstructure:"max-exact-pool"`
	MetricsFile  string            `mapstructure:"metrics-file"`
	Hired        []string          `mapstructure:"hired"`
	Screening    *screening.Config `mapstructure:"screening"`
	Random       *RandomConfig     `mapstructure:"random"`
	// Pool is decoded separately by the pool package.
	Pool any `mapstructure:"pool" json:"-"`
}

// RandomConfig controls generation of a random pool instead of the configured one.
type RandomConfig struct {
	Candidates int   `mapstructure:"candidates"`
	Hours      int   `mapstructure:"hours"`
	MaxPay     int   `mapstructure:"max-pay"`
	Seed       int64 `mapstructure:"seed"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "hh-planner picks candidates to cover working hours within a hire or pay budget",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	viper.SetEnvPrefix("HH_PLANNER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindEnv("metrics-file", "HH_PLANNER_METRICS_FILE"); err != nil {
		log.Fatalf("binding HH_PLANNER_METRICS_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is hh-planner.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	viper.SetDefault("strategy", "greedy")
	viper.SetDefault("max-exact-pool", 20)
}

func initConfig() {
	// Config needed only for solve command now. If there is no config, we can skip initialization
	if solveCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// A random pool can be solved without any config file.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

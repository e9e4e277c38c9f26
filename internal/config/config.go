package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/dotcommander/lifescore/internal/period"
)

// Config represents the lifescore configuration
type Config struct {
	DataDir        string  `mapstructure:"dataDir"`
	Format         string  `mapstructure:"format"`
	Output         string  `mapstructure:"output"`
	WeekStart      string  `mapstructure:"weekStart"`
	TargetIncome   float64 `mapstructure:"targetIncome"`
	CurrentIncome  float64 `mapstructure:"currentIncome"`
	WeightBaseline float64 `mapstructure:"weightBaseline"`
	WeightGoal     float64 `mapstructure:"weightGoal"`
	HistoryWeeks   int     `mapstructure:"historyWeeks"`
	Quiet          bool    `mapstructure:"quiet"`
	Verbose        bool    `mapstructure:"verbose"`
}

// Overrides are command-line values that win over files and environment.
// Zero values leave the loaded setting alone.
type Overrides struct {
	DataDir   string
	Format    string
	Output    string
	WeekStart string
	Quiet     bool
	Verbose   bool
}

// WeekStartDay returns the parsed week convention. LoadConfig has already
// validated it.
func (c *Config) WeekStartDay() period.WeekStartDay {
	d, err := period.ParseWeekStartDay(c.WeekStart)
	if err != nil {
		return period.Monday
	}
	return d
}

// LoadConfig loads configuration from defaults, rc files, LIFESCORE_
// environment variables, and finally the given overrides.
func LoadConfig(o Overrides) (*Config, error) {
	viper.SetDefault("dataDir", "data")
	viper.SetDefault("format", "console")
	viper.SetDefault("output", "")
	viper.SetDefault("weekStart", string(period.Monday))
	viper.SetDefault("targetIncome", 1000000)
	viper.SetDefault("currentIncome", 0)
	viper.SetDefault("weightBaseline", 81)
	viper.SetDefault("weightGoal", 60)
	viper.SetDefault("historyWeeks", 8)
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)

	configPaths := []string{".lifescorerc.json", ".lifescorerc.yaml", ".lifescorerc.yml"}
	for _, path := range configPaths {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	viper.SetEnvPrefix("LIFESCORE")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if o.DataDir != "" {
		config.DataDir = o.DataDir
	}
	if o.Format != "" {
		config.Format = o.Format
	}
	if o.Output != "" {
		config.Output = o.Output
	}
	if o.WeekStart != "" {
		config.WeekStart = o.WeekStart
	}
	if o.Quiet {
		config.Quiet = true
	}
	if o.Verbose {
		config.Verbose = true
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if _, err := period.ParseWeekStartDay(config.WeekStart); err != nil {
		return err
	}

	if config.DataDir == "" {
		return fmt.Errorf("data directory must not be empty")
	}

	if config.TargetIncome <= 0 {
		return fmt.Errorf("target income must be positive")
	}

	if config.CurrentIncome < 0 {
		return fmt.Errorf("current income must not be negative")
	}

	if config.WeightBaseline <= 0 || config.WeightGoal <= 0 {
		return fmt.Errorf("weight baseline and goal must be positive")
	}

	if config.HistoryWeeks < 1 {
		return fmt.Errorf("history weeks must be at least 1")
	}

	return nil
}

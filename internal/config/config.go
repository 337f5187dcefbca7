package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed defaults.yaml
var defaults []byte

// Validation sentinels. Callers match with errors.Is; the wrapped message
// names the offending parameter.
var (
	ErrInvalidCount     = errors.New("record count must be positive")
	ErrInvalidRate      = errors.New("defect rate must be in [0, 1)")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidOutputDir = errors.New("output directory must not be empty")
)

const dateLayout = "2006-01-02"

// ---- Root ----

type Config struct {
	Counts  CountsConfig  `mapstructure:"counts"`
	Seed    uint64        `mapstructure:"seed"` // 0 = randomize each run
	Defects DefectsConfig `mapstructure:"defects"`
	Dates   DatesConfig   `mapstructure:"dates"`
	Output  OutputConfig  `mapstructure:"output"`
	Log     LogConfig     `mapstructure:"log"`
}

// ---- Leaf structs ----

type CountsConfig struct {
	Customers    int `mapstructure:"customers"`
	Products     int `mapstructure:"products"`
	Transactions int `mapstructure:"transactions"`
}

type DefectsConfig struct {
	DuplicateRate float64 `mapstructure:"duplicate_rate"`
	MissingRate   float64 `mapstructure:"missing_rate"`
}

type DatesConfig struct {
	SignupStart string `mapstructure:"signup_start"`
	SignupDays  int    `mapstructure:"signup_days"`
	WindowStart string `mapstructure:"window_start"`
	WindowEnd   string `mapstructure:"window_end"`
}

type OutputConfig struct {
	RawDir       string `mapstructure:"raw_dir"`
	ProcessedDir string `mapstructure:"processed_dir"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// SignupStartTime parses the earliest customer signup date.
func (d DatesConfig) SignupStartTime() (time.Time, error) {
	t, err := time.Parse(dateLayout, d.SignupStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse dates.signup_start %q: %w", d.SignupStart, err)
	}
	return t, nil
}

// Window parses the transaction date window. Both boundaries are inclusive:
// a transaction date may land on any day from start through end.
func (d DatesConfig) Window() (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, d.WindowStart)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse dates.window_start %q: %w", d.WindowStart, err)
	}
	end, err = time.Parse(dateLayout, d.WindowEnd)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse dates.window_end %q: %w", d.WindowEnd, err)
	}
	return start, end, nil
}

// Validate rejects configurations that would produce a nonsensical dataset.
// It runs before anything touches the filesystem.
func (c Config) Validate() error {
	if c.Counts.Customers <= 0 {
		return fmt.Errorf("%w: counts.customers = %d", ErrInvalidCount, c.Counts.Customers)
	}
	if c.Counts.Products <= 0 {
		return fmt.Errorf("%w: counts.products = %d", ErrInvalidCount, c.Counts.Products)
	}
	if c.Counts.Transactions <= 0 {
		return fmt.Errorf("%w: counts.transactions = %d", ErrInvalidCount, c.Counts.Transactions)
	}
	if c.Defects.DuplicateRate < 0 || c.Defects.DuplicateRate >= 1 {
		return fmt.Errorf("%w: defects.duplicate_rate = %g", ErrInvalidRate, c.Defects.DuplicateRate)
	}
	if c.Defects.MissingRate < 0 || c.Defects.MissingRate >= 1 {
		return fmt.Errorf("%w: defects.missing_rate = %g", ErrInvalidRate, c.Defects.MissingRate)
	}
	if _, err := c.Dates.SignupStartTime(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}
	if c.Dates.SignupDays <= 0 {
		return fmt.Errorf("%w: dates.signup_days = %d", ErrInvalidDateRange, c.Dates.SignupDays)
	}
	start, end, err := c.Dates.Window()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}
	if !start.Before(end) {
		return fmt.Errorf("%w: dates.window_start %s is not before dates.window_end %s",
			ErrInvalidDateRange, c.Dates.WindowStart, c.Dates.WindowEnd)
	}
	if c.Output.RawDir == "" {
		return fmt.Errorf("%w: output.raw_dir", ErrInvalidOutputDir)
	}
	if c.Output.ProcessedDir == "" {
		return fmt.Errorf("%w: output.processed_dir", ErrInvalidOutputDir)
	}
	return nil
}

// Load reads embedded defaults, merges user YAML (if provided), and applies env overrides (DATAGEN_*).
func Load(path string) (Config, error) {
	v := viper.New()

	// embedded defaults
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return Config{}, err
	}

	// an explicitly requested file must load; falling back to defaults
	// behind the user's back is silent degradation
	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	// env override (DATAGEN_*); nested keys map dots to underscores,
	// e.g. output.raw_dir -> DATAGEN_OUTPUT_RAW_DIR
	v.SetEnvPrefix("DATAGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

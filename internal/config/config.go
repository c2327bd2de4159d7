// Package config resolves knapbench settings from flags, environment and an
// optional config file through viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Keys shared between flag bindings and the config file.
const (
	KeyResultsDir  = "results_dir"
	KeyOutputDir   = "output_dir"
	KeyLogLevel    = "log.level"
	KeyLogFormat   = "log.format"
	KeyWorkbook    = "workbook"
	KeySummary     = "summary"
	KeyDebug       = "debug"
	KeyChartWidth  = "chart.width"
	KeyChartHeight = "chart.height"

	EnvPrefix = "KNAPBENCH"
)

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level" json:"level" validate:"oneof=debug info warn warning error"`
	Format string `mapstructure:"format" json:"format" validate:"oneof=text json"`
}

// ChartConfig is the rendered chart size in inches.
type ChartConfig struct {
	Width  float64 `mapstructure:"width" json:"width" validate:"gt=0"`
	Height float64 `mapstructure:"height" json:"height" validate:"gt=0"`
}

// Config is the resolved run configuration.
type Config struct {
	ResultsDir string      `mapstructure:"results_dir" json:"results_dir" validate:"required"`
	OutputDir  string      `mapstructure:"output_dir" json:"output_dir" validate:"required"`
	Log        LogConfig   `mapstructure:"log" json:"log"`
	Workbook   bool        `mapstructure:"workbook" json:"workbook"`
	Summary    bool        `mapstructure:"summary" json:"summary"`
	Debug      bool        `mapstructure:"debug" json:"debug"`
	Chart      ChartConfig `mapstructure:"chart" json:"chart"`
}

// SetDefaults registers the default for every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyResultsDir, "results")
	v.SetDefault(KeyOutputDir, "plots")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyWorkbook, false)
	v.SetDefault(KeySummary, false)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyChartWidth, 12.0)
	v.SetDefault(KeyChartHeight, 6.0)
}

// New returns a viper instance with defaults and KNAPBENCH_* environment
// lookup (log.level -> KNAPBENCH_LOG_LEVEL).
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file into v, then decodes and validates.
// An empty path skips the file.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not decode config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks cfg and flattens validator errors into one message.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	gosdmx "github.com/reoring/gosdmx"
	"github.com/reoring/gosdmx/sdmxcsv"
)

// Config represents the sdmx tool configuration
type Config struct {
	Parse  ParseConfig  `mapstructure:"parse"`
	CSV    CSVConfig    `mapstructure:"csv"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
	I18n   I18nConfig   `mapstructure:"i18n"`
}

// ParseConfig controls document enforcement
type ParseConfig struct {
	DuplicateKeys string `mapstructure:"duplicate_keys"`
	MaxDepth      int    `mapstructure:"max_depth"`
	MaxBytes      int64  `mapstructure:"max_bytes"`
	FailFast      bool   `mapstructure:"fail_fast"`
}

// CSVConfig holds the default SDMX-CSV options
type CSVConfig struct {
	Labels     string `mapstructure:"labels"`
	Keys       string `mapstructure:"keys"`
	TimeFormat string `mapstructure:"time_format"`
	Delimiter  string `mapstructure:"delimiter"`
}

// OutputConfig controls how documents are re-emitted
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Indent int    `mapstructure:"indent"`
}

// LogConfig configures the logger
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// I18nConfig selects the issue message language
type I18nConfig struct {
	Language string `mapstructure:"language"`
}

// EnvPrefix is the prefix of environment variables, e.g. SDMX_LOG_LEVEL.
const EnvPrefix = "SDMX"

// New returns a viper instance with defaults, search paths and environment
// binding set up. Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("parse.duplicate_keys", "error")
	v.SetDefault("parse.max_depth", 0)
	v.SetDefault("parse.max_bytes", 0)
	v.SetDefault("parse.fail_fast", false)
	v.SetDefault("csv.labels", "id")
	v.SetDefault("csv.keys", "none")
	v.SetDefault("csv.time_format", "original")
	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("output.format", "json")
	v.SetDefault("output.indent", 2)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.development", false)
	v.SetDefault("i18n.language", "en")

	v.SetConfigName("sdmx")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "sdmx"))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file if one exists and validates the result. An
// explicit file set with v.SetConfigFile must exist.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// validateConfig checks every enumerated value
func validateConfig(cfg *Config) error {
	var errs []error
	if _, ok := gosdmx.ParseSeverity(cfg.Parse.DuplicateKeys); !ok {
		errs = append(errs, fmt.Errorf("parse.duplicate_keys must be one of ignore, warn, error, got: %s", cfg.Parse.DuplicateKeys))
	}
	if cfg.Parse.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("parse.max_depth must not be negative, got: %d", cfg.Parse.MaxDepth))
	}
	if cfg.Parse.MaxBytes < 0 {
		errs = append(errs, fmt.Errorf("parse.max_bytes must not be negative, got: %d", cfg.Parse.MaxBytes))
	}
	if _, ok := sdmxcsv.ParseLabels(cfg.CSV.Labels); !ok {
		errs = append(errs, fmt.Errorf("csv.labels must be one of %s, got: %s", sdmxcsv.LabelsTokens, cfg.CSV.Labels))
	}
	if _, ok := sdmxcsv.ParseKeys(cfg.CSV.Keys); !ok {
		errs = append(errs, fmt.Errorf("csv.keys must be one of %s, got: %s", sdmxcsv.KeysTokens, cfg.CSV.Keys))
	}
	if _, ok := sdmxcsv.ParseTimeFormat(cfg.CSV.TimeFormat); !ok {
		errs = append(errs, fmt.Errorf("csv.time_format must be one of %s, got: %s", sdmxcsv.TimeFormatTokens, cfg.CSV.TimeFormat))
	}
	if len([]rune(cfg.CSV.Delimiter)) != 1 || cfg.CSV.Delimiter == "\"" || cfg.CSV.Delimiter == "\n" {
		errs = append(errs, fmt.Errorf("csv.delimiter must be a single character other than a quote or newline, got: %q", cfg.CSV.Delimiter))
	}
	switch cfg.Output.Format {
	case "json", "yaml":
	default:
		errs = append(errs, fmt.Errorf("output.format must be json or yaml, got: %s", cfg.Output.Format))
	}
	if cfg.Output.Indent < 0 {
		errs = append(errs, fmt.Errorf("output.indent must not be negative, got: %d", cfg.Output.Indent))
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of debug, info, warn, error, got: %s", cfg.Log.Level))
	}
	switch cfg.I18n.Language {
	case "en", "ja":
	default:
		errs = append(errs, fmt.Errorf("i18n.language must be en or ja, got: %s", cfg.I18n.Language))
	}
	return errors.Join(errs...)
}

// ParseOpt converts the parse section into decoder options.
func (c *Config) ParseOpt() gosdmx.ParseOpt {
	sev, _ := gosdmx.ParseSeverity(c.Parse.DuplicateKeys)
	return gosdmx.ParseOpt{
		Strictness: gosdmx.Strictness{OnDuplicateKey: sev},
		MaxDepth:   c.Parse.MaxDepth,
		MaxBytes:   c.Parse.MaxBytes,
		FailFast:   c.Parse.FailFast,
	}
}

// DataOptions converts the csv section into SDMX-CSV data options.
func (c *Config) DataOptions() sdmxcsv.DataOptions {
	labels, _ := sdmxcsv.ParseLabels(c.CSV.Labels)
	keys, _ := sdmxcsv.ParseKeys(c.CSV.Keys)
	tf, _ := sdmxcsv.ParseTimeFormat(c.CSV.TimeFormat)
	return sdmxcsv.DataOptions{Labels: labels, Keys: keys, TimeFormat: tf}
}

// MetadataOptions converts the csv section into SDMX-CSV metadata options.
func (c *Config) MetadataOptions() sdmxcsv.MetadataOptions {
	labels, _ := sdmxcsv.ParseLabels(c.CSV.Labels)
	return sdmxcsv.MetadataOptions{Labels: labels}
}

// Comma returns the csv delimiter.
func (c *Config) Comma() rune { return []rune(c.CSV.Delimiter)[0] }

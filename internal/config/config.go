// Package config holds runtime settings for huepoint.
//
// Settings start from defaults, are overridden by HUEPOINT_* environment
// variables, and finally by command-line flags registered with the
// environment-derived values as their defaults.
package config

import (
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/huepoint/internal/motion"
	"github.com/jmylchreest/huepoint/internal/names"
)

// Environment variables read by WithEnv.
const (
	EnvHalfSize      = "HUEPOINT_HALF_SIZE"
	EnvTweenDuration = "HUEPOINT_TWEEN_DURATION"
	EnvEase          = "HUEPOINT_EASE"
	EnvMetric        = "HUEPOINT_METRIC"
	EnvSources       = "HUEPOINT_SOURCES"
	EnvTable         = "HUEPOINT_TABLE"
	EnvLogLevel      = "HUEPOINT_LOG_LEVEL"
	EnvLogFile       = "HUEPOINT_LOG_FILE"
)

// ErrInvalidConfig is wrapped by every validation and parse failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds huepoint settings.
type Config struct {
	// HalfSize is the marker half-extent in surface units.
	HalfSize float64

	// TweenDuration is how long the marker takes to reach a new target.
	TweenDuration time.Duration

	// Ease names the marker easing function.
	Ease string

	// Metric is the nearest-match distance metric.
	Metric string

	// Sources lists the built-in name tables to resolve against, in order.
	Sources []string

	// TablePath is an optional extra name table file, resolved after Sources.
	TablePath string

	// LogLevel is the hclog level name.
	LogLevel string

	// LogFile receives logs in interactive mode. Empty discards them.
	LogFile string
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		HalfSize:      1,
		TweenDuration: motion.DefaultDuration,
		Ease:          motion.DefaultEase,
		Metric:        string(names.MetricLab),
		Sources:       []string{names.SourceNTC, names.SourceHTML},
		LogLevel:      "warn",
	}
}

// Builder provides a fluent interface for constructing a Config.
type Builder struct {
	config Config
	useEnv bool
	lookup func(string) (string, bool)
}

// NewBuilder creates a Builder starting from Default.
func NewBuilder() *Builder {
	return &Builder{
		config: Default(),
		lookup: os.LookupEnv,
	}
}

// WithEnv applies HUEPOINT_* environment variables over the base configuration.
func (b *Builder) WithEnv() *Builder {
	b.useEnv = true
	return b
}

// WithLookup sets the environment lookup function (useful for testing).
func (b *Builder) WithLookup(lookup func(string) (string, bool)) *Builder {
	b.lookup = lookup
	return b
}

// Build constructs the Config. Malformed numeric or duration variables are
// reported rather than silently ignored.
func (b *Builder) Build() (*Config, error) {
	config := b.config
	config.Sources = slices.Clone(config.Sources)

	if !b.useEnv {
		return &config, nil
	}

	if v, ok := b.env(EnvHalfSize); ok {
		half, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidConfig, "%s=%q: %v", EnvHalfSize, v, err)
		}
		config.HalfSize = half
	}
	if v, ok := b.env(EnvTweenDuration); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidConfig, "%s=%q: %v", EnvTweenDuration, v, err)
		}
		config.TweenDuration = d
	}
	if v, ok := b.env(EnvEase); ok {
		config.Ease = v
	}
	if v, ok := b.env(EnvMetric); ok {
		config.Metric = v
	}
	if v, ok := b.env(EnvSources); ok {
		config.Sources = parseList(v)
	}
	if v, ok := b.env(EnvTable); ok {
		config.TablePath = v
	}
	if v, ok := b.env(EnvLogLevel); ok {
		config.LogLevel = v
	}
	if v, ok := b.env(EnvLogFile); ok {
		config.LogFile = v
	}

	return &config, nil
}

func (b *Builder) env(key string) (string, bool) {
	v, ok := b.lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

// parseList parses a comma-separated list, dropping empty items.
func parseList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, strings.ToLower(item))
		}
	}
	return out
}

// RegisterResolverFlags registers the name-resolution flags.
func (c *Config) RegisterResolverFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Metric, "metric", c.Metric,
		"nearest-match distance metric ("+strings.Join(metricNames(), ", ")+")")
	fs.StringSliceVar(&c.Sources, "sources", c.Sources,
		"built-in name tables to resolve against, in order ("+names.SourceNTC+", "+names.SourceHTML+")")
	fs.StringVar(&c.TablePath, "table", c.TablePath,
		"extra name table file (\"RRGGBB Name\" lines, optionally xz-compressed)")
}

func metricNames() []string {
	metrics := names.ValidMetrics()
	out := make([]string, len(metrics))
	for i, m := range metrics {
		out[i] = string(m)
	}
	return out
}

// RegisterGeometryFlags registers the marker geometry flag.
func (c *Config) RegisterGeometryFlags(fs *pflag.FlagSet) {
	fs.Float64Var(&c.HalfSize, "half-size", c.HalfSize, "marker half-extent in surface units")
}

// RegisterMotionFlags registers the marker motion flags.
func (c *Config) RegisterMotionFlags(fs *pflag.FlagSet) {
	fs.DurationVar(&c.TweenDuration, "tween", c.TweenDuration, "marker motion duration (0 disables easing)")
	fs.StringVar(&c.Ease, "ease", c.Ease,
		"marker easing ("+strings.Join(motion.EaseNames(), ", ")+")")
}

// RegisterLogFlags registers the log level flag.
func (c *Config) RegisterLogFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (trace, debug, info, warn, error, off)")
}

// RegisterLogFileFlag registers the interactive log file flag.
func (c *Config) RegisterLogFileFlag(fs *pflag.FlagSet) {
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file while the screen is active")
}

// Validate checks ranges and enum values.
func (c *Config) Validate() error {
	if c.HalfSize < 0 {
		return errors.Wrapf(ErrInvalidConfig, "half-size must not be negative, got %v", c.HalfSize)
	}
	if c.TweenDuration < 0 {
		return errors.Wrapf(ErrInvalidConfig, "tween duration must not be negative, got %s", c.TweenDuration)
	}
	if _, err := motion.Ease(c.Ease); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "%v", err)
	}
	if _, err := names.ParseMetric(c.Metric); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "%v", err)
	}
	if len(c.Sources) == 0 && c.TablePath == "" {
		return errors.Wrap(ErrInvalidConfig, "at least one name source is required")
	}
	for _, src := range c.Sources {
		switch strings.ToLower(src) {
		case names.SourceNTC, names.SourceHTML:
		default:
			return errors.Wrapf(ErrInvalidConfig, "unknown name source %q", src)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured hclog level.
func (c *Config) Level() (hclog.Level, error) {
	level := hclog.LevelFromString(c.LogLevel)
	if level == hclog.NoLevel {
		return hclog.NoLevel, errors.Wrapf(ErrInvalidConfig, "unknown log level %q", c.LogLevel)
	}
	return level, nil
}

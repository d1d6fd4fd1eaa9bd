// Package config loads engine and terminal tuning for stackshift.
//
// Values come from, in increasing priority: built-in defaults, a TOML file,
// and STACKSHIFT_* environment variables (dots in keys become underscores,
// so engine.lift_scale is STACKSHIFT_ENGINE_LIFT_SCALE).
//
// An example file:
//
//	[engine]
//	lift_scale = 1.2
//	drop_duration = "150ms"
//
//	[gesture]
//	min_press = "250ms"
//
//	[ui]
//	column_width = 28
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/matzehuels/stackshift/pkg/collection"
	"github.com/matzehuels/stackshift/pkg/dnd"
	"github.com/matzehuels/stackshift/pkg/errors"
	"github.com/matzehuels/stackshift/pkg/gesture"
)

const (
	appName   = "stackshift"
	envPrefix = "STACKSHIFT"
)

// Config holds all tunables.
type Config struct {
	Engine  EngineConfig  `mapstructure:"engine"`
	Gesture GestureConfig `mapstructure:"gesture"`
	UI      UIConfig      `mapstructure:"ui"`
}

// EngineConfig tunes the drag manager and containers.
type EngineConfig struct {
	LiftScale           float64       `mapstructure:"lift_scale"`
	LiftDuration        time.Duration `mapstructure:"lift_duration"`
	DropDuration        time.Duration `mapstructure:"drop_duration"`
	AnimationDuration   time.Duration `mapstructure:"animation_duration"`
	AutoscrollThreshold float64       `mapstructure:"autoscroll_threshold"`
	AutoscrollMaxStep   float64       `mapstructure:"autoscroll_max_step"`
	AutoscrollInterval  time.Duration `mapstructure:"autoscroll_interval"`
}

// GestureConfig tunes press recognition.
type GestureConfig struct {
	MinimumPressDuration time.Duration `mapstructure:"min_press"`
	DeadZone             float64       `mapstructure:"dead_zone"`
}

// UIConfig tunes the terminal board.
type UIConfig struct {
	ColumnWidth int `mapstructure:"column_width"`
	CardHeight  int `mapstructure:"card_height"`
	Gap         int `mapstructure:"gap"`
	FrameRate   int `mapstructure:"frame_rate"`
	SampleLists int `mapstructure:"sample_lists"`
	SampleCards int `mapstructure:"sample_cards"`
}

func setDefaults(v *viper.Viper) {
	auto := collection.DefaultAutoscroll()
	mgr := dnd.DefaultConfig()
	g := gesture.DefaultConfig()

	v.SetDefault("engine.lift_scale", mgr.LiftScale)
	v.SetDefault("engine.lift_duration", mgr.LiftDuration)
	v.SetDefault("engine.drop_duration", mgr.DropDuration)
	v.SetDefault("engine.animation_duration", collection.DefaultAnimationDuration)
	v.SetDefault("engine.autoscroll_threshold", auto.Threshold)
	v.SetDefault("engine.autoscroll_max_step", auto.MaxStep)
	v.SetDefault("engine.autoscroll_interval", auto.Interval)

	v.SetDefault("gesture.min_press", g.MinimumPressDuration)
	v.SetDefault("gesture.dead_zone", g.DeadZone)

	v.SetDefault("ui.column_width", 24)
	v.SetDefault("ui.card_height", 3)
	v.SetDefault("ui.gap", 2)
	v.SetDefault("ui.frame_rate", 30)
	v.SetDefault("ui.sample_lists", 3)
	v.SetDefault("ui.sample_cards", 21)
}

// Default returns the built-in configuration.
func Default() Config {
	c, _ := decode(newViper())
	return c
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration. An explicit path must exist; with an empty path
// the STACKSHIFT_CONFIG variable, then the user config directory, are tried
// and a missing file is not an error.
func Load(path string) (Config, error) {
	v := newViper()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(envPrefix + "_CONFIG")
		explicit = path != ""
	}

	if explicit {
		if err := errors.ValidateFilePath(path, ""); err != nil {
			return Config{}, err
		}
		if _, err := os.Stat(path); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
		}
	} else if dir, err := Dir(); err == nil {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
			}
		}
	}

	c, err := decode(v)
	if err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	return c, nil
}

// Dir returns the user config directory following XDG
// (~/.config/stackshift/).
func Dir() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	e, g, u := c.Engine, c.Gesture, c.UI
	switch {
	case e.LiftScale <= 0:
		return invalid("engine.lift_scale must be positive, got %g", e.LiftScale)
	case e.LiftDuration < 0 || e.DropDuration < 0 || e.AnimationDuration < 0:
		return invalid("engine durations cannot be negative")
	case e.AutoscrollThreshold <= 0 || e.AutoscrollThreshold > 1:
		return invalid("engine.autoscroll_threshold must be in (0, 1], got %g", e.AutoscrollThreshold)
	case e.AutoscrollMaxStep <= 0:
		return invalid("engine.autoscroll_max_step must be positive, got %g", e.AutoscrollMaxStep)
	case e.AutoscrollInterval <= 0:
		return invalid("engine.autoscroll_interval must be positive, got %s", e.AutoscrollInterval)
	case g.MinimumPressDuration < 0:
		return invalid("gesture.min_press cannot be negative")
	case g.DeadZone < 0:
		return invalid("gesture.dead_zone cannot be negative")
	case u.ColumnWidth < 8:
		return invalid("ui.column_width must be at least 8, got %d", u.ColumnWidth)
	case u.CardHeight < 1:
		return invalid("ui.card_height must be at least 1, got %d", u.CardHeight)
	case u.Gap < 0:
		return invalid("ui.gap cannot be negative")
	case u.FrameRate < 1 || u.FrameRate > 240:
		return invalid("ui.frame_rate must be in [1, 240], got %d", u.FrameRate)
	case u.SampleLists < 1 || u.SampleCards < 0:
		return invalid("ui.sample_lists must be positive and ui.sample_cards non-negative")
	}
	return nil
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidConfig, format, args...)
}

// =============================================================================
// Engine adapters
// =============================================================================

// Manager returns the drag manager tuning.
func (c Config) Manager() dnd.Config {
	return dnd.Config{
		LiftScale:    c.Engine.LiftScale,
		LiftDuration: c.Engine.LiftDuration,
		DropDuration: c.Engine.DropDuration,
	}
}

// Autoscroll returns the container autoscroll tuning.
func (c Config) Autoscroll() collection.Autoscroll {
	return collection.Autoscroll{
		Threshold: c.Engine.AutoscrollThreshold,
		MaxStep:   c.Engine.AutoscrollMaxStep,
		Interval:  c.Engine.AutoscrollInterval,
	}
}

// Recognizer returns the gesture recognizer tuning.
func (c Config) Recognizer() gesture.Config {
	return gesture.Config{
		MinimumPressDuration: c.Gesture.MinimumPressDuration,
		DeadZone:             c.Gesture.DeadZone,
	}
}

// FrameInterval is the terminal redraw period.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(max(c.UI.FrameRate, 1))
}

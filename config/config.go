// Package config loads layout settings from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/physgun/territory/core"
	"github.com/physgun/territory/parameter"
)

// Settings governs the size behavior of all territories in a world.
// Pure data; the pipeline reads it as a resource and never mutates it.
type Settings struct {
	// MinSize is the smallest extent an unlocked territory may be reduced to
	MinSize core.Vec2
	// DefaultSize is the spawn size when a spawn request carries no expanse
	DefaultSize core.Vec2
	// InnerMargin is the distance of tab content from the territory frame
	InnerMargin core.Vec2
	// OuterMargin governs the space kept between territories
	OuterMargin core.Vec2
	// StrictResize enables a final overlap verification after resize
	// conflict resolution, mirroring the drag path. Off by default to match
	// the historical behavior.
	StrictResize bool
}

// DefaultSettings returns the tuned defaults from the parameter package
func DefaultSettings() Settings {
	return Settings{
		MinSize:     core.V(parameter.IconSize, parameter.IconSize),
		DefaultSize: core.V(parameter.DefaultTerritoryWidth, parameter.DefaultTerritoryHeight),
		InnerMargin: core.V(parameter.InnerMarginX, parameter.InnerMarginY),
		OuterMargin: core.V(parameter.OuterMarginX, parameter.OuterMarginY),
	}
}

// fileSettings is the on-disk schema; flattened pairs unmarshal more
// predictably than nested vector types
type fileSettings struct {
	Layout struct {
		MinWidth      float64 `mapstructure:"min_width"`
		MinHeight     float64 `mapstructure:"min_height"`
		DefaultWidth  float64 `mapstructure:"default_width"`
		DefaultHeight float64 `mapstructure:"default_height"`
		InnerMarginX  float64 `mapstructure:"inner_margin_x"`
		InnerMarginY  float64 `mapstructure:"inner_margin_y"`
		OuterMarginX  float64 `mapstructure:"outer_margin_x"`
		OuterMarginY  float64 `mapstructure:"outer_margin_y"`
		StrictResize  bool    `mapstructure:"strict_resize"`
	} `mapstructure:"layout"`
}

// Load reads settings from file and env. Env var overrides use prefix
// TERRITORY_. A missing config file is not an error; defaults apply.
func Load() (Settings, error) {
	v := viper.New()

	def := DefaultSettings()
	v.SetDefault("layout.min_width", def.MinSize.X)
	v.SetDefault("layout.min_height", def.MinSize.Y)
	v.SetDefault("layout.default_width", def.DefaultSize.X)
	v.SetDefault("layout.default_height", def.DefaultSize.Y)
	v.SetDefault("layout.inner_margin_x", def.InnerMargin.X)
	v.SetDefault("layout.inner_margin_y", def.InnerMargin.Y)
	v.SetDefault("layout.outer_margin_x", def.OuterMargin.X)
	v.SetDefault("layout.outer_margin_y", def.OuterMargin.Y)
	v.SetDefault("layout.strict_resize", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TERRITORY_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "territory"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TERRITORY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var fs fileSettings
	if err := v.Unmarshal(&fs); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}

	s := Settings{
		MinSize:      core.V(fs.Layout.MinWidth, fs.Layout.MinHeight),
		DefaultSize:  core.V(fs.Layout.DefaultWidth, fs.Layout.DefaultHeight),
		InnerMargin:  core.V(fs.Layout.InnerMarginX, fs.Layout.InnerMarginY),
		OuterMargin:  core.V(fs.Layout.OuterMarginX, fs.Layout.OuterMarginY),
		StrictResize: fs.Layout.StrictResize,
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings the pipeline cannot honor
func (s Settings) Validate() error {
	if s.MinSize.X <= 0 || s.MinSize.Y <= 0 {
		return fmt.Errorf("min size must be positive, got %.1fx%.1f", s.MinSize.X, s.MinSize.Y)
	}
	if s.DefaultSize.X < s.MinSize.X || s.DefaultSize.Y < s.MinSize.Y {
		return fmt.Errorf("default size %.1fx%.1f below min size %.1fx%.1f",
			s.DefaultSize.X, s.DefaultSize.Y, s.MinSize.X, s.MinSize.Y)
	}
	return nil
}

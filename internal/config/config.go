// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmigest/lump"
	"github.com/katalvlaran/lvmigest/schedule"
)

// ErrInvalidConfig classifies unreadable or inconsistent configuration.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the CLI configuration. Precedence, lowest first: Default, YAML
// file, LVMIGEST_* environment variables, command-line flags.
type Config struct {
	Debug    bool           `yaml:"debug" env:"LVMIGEST_DEBUG"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Lump     LumpConfig     `yaml:"lump"`
}

// ScheduleConfig drives the schedule command.
type ScheduleConfig struct {
	// Params is the Rogers–Castro parameter set; absent means schedule.Fundamental.
	Params   schedule.Params `yaml:"params"`
	From     float64         `yaml:"from" env:"LVMIGEST_AGE_FROM"`
	To       float64         `yaml:"to" env:"LVMIGEST_AGE_TO"`
	Step     float64         `yaml:"step" env:"LVMIGEST_AGE_STEP"`
	Unscaled bool            `yaml:"unscaled" env:"LVMIGEST_UNSCALED"`
}

// LumpConfig drives the lump command.
type LumpConfig struct {
	Threshold  float64  `yaml:"threshold" env:"LVMIGEST_THRESHOLD"`
	Targets    []string `yaml:"targets" env:"LVMIGEST_TARGETS" envSeparator:","`
	OtherLabel string   `yaml:"other_label" env:"LVMIGEST_OTHER_LABEL"`
	Complete   bool     `yaml:"complete" env:"LVMIGEST_COMPLETE"`
	FillValue  float64  `yaml:"fill_value" env:"LVMIGEST_FILL_VALUE"`
	OrigField  string   `yaml:"orig_field" env:"LVMIGEST_ORIG_FIELD"`
	DestField  string   `yaml:"dest_field" env:"LVMIGEST_DEST_FIELD"`
	FlowField  string   `yaml:"flow_field" env:"LVMIGEST_FLOW_FIELD"`
	GroupBy    []string `yaml:"group_by" env:"LVMIGEST_GROUP_BY" envSeparator:","`
}

// Fields returns the configured tidy-table field names.
func (l LumpConfig) Fields() lump.Fields {
	return lump.Fields{Orig: l.OrigField, Dest: l.DestField, Flow: l.FlowField}
}

// Default returns the built-in configuration.
func Default() Config {
	f := lump.DefaultFields()
	return Config{
		Schedule: ScheduleConfig{
			Params: schedule.Fundamental(),
			From:   0,
			To:     100,
			Step:   1,
		},
		Lump: LumpConfig{
			Targets:    lump.DefaultTargets(),
			OtherLabel: lump.DefaultOtherLabel,
			FillValue:  lump.DefaultFillValue,
			OrigField:  f.Orig,
			DestField:  f.Dest,
			FlowField:  f.Flow,
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file at
// path and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %v: %w", path, err, ErrInvalidConfig)
		}
		// A params block replaces the default set rather than merging into it.
		cfg.Schedule.Params = nil
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %v: %w", path, err, ErrInvalidConfig)
		}
		if cfg.Schedule.Params == nil {
			cfg.Schedule.Params = schedule.Fundamental()
		}
	}

	if err := ParseEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %v: %w", err, ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the parameter set, lump targets and field names.
func (c Config) Validate() error {
	if err := c.Schedule.Params.Validate(); err != nil {
		return fmt.Errorf("config: schedule.params: %v: %w", err, ErrInvalidConfig)
	}
	if _, err := lump.ParseTargets(c.Lump.Targets...); err != nil {
		return fmt.Errorf("config: lump.targets: %v: %w", err, ErrInvalidConfig)
	}
	if c.Lump.OtherLabel == "" {
		return fmt.Errorf("config: lump.other_label is empty: %w", ErrInvalidConfig)
	}
	if _, err := lump.FromMaps(nil, c.Lump.Fields(), c.Lump.GroupBy...); err != nil {
		return fmt.Errorf("config: lump fields: %v: %w", err, ErrInvalidConfig)
	}

	return nil
}

// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmigest/schedule"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "lvmigest.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, schedule.Fundamental(), cfg.Schedule.Params)
	assert.Equal(t, []string{"flow"}, cfg.Lump.Targets)
	assert.Equal(t, "other", cfg.Lump.OtherLabel)
	assert.Equal(t, 100.0, cfg.Schedule.To)
}

func TestLoad_YAMLReplacesParams(t *testing.T) {
	p := writeFile(t, `
schedule:
  params: {a1: 0.03, alpha1: 0.1, a2: 0.07, alpha2: 0.12, mu2: 22, lambda2: 0.35, c: 0.002}
  step: 5
lump:
  threshold: 40
  targets: [in, emi]
  group_by: [period]
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 22.0, cfg.Schedule.Params[schedule.Mu2])
	assert.Equal(t, 5.0, cfg.Schedule.Step)
	assert.Equal(t, 100.0, cfg.Schedule.To, "unset keys keep defaults")
	assert.Equal(t, 40.0, cfg.Lump.Threshold)
	assert.Equal(t, []string{"in", "emi"}, cfg.Lump.Targets)
	assert.Equal(t, []string{"period"}, cfg.Lump.GroupBy)
}

func TestLoad_PartialParamsRejected(t *testing.T) {
	p := writeFile(t, "schedule:\n  params: {a1: 0.03}\n")
	_, err := Load(p)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeFile(t, "lump:\n  threshold: 40\n  other_label: rest\n")
	t.Setenv("LVMIGEST_THRESHOLD", "75")
	t.Setenv("LVMIGEST_TARGETS", "flow,out")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 75.0, cfg.Lump.Threshold)
	assert.Equal(t, []string{"flow", "out"}, cfg.Lump.Targets)
	assert.Equal(t, "rest", cfg.Lump.OtherLabel)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeFile(t, "lump: [not, a, map]\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeFile(t, "lump:\n  targets: [sideways]\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeFile(t, "lump:\n  orig_field: flow\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	t.Setenv("LVMIGEST_THRESHOLD", "lots")
	_, err = Load("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg struct {
		Port int `env:"LVMIGEST_TEST_PORT" envDefault:"123"`
	}
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 123, cfg.Port)
}

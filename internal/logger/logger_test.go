// SPDX-License-Identifier: MIT

package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_DebugWritesJSON(t *testing.T) {
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Setup(Config{Output: &buf, Debug: true})
	L().Debug("lump.done", "records", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2, "init line plus one event")

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	assert.Equal(t, "lump.done", rec["msg"])
	assert.Equal(t, float64(3), rec["records"])
	assert.Contains(t, rec, "source")
	assert.True(t, strings.HasSuffix(rec["time"].(string), "Z"), "time must be UTC")
}

func TestSetup_InfoSuppressesDebug(t *testing.T) {
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Setup(Config{Output: &buf})
	L().Debug("hidden")
	L().Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

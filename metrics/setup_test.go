package metrics

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExporter_WriteTextfile(t *testing.T) {
	e, err := Setup("mcp-config", "test")
	require.NoError(t, err)
	defer func() {
		_ = e.Shutdown(context.Background())
	}()

	e.Metrics.LoadFallback(ReasonMissing)
	e.Metrics.LoadFallback(ReasonInvalidPort)
	e.Metrics.SaveFailure()
	e.Metrics.Saved()

	path := filepath.Join(t.TempDir(), "mcp_config.prom")
	require.NoError(t, e.WriteTextfile(path))

	bytes, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(bytes)

	assert.Contains(t, out, "mcp_config_load_fallbacks_total")
	assert.Contains(t, out, `reason="missing"`)
	assert.Contains(t, out, `reason="invalid_port"`)
	assert.Contains(t, out, "mcp_config_save_failures_total")
	assert.Contains(t, out, "mcp_config_saves_total")
}

func TestNoop(t *testing.T) {
	m := Noop()
	assert.NotPanics(t, func() {
		m.LoadFallback(ReasonMalformed)
		m.SaveFailure()
		m.Saved()
	})
}

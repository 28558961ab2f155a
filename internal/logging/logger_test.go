package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromEnv(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, levelFromEnv("DEBUG"))
	assert.Equal(t, slog.LevelInfo, levelFromEnv("info"))
	assert.Equal(t, slog.LevelError, levelFromEnv("error"))
	assert.Equal(t, slog.LevelWarn, levelFromEnv(""))
	assert.Equal(t, slog.LevelWarn, levelFromEnv("verbose"))
}

func TestNewLogger(t *testing.T) {
	t.Setenv("CROWDTANK_LOG_LEVEL", "")

	t.Run("quiet by default", func(t *testing.T) {
		var buf bytes.Buffer
		log := newLogger(&buf, false)
		log.Info("deployment submitted")
		log.Debug("resolving contract factory")
		assert.Empty(t, buf.String())

		log.Warn("retrying")
		assert.Contains(t, buf.String(), "level=WARN msg=retrying")
		assert.NotContains(t, buf.String(), "time=")
	})

	t.Run("debug adds source", func(t *testing.T) {
		var buf bytes.Buffer
		log := newLogger(&buf, true)
		log.Debug("resolving contract factory", "contract", "CrowdTank")
		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "contract=CrowdTank")
		assert.Contains(t, out, "source=")
		assert.Contains(t, out, "logger_test.go")
	})
}

func TestShortPath(t *testing.T) {
	assert.Equal(t, "internal/usecase/deploy_contract.go",
		shortPath("/home/dev/src/crowdtank-deploy/internal/usecase/deploy_contract.go"))
	assert.Equal(t, "main.go", shortPath("/somewhere/else/main.go"))
}

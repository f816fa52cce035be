package initializer

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefaultLogger(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestNewLogger_JSON(t *testing.T) {
	restoreDefaultLogger(t)
	var buf bytes.Buffer
	logger := newLogger(&buf, &config.Log{Level: 0, Format: "json", TimeFormat: "15:04:05", Prefix: "[ledger]"})

	logger.Info("Account created", "owner", "alice")
	logger.Debug("hidden at info level")

	line := bytes.TrimSpace(buf.Bytes())
	require.True(t, json.Valid(line), "expected a single JSON record, got %q", line)
	assert.Contains(t, string(line), "Account created")
	assert.Contains(t, string(line), "alice")
	assert.NotContains(t, buf.String(), "hidden at info level")
	assert.Same(t, logger, slog.Default())
}

func TestNewLogger_DebugText(t *testing.T) {
	restoreDefaultLogger(t)
	var buf bytes.Buffer
	logger := newLogger(&buf, &config.Log{Level: -4, Format: "unknown", Prefix: "[ledger]"})

	logger.Debug("Deposit applied", "owner", "bob")

	assert.Contains(t, buf.String(), "Deposit applied")
	assert.Contains(t, buf.String(), "bob")
}

func TestInitializeDependencies(t *testing.T) {
	restoreDefaultLogger(t)

	deps, err := InitializeDependencies(&config.App{
		Env: "test",
		Log: &config.Log{Level: 8, Format: "text"},
	})
	require.NoError(t, err)
	require.NotNil(t, deps.Logger)
	require.NotNil(t, deps.Store)
	assert.Equal(t, 0, deps.Store.Len())

	_, err = deps.Store.Create("alice", money.MustParse("1.00"))
	require.NoError(t, err)
	assert.Equal(t, 1, deps.Store.Len())
}

func TestInitializeDependencies_MissingConfig(t *testing.T) {
	_, err := InitializeDependencies(nil)
	assert.Error(t, err)

	_, err = InitializeDependencies(&config.App{})
	assert.Error(t, err)
}

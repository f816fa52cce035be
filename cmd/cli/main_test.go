package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)

	exitVal := m.Run()
	os.Exit(exitVal)
}

func TestRun(t *testing.T) {
	t.Setenv("LOG_LEVEL", "8")
	var out bytes.Buffer
	in := strings.NewReader("create alice 100.00\ncreate bob 50.00\ntransfer alice bob 20.00\nlist\n")

	require.NoError(t, run(context.Background(), in, &out))
	assert.Equal(t,
		"created alice balance=100.00\n"+
			"created bob balance=50.00\n"+
			"alice balance=80.00\n"+
			"bob balance=70.00\n"+
			"alice balance=80.00\n"+
			"bob balance=70.00\n",
		out.String())
}

func TestRun_BadConfig(t *testing.T) {
	t.Setenv("LEDGER_MAX_DECIMALS", "many")

	err := run(context.Background(), strings.NewReader(""), io.Discard)
	assert.ErrorContains(t, err, "failed to load application configuration")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(strings.NewReader("")))
	assert.False(t, isTerminal(&bytes.Buffer{}))
}

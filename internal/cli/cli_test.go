package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_Paths(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"-c", "a.hcl", "-verify", "b.hcl", "dir"}, &out)
	require.NoError(t, err)
	require.False(t, exit)
	require.Equal(t, []string{"a.hcl", "b.hcl", "dir"}, cfg.ScenarioPaths)
	require.True(t, cfg.Verify)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, "info", cfg.LogLevel)

	cfg, _, err = Parse([]string{"-config", "x.hcl", "-log-format", "JSON", "-log-level", "Debug", "-metrics-addr", ":9090"}, &out)
	require.NoError(t, err)
	require.Equal(t, []string{"x.hcl"}, cfg.ScenarioPaths)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, ":9090", cfg.MetricsAddr)
}

func TestParse_HelpAndEmpty(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {}} {
		var out bytes.Buffer
		cfg, exit, err := Parse(args, &out)
		require.NoError(t, err)
		require.True(t, exit)
		require.Nil(t, cfg)
		require.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := [][]string{
		{"-log-format", "xml", "a.hcl"},
		{"-log-level", "trace", "a.hcl"},
		{"-unknown"},
	}
	for _, args := range cases {
		var out bytes.Buffer
		_, _, err := Parse(args, &out)
		var exitErr *ExitError
		require.True(t, errors.As(err, &exitErr), "args %v", args)
		require.Equal(t, 2, exitErr.Code)
	}
}

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, io.Discard, []string{"-h"})
	require.NoError(t, err)
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_Scenario(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
scenario "cli" {
  vertices    = 8
  loops       = 1
  parallelism = cpus
  verify      = true
}
`), 0o600))

	out := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), out, io.Discard, []string{"-c", path}))
	require.Contains(t, out.String(), "delta-stepping")
	require.Contains(t, out.String(), "cli: mean total distance")
}

func TestRun_BadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`scenario "x" {`), 0o600))

	err := run(context.Background(), io.Discard, io.Discard, []string{path})
	require.ErrorContains(t, err, "failed to load scenarios")
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunSelectedProbes(t *testing.T) {
	code, out, _ := runArgs(t, "-n", "500", "--no-color", "bind-left", "concat-stress")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "bind-left")
	assert.Contains(t, out, "concat-stress")
	assert.NotContains(t, out, "map-left")
	assert.Contains(t, out, "2 passed")
}

func TestRunAllProbes(t *testing.T) {
	code, out, _ := runArgs(t, "-n", "300", "--depth", "7", "--parallel", "2", "--no-color")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "9 passed")
}

func TestRunUnknownProbe(t *testing.T) {
	code, _, errOut := runArgs(t, "-n", "10", "bogus")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "unknown probe")
}

func TestRunBadFlag(t *testing.T) {
	code, _, _ := runArgs(t, "--frobnicate")
	assert.Equal(t, 2, code)
}

func TestRunInvalidFlagValue(t *testing.T) {
	code, _, errOut := runArgs(t, "--parallel", "0")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "parallel must be at least 1")
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
n: 1000
max_depth: 4
parallel: 1
probes:
  - name: fix-countdown
  - name: iterate-nth
    n: 50
`), 0o644))

	code, out, _ := runArgs(t, "--config", path, "--no-color")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "fix-countdown")
	assert.Contains(t, out, "iterate-nth")
	assert.Contains(t, out, "2 passed")
}

func TestRunConfigOverriddenByFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("n: 1000000000\nparallel: 1\n"), 0o644))

	code, out, _ := runArgs(t, "--config", path, "-n", "200", "--no-color", "map-left")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "200")
}

func TestRunMissingConfig(t *testing.T) {
	code, _, errOut := runArgs(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "invalid config")
}

func TestRunVerboseLogs(t *testing.T) {
	code, _, errOut := runArgs(t, "-v", "-n", "100", "--no-color", "suspend-chain")
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "probe passed")
	assert.Contains(t, errOut, "probe=suspend-chain")
}

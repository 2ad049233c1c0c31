package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/napdelay/cycles"
)

const table = `package: main
delays:
  - name: Hold
    value: 5
    unit: ms
  - name: Zero
    value: 0
    unit: s
`

func writeTable(t *testing.T, content string) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, "delays.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return dir, path
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestRoot_WritesFile(t *testing.T) {
	dir, path := writeTable(t, table)
	out := filepath.Join(dir, "delays_gen.go")

	require.NoError(t, execute(t, "-t", path, "-o", out))

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "// Code generated by delaygen. DO NOT EDIT.")
	// 80000 cycles at 16MHz
	assert.Contains(t, string(src), "const holdNaps uint32 = 2222\n")
	assert.Contains(t, string(src), "const holdLength time.Duration = 5000125\n")
	assert.Contains(t, string(src), "func Zero() {}\n")
}

func TestRoot_ClockFromEnv(t *testing.T) {
	dir, path := writeTable(t, table)
	out := filepath.Join(dir, "delays_gen.go")
	t.Setenv("DELAYGEN_CLOCK", "8000000")

	require.NoError(t, execute(t, "-t", path, "-o", out))

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "_ = config.ClockHz - 8000000\n")
}

func TestRoot_FlagBeatsEnv(t *testing.T) {
	dir, path := writeTable(t, table)
	out := filepath.Join(dir, "delays_gen.go")
	t.Setenv("DELAYGEN_CLOCK", "8000000")

	require.NoError(t, execute(t, "-t", path, "-o", out, "--clock", "20000000"))

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "_ = config.ClockHz - 20000000\n")
}

func TestRoot_StepwiseSolver(t *testing.T) {
	dir, path := writeTable(t, table)
	out := filepath.Join(dir, "delays_gen.go")

	require.NoError(t, execute(t, "-t", path, "-o", out, "--solver", "stepwise"))

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "Solved by the stepwise solver")
	assert.Contains(t, string(src), "const holdNaps uint32 = 1792\n")
}

func TestRoot_Failures(t *testing.T) {
	dir, path := writeTable(t, "package: main\ndelays:\n  - {name: Long, value: 300, unit: s}\n")
	out := filepath.Join(dir, "delays_gen.go")

	err := execute(t, "-t", path, "-o", out)
	assert.ErrorIs(t, err, cycles.ErrOverflow)
	assert.NoFileExists(t, out)

	err = execute(t, "-t", path, "-o", out, "--clock", "100000")
	assert.ErrorIs(t, err, cycles.ErrClockTooSlow)

	err = execute(t, "-t", filepath.Join(dir, "missing.yaml"), "-o", out)
	assert.Error(t, err)

	err = execute(t, "extra")
	assert.Error(t, err)
}

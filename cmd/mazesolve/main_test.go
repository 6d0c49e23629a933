package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/search"
)

func writeMaze(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSolve_Queue(t *testing.T) {
	path := writeMaze(t, "A.#\n..#\n#.B\n")

	out, _, err := execute("solve", path)
	require.NoError(t, err)
	assert.Equal(t, "States Explored: 5\nSolution:\nA █\n**█\n█*B\n", out)
}

func TestSolve_StackWithExtras(t *testing.T) {
	path := writeMaze(t, "A.#\n..#\n#.B\n")
	dir := t.TempDir()
	img := filepath.Join(dir, "maze.png")
	prom := filepath.Join(dir, "maze.prom")

	out, _, err := execute("solve", path,
		"--frontier", "stack",
		"--show-explored",
		"--image", img,
		"--metrics-file", prom,
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Solution:")

	f, err := os.Open(img)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 150, decoded.Bounds().Dx())

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), `labyrinth_solves_total{frontier="stack",outcome="solved"} 1`)
}

func TestSolve_NoSolution(t *testing.T) {
	path := writeMaze(t, "A#B\n")

	out, stderr, err := execute("solve", path)
	require.ErrorIs(t, err, search.ErrNoSolution)
	assert.Equal(t, "States Explored: 1\nNo solution.\nA█B\n", out)
	assert.Contains(t, stderr, "no solution")
}

func TestSolve_Errors(t *testing.T) {
	bad := writeMaze(t, "A..\n")

	_, stderr, err := execute("solve", bad)
	require.Error(t, err)
	assert.Contains(t, stderr, "no goal")

	_, _, err = execute("solve", bad, "--frontier", "heap")
	require.Error(t, err)

	_, _, err = execute("solve")
	require.Error(t, err)
}

func TestSolve_FlagOverridesBadEnv(t *testing.T) {
	path := writeMaze(t, "A.#\n..#\n#.B\n")
	t.Setenv("LABYRINTH_SEARCH_FRONTIER", "bogus")

	_, _, err := execute("solve", path)
	require.Error(t, err)

	out, _, err := execute("solve", path, "--frontier", "bfs")
	require.NoError(t, err)
	assert.Contains(t, out, "States Explored: 5\nSolution:\n")
}

func TestSolve_JSONLogs(t *testing.T) {
	path := writeMaze(t, "AB\n")

	_, stderr, err := execute("solve", path, "--log-level", "info", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"maze solved"`)
	assert.Contains(t, stderr, `"run_id"`)
}

func TestValidate(t *testing.T) {
	path := writeMaze(t, "A.#\n..B\n")

	out, _, err := execute("validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2x3, 5 open cells, start (0,0), goal (1,2)")
}

func TestVersion(t *testing.T) {
	out, _, err := execute("version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/internal/config"
	"github.com/katalvlaran/percolate/internal/report"
	"github.com/katalvlaran/percolate/reservoir"
	"github.com/katalvlaran/percolate/unionfind"
)

// run executes the command tree with the given stdin and arguments.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

const tinyUF = `10
4 3
3 8
6 5
9 4
2 1
8 9
5 0
7 2
6 1
1 0
6 7
`

const tinyUFOut = `4 3
3 8
6 5
9 4
2 1
5 0
7 2
6 1
2 components
`

func TestUF_AllKinds(t *testing.T) {
	for _, k := range unionfind.Kinds() {
		t.Run(string(k), func(t *testing.T) {
			out, _, err := run(t, tinyUF, "uf", "--kind", string(k))
			require.NoError(t, err)
			assert.Equal(t, tinyUFOut, out)
		})
	}
}

func TestUF_BadInput(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		code  int
	}{
		{"empty", "", nil, ExitUsage},
		{"not a number", "ten", nil, ExitUsage},
		{"zero elements", "0", nil, ExitUsage},
		{"unpaired", "3\n0 1\n2", nil, ExitUsage},
		{"out of range", "3\n0 3\n", nil, ExitUsage},
		{"unknown kind", "3\n", []string{"--kind", "rank"}, ExitUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.stdin, append([]string{"uf"}, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, tt.code, ExitCode(err))
		})
	}
}

func TestUF_OutOfRangeIsInvalidArgument(t *testing.T) {
	_, _, err := run(t, "5\n-1 2\n", "uf")
	assert.ErrorIs(t, err, unionfind.ErrInvalidArgument)
}

func TestStats_JSONPositional(t *testing.T) {
	out, _, err := run(t, "", "stats", "1", "3", "--seed", "5", "--format", "json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1.0, got["n"])
	assert.Equal(t, 3.0, got["trials"])
	assert.Equal(t, 1.0, got["mean"])
}

func TestStats_TextFlags(t *testing.T) {
	out, _, err := run(t, "", "stats", "--n", "8", "--trials", "6", "--seed", "3", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "8×8 grid (64 sites) · 6 trials")
	assert.Contains(t, out, "mean")
	assert.Contains(t, out, "95% confidence interval = [")
}

func TestStats_Deterministic(t *testing.T) {
	a, _, err := run(t, "", "stats", "12", "10", "--seed", "9", "--format", "toml")
	require.NoError(t, err)
	b, _, err := run(t, "", "stats", "12", "10", "--seed", "9", "--format", "toml", "--workers", "4")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestStats_Verbose(t *testing.T) {
	_, stderr, err := run(t, "", "-v", "stats", "3", "2", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "percolate: trial 0: threshold")
	assert.Contains(t, stderr, "percolate: trial 1: threshold")
}

func TestVerbose_FromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	require.NoError(t, os.WriteFile(path, []byte("verbose = true\nn = 2\ntrials = 1\nseed = 3\n"), 0o644))

	_, stderr, err := run(t, "", "--config", path, "stats")
	require.NoError(t, err)
	assert.Contains(t, stderr, "percolate: trial 0: threshold")
}

func TestStats_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	require.NoError(t, os.WriteFile(path, []byte("n = 1\ntrials = 2\nseed = 4\nformat = \"json\"\n"), 0o644))

	out, _, err := run(t, "", "--config", path, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, `"trials": 2`)
}

func TestStats_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"one positional", []string{"stats", "10"}, ErrUsage},
		{"bad N", []string{"stats", "x", "10"}, ErrUsage},
		{"zero trials", []string{"stats", "10", "0"}, config.ErrInvalidConfig},
		{"negative n", []string{"stats", "--n", "-2"}, config.ErrInvalidConfig},
		{"bad format", []string{"stats", "1", "1", "--format", "xml", "--seed", "1"}, report.ErrFormat},
		{"unknown flag", []string{"stats", "--bogus"}, ErrUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "", tt.args...)
			assert.ErrorIs(t, err, tt.is)
			assert.Equal(t, ExitUsage, ExitCode(err))
		})
	}
}

func TestSimulate(t *testing.T) {
	out, _, err := run(t, "", "simulate", "1", "--seed", "2")
	require.NoError(t, err)
	assert.Equal(t, "o\n1/1 sites open, threshold = 1.000000\n", out)

	out, _, err = run(t, "", "simulate", "6", "--seed", "2", "--grid=false")
	require.NoError(t, err)
	assert.Contains(t, out, "/36 sites open, threshold = ")
	assert.NotContains(t, out, "#")

	_, _, err = run(t, "", "simulate", "0", "--seed", "2")
	assert.ErrorIs(t, err, unionfind.ErrInvalidArgument)
}

func TestRandomWord(t *testing.T) {
	out, _, err := run(t, "only\n", "randomword", "--seed", "1")
	require.NoError(t, err)
	assert.Equal(t, "only\n", out)

	out, _, err = run(t, "heads tails\nedge", "randomword", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, []string{"heads\n", "tails\n", "edge\n"}, out)

	_, _, err = run(t, "  \n", "randomword", "--seed", "1")
	assert.ErrorIs(t, err, reservoir.ErrEmpty)
	assert.Equal(t, ExitNoInput, ExitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("boom")))
	assert.Equal(t, ExitUsage, ExitCode(unionfind.ErrInvalidArgument))
}

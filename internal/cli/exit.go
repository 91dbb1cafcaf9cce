package cli

import (
	"errors"

	"github.com/katalvlaran/percolate/internal/config"
	"github.com/katalvlaran/percolate/internal/report"
	"github.com/katalvlaran/percolate/reservoir"
	"github.com/katalvlaran/percolate/unionfind"
)

// ErrUsage indicates malformed command-line or stdin input.
var ErrUsage = errors.New("usage")

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 64 // bad arguments, flags or input values
	ExitNoInput = 65 // required input was empty
)

// ExitCode maps an error returned by the command tree to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage),
		errors.Is(err, unionfind.ErrInvalidArgument),
		errors.Is(err, unionfind.ErrUnknownKind),
		errors.Is(err, config.ErrInvalidConfig),
		errors.Is(err, report.ErrFormat):
		return ExitUsage
	case errors.Is(err, reservoir.ErrEmpty):
		return ExitNoInput
	default:
		return ExitFailure
	}
}

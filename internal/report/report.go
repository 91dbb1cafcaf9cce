// Package report renders Monte Carlo results for humans and machines.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/percolate/montecarlo"
)

// ErrFormat indicates an unsupported output format.
var ErrFormat = errors.New("report: unknown format")

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTOML = "toml"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

// summary is the machine-readable form of a result. Non-finite statistics
// (the stddev of a single trial) are omitted because neither JSON nor a
// portable TOML reader accepts NaN.
type summary struct {
	N            int       `json:"n" toml:"n"`
	Trials       int       `json:"trials" toml:"trials"`
	Sites        int       `json:"sites" toml:"sites"`
	Mean         float64   `json:"mean" toml:"mean"`
	StdDev       *float64  `json:"stddev,omitempty" toml:"stddev,omitempty"`
	Confidence   float64   `json:"confidence" toml:"confidence"`
	ConfidenceLo *float64  `json:"confidence_lo,omitempty" toml:"confidence_lo,omitempty"`
	ConfidenceHi *float64  `json:"confidence_hi,omitempty" toml:"confidence_hi,omitempty"`
	Thresholds   []float64 `json:"thresholds" toml:"thresholds"`
}

// Write renders res to w in the given format.
//
// Errors: ErrFormat for an unknown format; otherwise any write or encode error.
func Write(w io.Writer, format string, res *montecarlo.Result) error {
	switch format {
	case FormatText:
		return writeText(w, res)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toSummary(res))
	case FormatTOML:
		return toml.NewEncoder(w).Encode(toSummary(res))
	default:
		return fmt.Errorf("%w: %q (want %s, %s or %s)", ErrFormat, format, FormatText, FormatJSON, FormatTOML)
	}
}

func writeText(w io.Writer, res *montecarlo.Result) error {
	header := fmt.Sprintf("%d×%d grid (%s sites) · %s trials",
		res.N, res.N, humanize.Comma(int64(res.N*res.N)), humanize.Comma(int64(res.Trials)))
	interval := fmt.Sprintf("%.4g%% confidence interval", res.Confidence*100)

	_, err := fmt.Fprintf(w, "%s\n%-23s = %f\n%-23s = %f\n%-23s = [%f, %f]\n",
		headerStyle.Render(header),
		"mean", res.Mean,
		"stddev", res.StdDev,
		interval, res.ConfidenceLo, res.ConfidenceHi,
	)
	return err
}

func toSummary(res *montecarlo.Result) summary {
	return summary{
		N:            res.N,
		Trials:       res.Trials,
		Sites:        res.N * res.N,
		Mean:         res.Mean,
		StdDev:       finite(res.StdDev),
		Confidence:   res.Confidence,
		ConfidenceLo: finite(res.ConfidenceLo),
		ConfidenceHi: finite(res.ConfidenceHi),
		Thresholds:   res.Thresholds,
	}
}

func finite(x float64) *float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	return &x
}

package report

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/montecarlo"
)

func sample() *montecarlo.Result {
	return &montecarlo.Result{
		N:            200,
		Trials:       3,
		Thresholds:   []float64{0.5, 0.6, 0.7},
		Mean:         0.6,
		StdDev:       0.1,
		Confidence:   0.95,
		ConfidenceLo: 0.48684,
		ConfidenceHi: 0.71316,
	}
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, sample()))

	out := buf.String()
	assert.Contains(t, out, "200×200 grid (40,000 sites) · 3 trials")
	assert.Contains(t, out, "mean                    = 0.600000\n")
	assert.Contains(t, out, "stddev                  = 0.100000\n")
	assert.Contains(t, out, "95% confidence interval = [0.486840, 0.713160]\n")
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sample()))

	var got summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 40000, got.Sites)
	assert.Equal(t, 0.6, got.Mean)
	require.NotNil(t, got.StdDev)
	assert.Equal(t, 0.1, *got.StdDev)
	assert.Equal(t, []float64{0.5, 0.6, 0.7}, got.Thresholds)
}

func TestWrite_TOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatTOML, sample()))

	var got summary
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 200, got.N)
	assert.Equal(t, 3, got.Trials)
	require.NotNil(t, got.ConfidenceHi)
	assert.InDelta(t, 0.71316, *got.ConfidenceHi, 1e-12)
}

// TestWrite_NaNOmitted: a single trial has an undefined stddev, which must
// not break the JSON encoder.
func TestWrite_NaNOmitted(t *testing.T) {
	res := sample()
	res.Trials = 1
	res.Thresholds = []float64{0.6}
	res.StdDev = math.NaN()
	res.ConfidenceLo = math.NaN()
	res.ConfidenceHi = math.NaN()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, res))
	assert.NotContains(t, buf.String(), "stddev")

	buf.Reset()
	require.NoError(t, Write(&buf, FormatText, res))
	assert.Contains(t, buf.String(), "stddev                  = NaN")
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "yaml", sample())
	assert.ErrorIs(t, err, ErrFormat)
}

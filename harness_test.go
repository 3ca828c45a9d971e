package affinity

import (
	"encoding/json"
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHarnessRun(t *testing.T) {
	h := &Harness{
		Device: NewDevice(BackendSerial, 0),
		Trials: 3,
		Rng:    rand.New(rand.NewSource(1)),
	}

	results, err := h.Run(Variants()[2], []int{4, 16})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "broadcast", results[0].Variant)
	assert.Equal(t, "cpu", results[0].Backend)
	assert.Equal(t, 4, results[0].Size)
	assert.Equal(t, 3, results[0].Stats.N)
	assert.Equal(t, 16, results[1].Size)
	assert.Greater(t, int64(results[1].Stats.Mean), int64(0))
}

func TestHarnessRunAll(t *testing.T) {
	h := &Harness{Trials: 1, Rng: rand.New(rand.NewSource(2))}

	results, err := h.RunAll(Variants(), []int{8})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "scalar", results[0].Variant)
	assert.Equal(t, "rows", results[1].Variant)
	assert.Equal(t, "broadcast", results[2].Variant)
}

func TestHarnessLogsSession(t *testing.T) {
	logger := NewBenchmarkLogger(t.TempDir())
	require.NoError(t, logger.StartSession("test"))

	h := &Harness{
		Trials: 2,
		Rng:    rand.New(rand.NewSource(3)),
		Logger: logger,
	}
	_, err := h.Run(Variants()[0], []int{4, 8})
	require.NoError(t, err)

	data, err := os.ReadFile(logger.SessionFile())
	require.NoError(t, err)

	var logged []BenchmarkResult
	require.NoError(t, json.Unmarshal(data, &logged))
	require.Len(t, logged, 2)
	assert.Equal(t, "scalar", logged[0].Variant)
	assert.Equal(t, 4, logged[0].Size)
	assert.Equal(t, 2, logged[0].Trials)
	assert.False(t, logged[0].Timestamp.IsZero())
}

func TestHarnessDefaults(t *testing.T) {
	// Zero-value trials and nil device/rng fall back to usable defaults.
	h := &Harness{}
	results, err := h.Run(Variants()[1], []int{2})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 10, results[0].Stats.N)
	assert.Equal(t, "accelerator", results[0].Backend)
}

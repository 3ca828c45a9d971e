package affinity

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomBuffer(n int, seed int64) []float32 {
	rng := rand.New(rand.NewSource(seed))
	buf := make([]float32, n)
	for i := range buf {
		buf[i] = float32(rng.NormFloat64())
	}
	return buf
}

func testDevices() []*Device {
	return []*Device{
		NewDevice(BackendSerial, 0),
		NewDevice(BackendParallel, 0),
		NewDevice(BackendParallel, 3),
	}
}

func TestRowDiff(t *testing.T) {
	pts := randomBuffer(2*striped, 1)
	for _, dev := range testDevices() {
		dst := make([]float32, len(pts))
		dev.rowDiff(dst, pts, 0.5, -1.5)
		for k := 0; k < len(pts)/2; k++ {
			assert.Equal(t, pts[2*k]-0.5, dst[2*k])
			assert.Equal(t, pts[2*k+1]+1.5, dst[2*k+1])
		}
	}
}

// striped is sized to span several scheduling blocks on the parallel
// backend so block boundaries are exercised.
const striped = blockSize*2 + 17

func TestPairwiseDiff(t *testing.T) {
	const n = 37
	pts := randomBuffer(2*n, 2)
	for _, dev := range testDevices() {
		dst := make([]float32, n*n*2)
		dev.pairwiseDiff(dst, pts)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				k := (i*n + j) * 2
				assert.Equal(t, pts[2*j]-pts[2*i], dst[k])
				assert.Equal(t, pts[2*j+1]-pts[2*i+1], dst[k+1])
			}
		}
	}
}

func TestSquareInPlace(t *testing.T) {
	src := randomBuffer(striped, 3)
	for _, dev := range testDevices() {
		x := append([]float32(nil), src...)
		dev.squareInPlace(x)
		for i := range x {
			assert.Equal(t, src[i]*src[i], x[i])
		}
	}
}

func TestSumCoordPairs(t *testing.T) {
	src := randomBuffer(2*striped, 4)
	for _, dev := range testDevices() {
		dst := make([]float32, striped)
		dev.sumCoordPairs(dst, src)
		for k := range dst {
			assert.Equal(t, src[2*k]+src[2*k+1], dst[k])
		}
	}
}

func TestSqrtExpScale(t *testing.T) {
	src := randomBuffer(striped, 5)
	for i := range src {
		src[i] = src[i] * src[i] // sqrt wants non-negative input here
	}

	for _, dev := range testDevices() {
		x := append([]float32(nil), src...)
		dev.sqrtInPlace(x)
		dev.scaleInPlace(DecayRate, x)
		dev.expInPlace(x)
		for i := range x {
			want := math32.Exp(DecayRate * math32.Sqrt(src[i]))
			assert.Equal(t, want, x[i])
		}
	}
}

func TestKernelsEmpty(t *testing.T) {
	dev := NewDevice(BackendParallel, 0)
	require.NotPanics(t, func() {
		dev.squareInPlace(nil)
		dev.sqrtInPlace(nil)
		dev.expInPlace(nil)
		dev.scaleInPlace(DecayRate, nil)
		dev.sumCoordPairs(nil, nil)
		dev.rowDiff(nil, nil, 0, 0)
		dev.pairwiseDiff(nil, nil)
	})
}

package affinity

import (
	"github.com/chewxy/math32"
)

// Scalar computes the affinity matrix with the doubly nested reference
// loop on the default device. See Device.Scalar.
func Scalar(p *Points) (*Matrix, error) {
	return DefaultDevice().Scalar(p)
}

// Scalar computes the affinity matrix entry by entry: for every pair
// (i,j) it takes the Euclidean distance directly and applies the
// exponential transform. All N² entries are computed; symmetry is
// deliberately not exploited. This variant is the correctness oracle
// for Rows and Broadcast, which must reproduce it bit for bit.
//
// It always runs on the calling goroutine regardless of the device's
// backend.
func (d *Device) Scalar(p *Points) (*Matrix, error) {
	if err := checkPoints("Scalar", p); err != nil {
		return nil, err
	}
	n := p.n
	m := newMatrix(n)
	for i := 0; i < n; i++ {
		xi, yi := p.At(i)
		row := m.Row(i)
		for j := 0; j < n; j++ {
			dx := p.xy[j*PointDim] - xi
			dy := p.xy[j*PointDim+1] - yi
			// The explicit conversions force each square to round to
			// float32 before the add, as the bulk kernels do when they
			// store the squares. Without them the compiler may fuse a
			// multiply into the add as an FMA on arm64/ppc64/s390x and
			// skip that rounding, drifting 1 ULP from Rows/Broadcast.
			dist := math32.Sqrt(float32(dx*dx) + float32(dy*dy))
			row[j] = math32.Exp(DecayRate * dist)
		}
	}
	return m, nil
}

package affinity

import (
	"github.com/chewxy/math32"
)

// Bulk kernels over flat float32 buffers. Every kernel mutates in
// place (or writes a disjoint destination) and is expressed as an
// element-wise body over an index range, so the device is free to run
// it serially or across the worker grid without changing any result.
//
// The affinity variants are bit-identical because each matrix entry
// passes through the exact same arithmetic: coordinate difference,
// square, sum of the two squares, math32.Sqrt, multiply by DecayRate,
// math32.Exp. The kernels below are the only place that arithmetic
// lives for the vectorized paths.

// rowDiff writes pts - (x,y) into dst, one 2-vector per point.
// dst must hold len(pts) values.
func (d *Device) rowDiff(dst, pts []float32, x, y float32) {
	n := len(pts) / PointDim
	d.parallelFor(n, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			dst[k*PointDim] = pts[k*PointDim] - x
			dst[k*PointDim+1] = pts[k*PointDim+1] - y
		}
	})
}

// pairwiseDiff materializes the N×N×2 broadcast difference tensor:
// dst[(i*n+j)*2+c] = pts[j*2+c] - pts[i*2+c]. The left operand is the
// point set replicated across rows, the right the set replicated
// across columns. dst must hold n*n*2 values.
func (d *Device) pairwiseDiff(dst, pts []float32) {
	n := len(pts) / PointDim
	d.parallelFor(n*n, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			i := k / n
			j := k % n
			dst[k*PointDim] = pts[j*PointDim] - pts[i*PointDim]
			dst[k*PointDim+1] = pts[j*PointDim+1] - pts[i*PointDim+1]
		}
	})
}

// squareInPlace replaces every element with its square
func (d *Device) squareInPlace(x []float32) {
	d.parallelFor(len(x), func(lo, hi int) {
		for k := lo; k < hi; k++ {
			x[k] = x[k] * x[k]
		}
	})
}

// sumCoordPairs reduces consecutive coordinate pairs:
// dst[k] = src[2k] + src[2k+1]. dst must hold len(src)/2 values.
func (d *Device) sumCoordPairs(dst, src []float32) {
	d.parallelFor(len(dst), func(lo, hi int) {
		for k := lo; k < hi; k++ {
			dst[k] = src[k*PointDim] + src[k*PointDim+1]
		}
	})
}

// sqrtInPlace replaces every element with its square root
func (d *Device) sqrtInPlace(x []float32) {
	d.parallelFor(len(x), func(lo, hi int) {
		for k := lo; k < hi; k++ {
			x[k] = math32.Sqrt(x[k])
		}
	})
}

// scaleInPlace multiplies every element by alpha
func (d *Device) scaleInPlace(alpha float32, x []float32) {
	d.parallelFor(len(x), func(lo, hi int) {
		for k := lo; k < hi; k++ {
			x[k] *= alpha
		}
	})
}

// expInPlace replaces every element with its exponential
func (d *Device) expInPlace(x []float32) {
	d.parallelFor(len(x), func(lo, hi int) {
		for k := lo; k < hi; k++ {
			x[k] = math32.Exp(x[k])
		}
	})
}

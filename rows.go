package affinity

// Rows computes the affinity matrix row by row on the default device.
// See Device.Rows.
func Rows(p *Points) (*Matrix, error) {
	return DefaultDevice().Rows(p)
}

// Rows computes the affinity matrix with a single loop over rows. For
// each point i the full row of differences against the whole set is
// produced by one bulk subtraction, then squared, pair-summed, rooted,
// scaled and exponentiated in place, writing row i of the result in
// one pass. The per-element arithmetic is identical to Scalar, so the
// output is bit-identical; only the inner loop is replaced by bulk
// kernels.
//
// The difference scratch is reused across rows. Auxiliary memory is
// O(N) on top of the O(N²) result.
func (d *Device) Rows(p *Points) (*Matrix, error) {
	if err := checkPoints("Rows", p); err != nil {
		return nil, err
	}
	n := p.n
	m := newMatrix(n)
	if n == 0 {
		return m, nil
	}

	diff := make([]float32, n*PointDim)
	for i := 0; i < n; i++ {
		xi, yi := p.At(i)
		row := m.Row(i)

		d.rowDiff(diff, p.xy, xi, yi)
		d.squareInPlace(diff)
		d.sumCoordPairs(row, diff)
		d.sqrtInPlace(row)
		d.scaleInPlace(DecayRate, row)
		d.expInPlace(row)
	}
	return m, nil
}

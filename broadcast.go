package affinity

// Broadcast computes the affinity matrix with no explicit loops on the
// default device. See Device.Broadcast.
func Broadcast(p *Points) (*Matrix, error) {
	return DefaultDevice().Broadcast(p)
}

// Broadcast computes the affinity matrix without iterating over points
// at all. The point set is broadcast against itself into an N×N×2
// difference tensor: the set replicated down rows minus the set
// replicated across columns. The five bulk steps (square, pair-sum,
// sqrt, scale, exp) then each run once over the whole buffer.
// This is the performance-critical variant: every step is a single
// kernel launch the device can spread across its full worker grid.
//
// The per-element arithmetic is identical to Scalar and Rows, so the
// output is bit-identical on the same device. The difference tensor
// costs O(N²) auxiliary memory beyond the result; callers at very
// large N should budget for roughly three times the output size.
func (d *Device) Broadcast(p *Points) (*Matrix, error) {
	if err := checkPoints("Broadcast", p); err != nil {
		return nil, err
	}
	n := p.n
	m := newMatrix(n)
	if n == 0 {
		return m, nil
	}

	diff := make([]float32, n*n*PointDim)
	d.pairwiseDiff(diff, p.xy)
	d.squareInPlace(diff)
	d.sumCoordPairs(m.data, diff)
	d.sqrtInPlace(m.data)
	d.scaleInPlace(DecayRate, m.data)
	d.expInPlace(m.data)
	return m, nil
}

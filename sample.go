package affinity

import (
	"math/rand"
	"time"
)

// SampleNormal draws n points i.i.d. from the standard bivariate
// normal distribution. Pass a seeded rng for reproducible inputs; a
// nil rng uses a time-seeded source.
func SampleNormal(n int, rng *rand.Rand) (*Points, error) {
	p, err := NewPoints(n)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	for i := 0; i < n; i++ {
		p.Set(i, float32(rng.NormFloat64()), float32(rng.NormFloat64()))
	}
	return p, nil
}

package affinity

import (
	"fmt"
	"math"
	"time"
)

// Timings is a collection of elapsed-time samples from repeated runs
// of one computation at one problem size.
type Timings []time.Duration

// Stats summarizes a set of timing samples
type Stats struct {
	N    int           // Number of samples
	Mean time.Duration // Arithmetic mean
	Std  time.Duration // Sample standard deviation (0 for N < 2)
}

// Summarize reduces the samples to a mean and standard deviation
func (t Timings) Summarize() Stats {
	s := Stats{N: len(t)}
	if s.N == 0 {
		return s
	}

	var sum float64
	for _, d := range t {
		sum += float64(d)
	}
	mean := sum / float64(s.N)
	s.Mean = time.Duration(mean)

	if s.N < 2 {
		return s
	}
	var sq float64
	for _, d := range t {
		diff := float64(d) - mean
		sq += diff * diff
	}
	s.Std = time.Duration(math.Sqrt(sq / float64(s.N-1)))
	return s
}

// String formats the statistics as "mean ± std unit", auto-scaling the
// unit to seconds, milliseconds or microseconds by the magnitude of
// the mean.
func (s Stats) String() string {
	unit, div := s.unit()
	return fmt.Sprintf("%.3f ± %.3f %s",
		float64(s.Mean)/div, float64(s.Std)/div, unit)
}

func (s Stats) unit() (string, float64) {
	switch {
	case s.Mean >= time.Second:
		return "s", float64(time.Second)
	case s.Mean >= time.Millisecond:
		return "ms", float64(time.Millisecond)
	default:
		return "µs", float64(time.Microsecond)
	}
}

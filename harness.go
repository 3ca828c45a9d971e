package affinity

import (
	"fmt"
	"math/rand"
	"time"
)

// BenchFunc is one affinity computation strategy bound to a device.
type BenchFunc func(d *Device, p *Points) (*Matrix, error)

// Variant names a computation strategy for harness runs and reports
type Variant struct {
	Name string
	Fn   BenchFunc
}

// Variants returns the three strategies in oracle-first order
func Variants() []Variant {
	return []Variant{
		{Name: "scalar", Fn: (*Device).Scalar},
		{Name: "rows", Fn: (*Device).Rows},
		{Name: "broadcast", Fn: (*Device).Broadcast},
	}
}

// SizeResult is the timing summary for one variant at one problem size
type SizeResult struct {
	Variant string
	Backend string
	Size    int
	Stats   Stats
}

// Harness repeatedly invokes computation variants over generated
// inputs and collects elapsed-time statistics per problem size.
type Harness struct {
	Device *Device          // nil selects DefaultDevice
	Trials int              // timed runs per size; values < 1 default to 10
	Rng    *rand.Rand       // input sampling source; nil is time-seeded
	Logger *BenchmarkLogger // optional JSON session log
}

// Run measures one variant across the given problem sizes. Each size
// gets a fresh sampled input, one discarded warm-up run, then Trials
// timed runs. The input is sampled once per size so every trial sees
// identical data.
func (h *Harness) Run(v Variant, sizes []int) ([]SizeResult, error) {
	dev := h.Device
	if dev == nil {
		dev = DefaultDevice()
	}
	trials := h.Trials
	if trials < 1 {
		trials = 10
	}

	results := make([]SizeResult, 0, len(sizes))
	for _, n := range sizes {
		p, err := SampleNormal(n, h.Rng)
		if err != nil {
			return nil, err
		}

		// Warm-up run, excluded from the samples
		if _, err := v.Fn(dev, p); err != nil {
			return nil, NewExecutionError("Harness.Run",
				fmt.Sprintf("%s failed at size %d", v.Name, n), err)
		}

		samples := make(Timings, trials)
		for t := 0; t < trials; t++ {
			start := time.Now()
			if _, err := v.Fn(dev, p); err != nil {
				return nil, NewExecutionError("Harness.Run",
					fmt.Sprintf("%s failed at size %d", v.Name, n), err)
			}
			samples[t] = time.Since(start)
		}

		stats := samples.Summarize()
		results = append(results, SizeResult{
			Variant: v.Name,
			Backend: dev.Backend.String(),
			Size:    n,
			Stats:   stats,
		})

		if h.Logger != nil {
			h.Logger.Log(BenchmarkResult{
				Name:    fmt.Sprintf("%s/%s/N_%d", v.Name, dev.Backend, n),
				Variant: v.Name,
				Backend: dev.Backend.String(),
				Size:    n,
				Trials:  trials,
				MeanNs:  float64(stats.Mean),
				StdNs:   float64(stats.Std),
			})
		}
	}
	return results, nil
}

// RunAll measures every variant in vs across the given sizes
func (h *Harness) RunAll(vs []Variant, sizes []int) ([]SizeResult, error) {
	var all []SizeResult
	for _, v := range vs {
		results, err := h.Run(v, sizes)
		if err != nil {
			return nil, err
		}
		all = append(all, results...)
	}
	return all, nil
}

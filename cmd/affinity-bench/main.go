// Copyright ©2025 The Affinity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command affinity-bench times the three affinity-matrix strategies
// across problem sizes and backends, and verifies that they agree
// bit for bit before trusting any of the timings.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/affinitykit/affinity"
)

// Config holds harness configuration. Environment variables use the
// AFFINITY prefix (AFFINITY_SIZES, AFFINITY_TRIALS, ...); flags
// override the environment.
type Config struct {
	Sizes   string `envconfig:"SIZES" default:"64,128,256,512,1024"`
	Trials  int    `envconfig:"TRIALS" default:"10"`
	Backend string `envconfig:"BACKEND" default:"accelerator"`
	Seed    int64  `envconfig:"SEED" default:"1"`
	LogDir  string `envconfig:"LOG_DIR" default:""`
	Verify  bool   `envconfig:"VERIFY" default:"true"`
}

func main() {
	// A .env file is optional; absence is not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("affinity", &cfg); err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}

	flag.StringVar(&cfg.Sizes, "sizes", cfg.Sizes, "Comma-separated problem sizes")
	flag.IntVar(&cfg.Trials, "trials", cfg.Trials, "Timed runs per size")
	flag.StringVar(&cfg.Backend, "backend", cfg.Backend, "Execution backend: cpu or accelerator")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Input sampling seed")
	flag.StringVar(&cfg.LogDir, "logdir", cfg.LogDir, "Directory for JSON session logs (empty disables)")
	flag.BoolVar(&cfg.Verify, "verify", cfg.Verify, "Check variant equivalence before timing")
	flag.Parse()

	sizes, err := parseSizes(cfg.Sizes)
	if err != nil {
		log.Fatalf("Invalid -sizes: %v", err)
	}

	backend, err := affinity.ParseBackend(cfg.Backend)
	if err != nil {
		log.Fatalf("Invalid -backend %q: %v", cfg.Backend, err)
	}
	dev := affinity.NewDevice(backend, 0)

	fmt.Println("=== Affinity Variant Comparison ===")
	if v, _ := affinity.Version(); v != "" {
		fmt.Printf("affinity %s\n", v)
	}
	fmt.Println(affinity.CPUInfo())
	fmt.Printf("Device: %s (%d workers), trials: %d, seed: %d\n\n",
		dev.Name, dev.Workers, cfg.Trials, cfg.Seed)

	if cfg.Verify {
		if err := verify(dev, cfg.Seed); err != nil {
			fmt.Fprintf(os.Stderr, "VERIFY FAILED: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Verify: all variants bit-identical")
		fmt.Println()
	}

	var logger *affinity.BenchmarkLogger
	if cfg.LogDir != "" {
		logger = affinity.NewBenchmarkLogger(cfg.LogDir)
		if err := logger.StartSession("affinity_bench"); err != nil {
			log.Fatalf("Failed to start log session: %v", err)
		}
	}

	h := &affinity.Harness{
		Device: dev,
		Trials: cfg.Trials,
		Rng:    rand.New(rand.NewSource(cfg.Seed)),
		Logger: logger,
	}

	results, err := h.RunAll(affinity.Variants(), sizes)
	if err != nil {
		log.Fatalf("Benchmark failed: %v", err)
	}

	printSummary(results)

	if logger != nil {
		fmt.Printf("\nSession log: %s\n", logger.SessionFile())
	}
}

// verify checks the numeric-equivalence contract at a spread of sizes
// before any timing is reported.
func verify(dev *affinity.Device, seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	for _, n := range []int{0, 1, 2, 10, 100} {
		p, err := affinity.SampleNormal(n, rng)
		if err != nil {
			return err
		}
		want, err := dev.Scalar(p)
		if err != nil {
			return err
		}
		for _, v := range affinity.Variants()[1:] {
			got, err := v.Fn(dev, p)
			if err != nil {
				return err
			}
			for i, w := range want.Data() {
				if g := got.Data()[i]; g != w {
					return fmt.Errorf("%s disagrees with scalar at size %d index %d: %v != %v",
						v.Name, n, i, g, w)
				}
			}
		}
	}
	return nil
}

func parseSizes(csv string) ([]int, error) {
	parts := strings.Split(csv, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("size must be non-negative, got %d", n)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func printSummary(results []affinity.SizeResult) {
	// Index scalar means for speedup factors
	scalarMean := make(map[int]float64)
	for _, r := range results {
		if r.Variant == "scalar" {
			scalarMean[r.Size] = float64(r.Stats.Mean)
		}
	}

	fmt.Printf("%-12s %-12s %8s %24s %10s\n",
		"Variant", "Backend", "N", "Time", "Speedup")
	fmt.Println(strings.Repeat("-", 70))

	for _, r := range results {
		speedup := "-"
		if base, ok := scalarMean[r.Size]; ok && r.Stats.Mean > 0 {
			speedup = fmt.Sprintf("%.2fx", base/float64(r.Stats.Mean))
		}
		fmt.Printf("%-12s %-12s %8d %24s %10s\n",
			r.Variant, r.Backend, r.Size, r.Stats.String(), speedup)
	}
}

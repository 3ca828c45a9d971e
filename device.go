package affinity

import (
	"runtime"
	"sync"
)

// Backend selects where bulk kernels execute. It changes scheduling
// only, never the per-element arithmetic, so results stay reproducible
// across backends at the same precision.
type Backend int

const (
	// BackendSerial runs every bulk kernel on the calling goroutine.
	BackendSerial Backend = iota
	// BackendParallel partitions bulk kernels into blocks and executes
	// them on a goroutine grid, emulating an accelerator on the CPU.
	BackendParallel
)

// String returns the backend name
func (b Backend) String() string {
	switch b {
	case BackendSerial:
		return "cpu"
	case BackendParallel:
		return "accelerator"
	default:
		return "unknown"
	}
}

// ParseBackend maps a backend name to its selector.
// Accepted names are "cpu", "serial", "accelerator" and "parallel".
func ParseBackend(name string) (Backend, error) {
	switch name {
	case "cpu", "serial":
		return BackendSerial, nil
	case "accelerator", "parallel":
		return BackendParallel, nil
	default:
		return 0, ErrInvalidBackend
	}
}

// Device represents a compute device for bulk kernels. The three
// affinity variants are defined as methods on Device; they call the
// same kernels regardless of backend and never branch on its identity.
type Device struct {
	Name    string  // Human-readable device name
	Backend Backend // Scheduling strategy for bulk kernels
	Workers int     // Goroutine grid width for BackendParallel
}

// blockSize is the number of elements a worker processes per block.
// Blocks are contiguous so each worker streams through cache lines.
const blockSize = 4096

// Global runtime state
var (
	defaultDevice *Device
	initOnce      sync.Once
)

func getDefaultDevice() *Device {
	initOnce.Do(func() {
		defaultDevice = &Device{
			Name:    "accelerator",
			Backend: BackendParallel,
			Workers: runtime.NumCPU(),
		}
	})
	return defaultDevice
}

// DefaultDevice returns the ambient device used by the package-level
// computation functions: a parallel grid sized to the CPU count.
func DefaultDevice() *Device {
	return getDefaultDevice()
}

// NewDevice creates a device with the given backend. workers bounds
// the goroutine grid for BackendParallel; values < 1 default to the
// CPU count. BackendSerial ignores workers.
func NewDevice(backend Backend, workers int) *Device {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Device{
		Name:    backend.String(),
		Backend: backend,
		Workers: workers,
	}
}

// parallelFor executes body over [0, n) split into contiguous blocks.
// On BackendSerial the body runs inline as a single range. On
// BackendParallel blocks are distributed across the worker grid; each
// worker processes a contiguous run of blocks to maximize cache reuse.
//
// body must be safe to call concurrently on disjoint ranges.
func (d *Device) parallelFor(n int, body func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if d.Backend == BackendSerial || n <= blockSize {
		body(0, n)
		return
	}

	numBlocks := (n + blockSize - 1) / blockSize
	numWorkers := d.Workers
	if numBlocks < numWorkers {
		numWorkers = numBlocks
	}
	blocksPerWorker := (numBlocks + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for workerID := 0; workerID < numWorkers; workerID++ {
		startBlock := workerID * blocksPerWorker
		endBlock := startBlock + blocksPerWorker
		if endBlock > numBlocks {
			endBlock = numBlocks
		}
		go func(startBlock, endBlock int) {
			defer wg.Done()
			for blockID := startBlock; blockID < endBlock; blockID++ {
				lo := blockID * blockSize
				hi := lo + blockSize
				if hi > n {
					hi = n
				}
				body(lo, hi)
			}
		}(startBlock, endBlock)
	}
	wg.Wait()
}

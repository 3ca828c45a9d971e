package affinity

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// BenchmarkResult captures the summary of one variant at one size
type BenchmarkResult struct {
	Name      string    `json:"name"`
	Variant   string    `json:"variant"`
	Backend   string    `json:"backend"`
	Size      int       `json:"size"`
	Trials    int       `json:"trials"`
	MeanNs    float64   `json:"mean_ns"`
	StdNs     float64   `json:"std_ns"`
	Timestamp time.Time `json:"timestamp"`
}

// BenchmarkLogger manages logging of benchmark results to file
type BenchmarkLogger struct {
	mu          sync.Mutex
	results     []BenchmarkResult
	logDir      string
	sessionFile string
}

// NewBenchmarkLogger creates a logger writing sessions under logDir
func NewBenchmarkLogger(logDir string) *BenchmarkLogger {
	return &BenchmarkLogger{logDir: logDir}
}

// StartSession begins a new timestamped session file
func (bl *BenchmarkLogger) StartSession(sessionName string) error {
	bl.mu.Lock()
	defer bl.mu.Unlock()

	// Create log directory if it doesn't exist
	if err := os.MkdirAll(bl.logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	// Create session file name with timestamp
	timestamp := time.Now().Format("20060102_150405")
	bl.sessionFile = filepath.Join(bl.logDir,
		fmt.Sprintf("%s_%s.json", sessionName, timestamp))

	// Reset results for new session
	bl.results = nil

	// Write initial file
	return bl.flush()
}

// Log records a single benchmark result
func (bl *BenchmarkLogger) Log(result BenchmarkResult) {
	bl.mu.Lock()
	defer bl.mu.Unlock()

	result.Timestamp = time.Now()
	bl.results = append(bl.results, result)

	// Flush to disk immediately to avoid losing data on crash
	bl.flush()
}

// SessionFile returns the path of the current session file, or ""
// before StartSession
func (bl *BenchmarkLogger) SessionFile() string {
	bl.mu.Lock()
	defer bl.mu.Unlock()
	return bl.sessionFile
}

// flush writes results to disk
func (bl *BenchmarkLogger) flush() error {
	if bl.sessionFile == "" {
		return nil // Not initialized
	}

	data, err := json.MarshalIndent(bl.results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	return os.WriteFile(bl.sessionFile, data, 0644)
}

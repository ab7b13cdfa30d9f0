// Package bench defines the micro-benchmark workloads and the suite runner
// that times them.
package bench

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/ArubikU/stressmark/internal/stopwatch"
)

// Metric is one labeled value reported by a workload, e.g. "Result" or
// "Map size". Order is significant for display.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// WorkloadFunc performs one full pass of a workload's computation and
// returns the values it reports.
type WorkloadFunc func() ([]Metric, error)

// Workload is a named, registered benchmark unit.
type Workload struct {
	Name        string
	Description string
	Run         WorkloadFunc
}

// MemoryStats is a snapshot of allocator state around a benchmark run.
type MemoryStats struct {
	AllocBytes      uint64 `json:"alloc_bytes"`
	TotalAllocBytes uint64 `json:"total_alloc_bytes"`
	SysBytes        uint64 `json:"sys_bytes"`
	NumGC           uint32 `json:"num_gc"`
}

// ReadMemoryStats captures current allocator statistics.
func ReadMemoryStats() MemoryStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return MemoryStats{
		AllocBytes:      m.Alloc,
		TotalAllocBytes: m.TotalAlloc,
		SysBytes:        m.Sys,
		NumGC:           m.NumGC,
	}
}

// String renders memory stats in KB for summary lines.
func (m MemoryStats) String() string {
	return fmt.Sprintf("Alloc: %d KB, Total: %d KB, Sys: %d KB, GC: %d",
		m.AllocBytes/1024, m.TotalAllocBytes/1024, m.SysBytes/1024, m.NumGC)
}

// Result holds the outcome of running one workload.
type Result struct {
	Name             string        `json:"name"`
	Iterations       int           `json:"iterations"`
	Metrics          []Metric      `json:"metrics,omitempty"`
	Elapsed          time.Duration `json:"-"`
	ElapsedMS        float64       `json:"elapsed_ms"`
	ElapsedFormatted string        `json:"elapsed_formatted"`
	MemoryBefore     MemoryStats   `json:"memory_before"`
	MemoryAfter      MemoryStats   `json:"memory_after"`
	Err              error         `json:"-"`
}

// String returns a one-line summary of the result.
func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: ERROR - %v", r.Name, r.Err)
	}

	memDiff := int64(r.MemoryAfter.AllocBytes) - int64(r.MemoryBefore.AllocBytes) //nolint:gosec // display only
	return fmt.Sprintf("%s: %d iterations, total %.2f ms (%s), mem %+d KB",
		r.Name, r.Iterations, r.ElapsedMS, r.ElapsedFormatted, memDiff/1024)
}

// Suite manages the registered workloads.
type Suite struct {
	mu        sync.Mutex
	workloads []Workload
	results   []Result
}

// NewSuite creates an empty suite.
func NewSuite() *Suite {
	return &Suite{}
}

// Register adds a workload to the suite.
func (s *Suite) Register(w Workload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workloads = append(s.workloads, w)
}

// Get returns the workload with the given name.
func (s *Suite) Get(name string) (Workload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.workloads {
		if w.Name == name {
			return w, true
		}
	}
	return Workload{}, false
}

// Names returns the registered workload names in registration order.
func (s *Suite) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.workloads))
	for _, w := range s.workloads {
		names = append(names, w.Name)
	}
	return names
}

// Workloads returns the registered workloads in registration order.
func (s *Suite) Workloads() []Workload {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Workload, len(s.workloads))
	copy(out, s.workloads)
	return out
}

// Run runs a single workload by name for the given number of iterations.
// An unknown name yields a Result carrying an error.
func (s *Suite) Run(name string, iterations int) Result {
	w, ok := s.Get(name)
	if !ok {
		return Result{
			Name: name,
			Err:  fmt.Errorf("workload %q not found", name),
		}
	}
	return s.runWorkload(w, iterations)
}

// RunAll runs every registered workload and stores the results.
func (s *Suite) RunAll(iterations int) []Result {
	workloads := s.Workloads()

	results := make([]Result, 0, len(workloads))
	for _, w := range workloads {
		results = append(results, s.runWorkload(w, iterations))
	}

	s.mu.Lock()
	s.results = results
	s.mu.Unlock()

	return results
}

// Results returns the results of the last RunAll.
func (s *Suite) Results() []Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// runWorkload executes one workload, timing the full iteration loop.
func (s *Suite) runWorkload(w Workload, iterations int) Result {
	// Settle the allocator so memory deltas are attributable to the workload.
	runtime.GC()
	memBefore := ReadMemoryStats()

	var (
		metrics []Metric
		err     error
	)

	sw := stopwatch.New()
	sw.Start()

	for i := 0; i < iterations; i++ {
		metrics, err = w.Run()
		if err != nil {
			break
		}
	}

	sw.Stop()
	memAfter := ReadMemoryStats()

	return Result{
		Name:             w.Name,
		Iterations:       iterations,
		Metrics:          metrics,
		Elapsed:          sw.Elapsed(),
		ElapsedMS:        sw.ElapsedMilliseconds(),
		ElapsedFormatted: sw.ElapsedFormatted(),
		MemoryBefore:     memBefore,
		MemoryAfter:      memAfter,
		Err:              err,
	}
}

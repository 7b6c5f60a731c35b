// Package testmetrics records pass/fail/skip counters for the test
// suite. It is an observability sink: the suite notifies it of each
// test's outcome and tooling reads the aggregates back.
package testmetrics

import "sync"

type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Recorder aggregates test outcomes. Safe for concurrent use; counters
// only ever grow for the life of the process.
type Recorder struct {
	mu      sync.Mutex
	passed  int
	failed  int
	skipped int
	results map[string]Status
}

func NewRecorder() *Recorder {
	return &Recorder{results: make(map[string]Status)}
}

func (r *Recorder) Record(name string, status Status) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch status {
	case StatusPassed:
		r.passed++
	case StatusFailed:
		r.failed++
	case StatusSkipped:
		r.skipped++
	default:
		return
	}
	r.results[name] = status
}

func (r *Recorder) Passed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.passed
}

func (r *Recorder) Failed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failed
}

func (r *Recorder) Skipped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.skipped
}

func (r *Recorder) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.passed + r.failed + r.skipped
}

// Result returns the recorded status for a test name, if any.
func (r *Recorder) Result(name string) (Status, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.results[name]
	return s, ok
}

// SuccessRate is passed/total as a percentage, 0 when nothing was
// recorded yet.
func (r *Recorder) SuccessRate() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := r.passed + r.failed + r.skipped
	if total == 0 {
		return 0
	}
	return float64(r.passed) / float64(total) * 100
}

var (
	defaultRecorder *Recorder
	defaultOnce     sync.Once
)

// Default is the process-wide recorder. Initialized once, never reset.
func Default() *Recorder {
	defaultOnce.Do(func() {
		defaultRecorder = NewRecorder()
	})
	return defaultRecorder
}

package testmetrics

import "testing"

// Watch registers a cleanup that records the outcome of t on the default
// recorder once the test finishes. Call it at the top of a test:
//
//	func TestSomething(t *testing.T) {
//	    testmetrics.Watch(t)
//	    ...
//	}
func Watch(t *testing.T) {
	t.Cleanup(func() {
		Default().Record(t.Name(), outcome(t))
	})
}

func outcome(t *testing.T) Status {
	switch {
	case t.Skipped():
		return StatusSkipped
	case t.Failed():
		return StatusFailed
	default:
		return StatusPassed
	}
}

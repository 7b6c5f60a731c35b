package testmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCounts(t *testing.T) {
	r := NewRecorder()

	r.Record("TestA", StatusPassed)
	r.Record("TestB", StatusPassed)
	r.Record("TestC", StatusFailed)
	r.Record("TestD", StatusSkipped)

	assert.Equal(t, 2, r.Passed())
	assert.Equal(t, 1, r.Failed())
	assert.Equal(t, 1, r.Skipped())
	assert.Equal(t, 4, r.Total())

	status, ok := r.Result("TestC")
	require.True(t, ok)
	assert.Equal(t, StatusFailed, status)
}

func TestRecorderSuccessRate(t *testing.T) {
	r := NewRecorder()

	r.Record("TestA", StatusPassed)
	r.Record("TestB", StatusPassed)
	r.Record("TestC", StatusPassed)
	r.Record("TestD", StatusFailed)

	assert.InDelta(t, 75.0, r.SuccessRate(), 0.001)
}

func TestRecorderSuccessRateZeroWhenEmpty(t *testing.T) {
	r := NewRecorder()

	assert.Zero(t, r.SuccessRate())
	assert.Zero(t, r.Total())
}

func TestRecorderIgnoresUnknownStatus(t *testing.T) {
	r := NewRecorder()

	r.Record("TestA", Status("bogus"))

	assert.Zero(t, r.Total())
	_, ok := r.Result("TestA")
	assert.False(t, ok)
}

func TestDefaultIsProcessWide(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestWatchRecordsOutcome(t *testing.T) {
	before := Default().Passed()

	t.Run("observed", func(t *testing.T) {
		Watch(t)
	})

	// The subtest's cleanup ran when t.Run returned.
	assert.Equal(t, before+1, Default().Passed())

	status, ok := Default().Result("TestWatchRecordsOutcome/observed")
	require.True(t, ok)
	assert.Equal(t, StatusPassed, status)
}

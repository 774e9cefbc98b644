// Package testutil provides shared test utilities for the heart rate monitor.
package testutil

import (
	"sync/atomic"
)

// CountingSampler returns Value and counts how many times it was asked
type CountingSampler struct {
	Value float64
	calls atomic.Int64
}

// Sample returns s.Value
func (s *CountingSampler) Sample() float64 {
	s.calls.Add(1)
	return s.Value
}

// Calls returns the number of Sample calls so far
func (s *CountingSampler) Calls() int64 {
	return s.calls.Load()
}

// PanicSampler panics on every call, simulating an unexpected estimator failure
type PanicSampler struct{}

// Sample panics
func (PanicSampler) Sample() float64 {
	panic("sampler failure")
}

// Package mock provides a queue-driven random.Source for tests.
package mock

import "github.com/vovakirdan/tui-2048/internal/random"

// Source returns queued values in order. When a queue runs dry it falls back
// to 0 for Intn and 0.5 for Float64.
type Source struct {
	IntnResults    []int
	Float64Results []float64
	intnIndex      int
	floatIndex     int

	// IntnCalls records the n passed to each Intn call.
	IntnCalls []int
}

var _ random.Source = (*Source)(nil)

// New creates an empty mock source.
func New() *Source {
	return &Source{}
}

// Intn returns the next queued result clamped to [0, n).
func (s *Source) Intn(n int) int {
	s.IntnCalls = append(s.IntnCalls, n)
	if s.intnIndex >= len(s.IntnResults) || n <= 0 {
		return 0
	}
	result := s.IntnResults[s.intnIndex]
	s.intnIndex++
	if result >= n {
		result = n - 1
	}
	return result
}

// Float64 returns the next queued result.
func (s *Source) Float64() float64 {
	if s.floatIndex >= len(s.Float64Results) {
		return 0.5
	}
	result := s.Float64Results[s.floatIndex]
	s.floatIndex++
	return result
}

// QueueIntn adds values to the Intn result queue.
func (s *Source) QueueIntn(values ...int) {
	s.IntnResults = append(s.IntnResults, values...)
}

// QueueFloat64 adds values to the Float64 result queue.
func (s *Source) QueueFloat64(values ...float64) {
	s.Float64Results = append(s.Float64Results, values...)
}

// Reset clears all queued results and recorded calls.
func (s *Source) Reset() {
	s.IntnResults = nil
	s.Float64Results = nil
	s.intnIndex = 0
	s.floatIndex = 0
	s.IntnCalls = nil
}

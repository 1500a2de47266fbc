package kquant

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives timing information from the quantizer.
// Implement it to forward numbers to a monitoring system.
type MetricsCollector interface {
	// RecordIteration is called after every assignment/update round with
	// the number of points whose cluster changed.
	RecordIteration(changed int, duration time.Duration)

	// RecordRun is called once per Quantize call. err is nil on success.
	RecordRun(pixels, iterations int, duration time.Duration, err error)
}

// NoopMetricsCollector discards everything.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIteration(int, time.Duration)       {}
func (NoopMetricsCollector) RecordRun(int, int, time.Duration, error) {}

// BasicMetricsCollector keeps simple in-memory counters. It is safe for
// concurrent use.
type BasicMetricsCollector struct {
	RunCount        atomic.Int64
	RunErrors       atomic.Int64
	RunTotalNanos   atomic.Int64
	PixelCount      atomic.Int64
	IterationCount  atomic.Int64
	IterationNanos  atomic.Int64
	ReassignedCount atomic.Int64
}

func (b *BasicMetricsCollector) RecordIteration(changed int, duration time.Duration) {
	b.IterationCount.Add(1)
	b.IterationNanos.Add(int64(duration))
	b.ReassignedCount.Add(int64(changed))
}

func (b *BasicMetricsCollector) RecordRun(pixels, iterations int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(int64(duration))
	if err != nil {
		b.RunErrors.Add(1)
		return
	}
	b.PixelCount.Add(int64(pixels))
}

// Stats is a point-in-time copy of the collected counters.
type Stats struct {
	Runs                 int64
	RunErrors            int64
	Pixels               int64
	Iterations           int64
	Reassigned           int64
	AvgRunDuration       time.Duration
	AvgIterationDuration time.Duration
}

// GetStats returns a snapshot of the counters.
func (b *BasicMetricsCollector) GetStats() Stats {
	s := Stats{
		Runs:       b.RunCount.Load(),
		RunErrors:  b.RunErrors.Load(),
		Pixels:     b.PixelCount.Load(),
		Iterations: b.IterationCount.Load(),
		Reassigned: b.ReassignedCount.Load(),
	}
	if s.Runs > 0 {
		s.AvgRunDuration = time.Duration(b.RunTotalNanos.Load() / s.Runs)
	}
	if s.Iterations > 0 {
		s.AvgIterationDuration = time.Duration(b.IterationNanos.Load() / s.Iterations)
	}
	return s
}

package service

import (
	"sync/atomic"
	"time"
)

// Metrics tracks engine call counters
type Metrics struct {
	engineCalls   int64
	engineErrors  int64
	engineLatency int64 // total latency in nanoseconds
}

var globalMetrics = &Metrics{}

// GetMetrics returns the current metrics snapshot
func GetMetrics() Metrics {
	return Metrics{
		engineCalls:   atomic.LoadInt64(&globalMetrics.engineCalls),
		engineErrors:  atomic.LoadInt64(&globalMetrics.engineErrors),
		engineLatency: atomic.LoadInt64(&globalMetrics.engineLatency),
	}
}

// ResetMetrics resets all counters (useful for testing)
func ResetMetrics() {
	atomic.StoreInt64(&globalMetrics.engineCalls, 0)
	atomic.StoreInt64(&globalMetrics.engineErrors, 0)
	atomic.StoreInt64(&globalMetrics.engineLatency, 0)
}

func recordEngineCall(duration time.Duration, err error) {
	atomic.AddInt64(&globalMetrics.engineCalls, 1)
	atomic.AddInt64(&globalMetrics.engineLatency, duration.Nanoseconds())
	if err != nil {
		atomic.AddInt64(&globalMetrics.engineErrors, 1)
	}
}

// Calls returns the number of engine calls recorded.
func (m Metrics) Calls() int64 { return m.engineCalls }

// Errors returns the number of failed engine calls recorded.
func (m Metrics) Errors() int64 { return m.engineErrors }

// AverageEngineLatency returns the average latency in milliseconds
func (m Metrics) AverageEngineLatency() float64 {
	if m.engineCalls == 0 {
		return 0
	}
	avgNs := float64(m.engineLatency) / float64(m.engineCalls)
	return avgNs / 1e6
}

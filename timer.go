// Copyright 2025 The DecayKit Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import "time"

// A Timer measures both the rate at which an event occurs and the
// distribution of its durations: a Meter for throughput and a
// Histogram of elapsed seconds for latency.
type Timer struct {
	histogram *Histogram
	meter     *Meter
	now       nowFunc
}

// NewTimer returns a timer backed by a default exponentially-decaying
// histogram and a fresh meter.
func NewTimer() *Timer {
	return NewCustomTimer(NewHistogram(nil), NewMeter())
}

// NewCustomTimer composes a timer from an existing histogram and
// meter, for callers who need non-default reservoirs or decay
// windows.
func NewCustomTimer(h *Histogram, m *Meter) *Timer {
	return &Timer{histogram: h, meter: m, now: time.Now}
}

// Update records one event of duration d.
func (t *Timer) Update(d time.Duration) {
	t.histogram.Update(d.Seconds())
	t.meter.Mark(1)
}

// UpdateSince records one event that began at start and ends now.
func (t *Timer) UpdateSince(start time.Time) {
	t.Update(t.now().Sub(start))
}

// Time runs f and records its duration.
func (t *Timer) Time(f func()) {
	start := t.now()
	f()
	t.UpdateSince(start)
}

// Start returns a running StopWatch feeding this timer.
func (t *Timer) Start() *StopWatch {
	return &StopWatch{start: t.now(), timer: t}
}

// Clear resets both underlying instruments.
func (t *Timer) Clear() {
	t.histogram.Clear()
	t.meter.Clear()
}

// Count returns the number of events recorded.
func (t *Timer) Count() int64 { return t.histogram.Count() }

// Min returns the shortest recorded duration in seconds.
func (t *Timer) Min() float64 { return t.histogram.Min() }

// Max returns the longest recorded duration in seconds.
func (t *Timer) Max() float64 { return t.histogram.Max() }

// Mean returns the mean recorded duration in seconds.
func (t *Timer) Mean() float64 { return t.histogram.Mean() }

// Sum returns the total recorded duration in seconds.
func (t *Timer) Sum() float64 { return t.histogram.Sum() }

// StdDev returns the standard deviation of recorded durations in
// seconds.
func (t *Timer) StdDev() float64 { return t.histogram.StdDev() }

// Variance returns the variance of recorded durations in seconds
// squared.
func (t *Timer) Variance() float64 { return t.histogram.Variance() }

// Size returns the number of durations currently retained for
// percentile estimation.
func (t *Timer) Size() int { return t.histogram.Size() }

// Snapshot returns the retained duration sample, in seconds.
func (t *Timer) Snapshot() *Snapshot { return t.histogram.Snapshot() }

// Rate1 returns the one-minute moving average event rate per second.
func (t *Timer) Rate1() float64 { return t.meter.Rate1() }

// Rate5 returns the five-minute moving average event rate per second.
func (t *Timer) Rate5() float64 { return t.meter.Rate5() }

// Rate15 returns the fifteen-minute moving average event rate per
// second.
func (t *Timer) Rate15() float64 { return t.meter.Rate15() }

// RateMean returns the lifetime mean event rate per second.
func (t *Timer) RateMean() float64 { return t.meter.RateMean() }

// A StopWatch times a single event. It is not reusable: obtain one
// from Timer.Start per event.
type StopWatch struct {
	start time.Time
	timer *Timer
}

// Stop records the elapsed duration on the owning timer and returns
// it.
func (s *StopWatch) Stop() time.Duration {
	d := s.timer.now().Sub(s.start)
	s.timer.Update(d)
	return d
}

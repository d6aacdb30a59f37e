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

import (
	"sync"
	"time"
)

// A Meter measures the rate at which events occur: a lifetime mean
// rate plus one-, five-, and fifteen-minute exponentially-weighted
// moving averages.
//
// Meters tick their moving averages lazily on access rather than from
// a background goroutine, catching up one five-second interval at a
// time, so an idle meter decays correctly the next time it is read.
type Meter struct {
	mtx      sync.Mutex
	count    int64
	a1       *EWMA
	a5       *EWMA
	a15      *EWMA
	start    time.Time
	lastTick int64 // Unix nanos of the most recent tick
	now      nowFunc
}

// NewMeter returns a started Meter.
func NewMeter() *Meter {
	return newMeter(time.Now)
}

func newMeter(now nowFunc) *Meter {
	t := now()
	return &Meter{
		a1:       NewEWMA1(),
		a5:       NewEWMA5(),
		a15:      NewEWMA15(),
		start:    t,
		lastTick: t.UnixNano(),
		now:      now,
	}
}

// Mark records the occurrence of n events.
func (m *Meter) Mark(n int64) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.tickIfNecessary()
	m.count += n
	m.a1.Update(n)
	m.a5.Update(n)
	m.a15.Update(n)
}

// Count returns the number of events recorded.
func (m *Meter) Count() int64 {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return m.count
}

// Rate1 returns the one-minute moving average rate in events per
// second.
func (m *Meter) Rate1() float64 { return m.rate(m.a1) }

// Rate5 returns the five-minute moving average rate in events per
// second.
func (m *Meter) Rate5() float64 { return m.rate(m.a5) }

// Rate15 returns the fifteen-minute moving average rate in events per
// second.
func (m *Meter) Rate15() float64 { return m.rate(m.a15) }

func (m *Meter) rate(a *EWMA) float64 {
	m.mtx.Lock()
	m.tickIfNecessary()
	m.mtx.Unlock()
	return a.Rate()
}

// RateMean returns the lifetime mean rate in events per second.
func (m *Meter) RateMean() float64 {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	elapsed := m.now().Sub(m.start).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(m.count) / elapsed
}

// Clear resets the meter to its started state.
func (m *Meter) Clear() {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	t := m.now()
	m.count = 0
	m.a1.Clear()
	m.a5.Clear()
	m.a15.Clear()
	m.start = t
	m.lastTick = t.UnixNano()
}

// tickIfNecessary advances the moving averages through every
// five-second interval that has elapsed since the last tick. Callers
// hold mtx.
func (m *Meter) tickIfNecessary() {
	const interval = tickInterval * int64(time.Second)
	now := m.now().UnixNano()
	age := now - m.lastTick
	if age < interval {
		return
	}
	m.lastTick += (age / interval) * interval
	for ; age >= interval; age -= interval {
		m.a1.Tick()
		m.a5.Tick()
		m.a15.Tick()
	}
}

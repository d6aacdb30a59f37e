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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock drives meters and timers with explicit time.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestMeterCount(t *testing.T) {
	clock := &fakeClock{t: testBase}
	m := newMeter(clock.now)
	m.Mark(1)
	m.Mark(2)
	assert.Equal(t, int64(3), m.Count())
}

func TestMeterRatesAfterOneInterval(t *testing.T) {
	clock := &fakeClock{t: testBase}
	m := newMeter(clock.now)
	m.Mark(3)
	clock.advance(5 * time.Second)

	assert.InDelta(t, 0.6, m.Rate1(), 1e-12)
	assert.InDelta(t, 0.6, m.Rate5(), 1e-12)
	assert.InDelta(t, 0.6, m.Rate15(), 1e-12)
	assert.InDelta(t, 0.6, m.RateMean(), 1e-12)
}

func TestMeterIdleDecay(t *testing.T) {
	clock := &fakeClock{t: testBase}
	m := newMeter(clock.now)
	m.Mark(3)
	clock.advance(5 * time.Second)
	first := m.Rate1()

	// A minute of silence: the lazy tick catches up all twelve
	// missed intervals at once.
	clock.advance(time.Minute)
	decayed := m.Rate1()
	assert.Less(t, decayed, first)
	assert.InDelta(t, decayedRate(0.6, ewmaAlpha(1), 12), decayed, 1e-9)
}

func TestMeterRateMean(t *testing.T) {
	clock := &fakeClock{t: testBase}
	m := newMeter(clock.now)
	m.Mark(50)
	clock.advance(25 * time.Second)
	assert.InDelta(t, 2.0, m.RateMean(), 1e-12)
}

func TestMeterClear(t *testing.T) {
	clock := &fakeClock{t: testBase}
	m := newMeter(clock.now)
	m.Mark(100)
	clock.advance(10 * time.Second)
	m.Clear()

	assert.Zero(t, m.Count())
	assert.Zero(t, m.Rate1())
	assert.Zero(t, m.RateMean())

	// Behaves like a meter started at the clear time.
	m.Mark(3)
	clock.advance(5 * time.Second)
	assert.InDelta(t, 0.6, m.Rate1(), 1e-12)
}

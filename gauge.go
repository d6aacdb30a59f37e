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
	"math"
	"sync/atomic"
)

// A Gauge holds an instantaneous float64 value, such as a queue depth
// or memory in use.
type Gauge struct {
	bits atomic.Uint64
}

// NewGauge returns a gauge at zero.
func NewGauge() *Gauge {
	return &Gauge{}
}

// Set replaces the gauge's value.
func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

// Add adds delta to the gauge's value. Negative deltas subtract.
func (g *Gauge) Add(delta float64) {
	for {
		old := g.bits.Load()
		updated := math.Float64bits(math.Float64frombits(old) + delta)
		if g.bits.CompareAndSwap(old, updated) {
			return
		}
	}
}

// Value returns the current value.
func (g *Gauge) Value() float64 {
	return math.Float64frombits(g.bits.Load())
}

// A GaugeFunc computes its value on demand from a callback, for
// quantities the program can always answer directly (time since start,
// pool sizes held elsewhere).
type GaugeFunc struct {
	f func() float64
}

// NewGaugeFunc returns a gauge backed by f. f must be safe to call
// concurrently.
func NewGaugeFunc(f func() float64) *GaugeFunc {
	return &GaugeFunc{f: f}
}

// Value returns f().
func (g *GaugeFunc) Value() float64 {
	return g.f()
}

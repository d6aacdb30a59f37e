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
	"sync"
)

// A Histogram measures the distribution of a float64 stream. It keeps
// exact running count, sum, min, max, mean, and variance over every
// observation, and delegates order statistics (percentiles, median) to
// a Reservoir's bounded sample.
//
// Note the asymmetry: Min, Max, Mean, and Variance describe the whole
// stream since the last Clear, while Snapshot percentiles describe
// only what the reservoir retained.
type Histogram struct {
	mtx       sync.Mutex
	reservoir Reservoir
	count     int64
	sum       float64
	min       float64
	max       float64
	mean      float64
	m2        float64 // Welford's sum of squared deviations
}

// NewHistogram returns a histogram sampling into r. A nil r gets a
// default exponentially-decaying reservoir.
func NewHistogram(r Reservoir) *Histogram {
	if r == nil {
		r = NewExpDecayReservoir(DefReservoirSize, DefAlpha)
	}
	return &Histogram{reservoir: r}
}

// Update records a new observation.
func (h *Histogram) Update(v float64) {
	h.mtx.Lock()
	h.count++
	h.sum += v
	if h.count == 1 {
		h.min = v
		h.max = v
	} else {
		h.min = math.Min(h.min, v)
		h.max = math.Max(h.max, v)
	}
	d := v - h.mean
	h.mean += d / float64(h.count)
	h.m2 += d * (v - h.mean)
	h.mtx.Unlock()

	h.reservoir.Update(v)
}

// Clear resets the accumulators and the underlying reservoir.
func (h *Histogram) Clear() {
	h.mtx.Lock()
	h.count = 0
	h.sum = 0
	h.min = 0
	h.max = 0
	h.mean = 0
	h.m2 = 0
	h.mtx.Unlock()

	h.reservoir.Clear()
}

// Count returns the number of observations recorded.
func (h *Histogram) Count() int64 {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return h.count
}

// Sum returns the sum of all observed values.
func (h *Histogram) Sum() float64 {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return h.sum
}

// Min returns the smallest value observed since the last Clear.
func (h *Histogram) Min() float64 {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return h.min
}

// Max returns the largest value observed since the last Clear.
func (h *Histogram) Max() float64 {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return h.max
}

// Mean returns the arithmetic mean of all observed values.
func (h *Histogram) Mean() float64 {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return h.mean
}

// Variance returns the sample variance of all observed values.
func (h *Histogram) Variance() float64 {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	if h.count < 2 {
		return 0
	}
	return h.m2 / float64(h.count-1)
}

// StdDev returns the sample standard deviation of all observed values.
func (h *Histogram) StdDev() float64 {
	return math.Sqrt(h.Variance())
}

// Size returns the number of samples currently retained by the
// reservoir.
func (h *Histogram) Size() int {
	return h.reservoir.Size()
}

// Snapshot returns the reservoir's current sample.
func (h *Histogram) Snapshot() *Snapshot {
	return h.reservoir.Snapshot()
}

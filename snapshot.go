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
	"sort"
)

// A Snapshot is an immutable point-in-time copy of a sample, exposing
// order statistics and dispersion over it. All accessors on an empty
// snapshot return 0.
type Snapshot struct {
	values []float64 // sorted ascending
}

// NewSnapshot copies values into a snapshot. The caller keeps
// ownership of the input slice.
func NewSnapshot(values []float64) *Snapshot {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return &Snapshot{values: sorted}
}

// Size returns the number of values in the snapshot.
func (s *Snapshot) Size() int { return len(s.values) }

// Values returns a copy of the sampled values, sorted ascending.
func (s *Snapshot) Values() []float64 {
	values := make([]float64, len(s.values))
	copy(values, s.values)
	return values
}

// Min returns the smallest sampled value.
func (s *Snapshot) Min() float64 {
	if len(s.values) == 0 {
		return 0
	}
	return s.values[0]
}

// Max returns the largest sampled value.
func (s *Snapshot) Max() float64 {
	if len(s.values) == 0 {
		return 0
	}
	return s.values[len(s.values)-1]
}

// Sum returns the sum of the sampled values.
func (s *Snapshot) Sum() float64 {
	var sum float64
	for _, v := range s.values {
		sum += v
	}
	return sum
}

// Mean returns the arithmetic mean of the sampled values.
func (s *Snapshot) Mean() float64 {
	if len(s.values) == 0 {
		return 0
	}
	return s.Sum() / float64(len(s.values))
}

// Variance returns the sample variance of the sampled values.
func (s *Snapshot) Variance() float64 {
	if len(s.values) < 2 {
		return 0
	}
	mean := s.Mean()
	var sum float64
	for _, v := range s.values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(s.values)-1)
}

// StdDev returns the sample standard deviation of the sampled values.
func (s *Snapshot) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Median returns the 50th percentile of the sampled values.
func (s *Snapshot) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns an arbitrary percentile of the sampled values,
// with p in [0,1]. Ranks falling between two values interpolate
// linearly.
func (s *Snapshot) Percentile(p float64) float64 {
	size := len(s.values)
	if size == 0 {
		return 0
	}
	rank := p * float64(size+1)
	switch {
	case rank <= 1:
		return s.values[0]
	case rank >= float64(size):
		return s.values[size-1]
	}
	lo := int(rank) - 1
	frac := rank - float64(int(rank))
	return s.values[lo] + frac*(s.values[lo+1]-s.values[lo])
}

// Percentiles returns a slice of percentiles, one per requested rank.
func (s *Snapshot) Percentiles(ps []float64) []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = s.Percentile(p)
	}
	return out
}

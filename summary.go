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

	"github.com/beorn7/perks/quantile"
)

// DefObjectives are the default Summary quantile ranks and their
// tolerated absolute rank errors. They are suitable for most latency
// reporting.
var DefObjectives = map[float64]float64{
	0.5:  0.05,
	0.9:  0.01,
	0.99: 0.001,
}

// SummaryOpts configures a Summary.
type SummaryOpts struct {
	// Objectives maps target quantile ranks to their allowed absolute
	// error. Nil selects DefObjectives.
	Objectives map[float64]float64
}

// A Summary estimates pre-declared quantiles of a stream using a
// targeted streaming estimator rather than a retained sample. Compared
// to a reservoir-backed Histogram it answers only the configured
// quantiles, with bounded per-quantile error over the entire stream,
// and has no recency bias. Use it when the configured ranks are all
// you need and the stream is too hot to sample representatively.
type Summary struct {
	mtx        sync.Mutex
	objectives map[float64]float64
	stream     *quantile.Stream
	count      int64
	sum        float64
}

// NewSummary returns a summary targeting opts.Objectives.
func NewSummary(opts SummaryOpts) *Summary {
	objectives := opts.Objectives
	if objectives == nil {
		objectives = DefObjectives
	}
	return &Summary{
		objectives: objectives,
		stream:     quantile.NewTargeted(objectives),
	}
}

// Observe records a new observation.
func (s *Summary) Observe(v float64) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.stream.Insert(v)
	s.count++
	s.sum += v
}

// Quantile returns the estimate for rank q. q should be one of the
// configured objectives; other ranks are answered on a best-effort
// basis with no error bound. An empty summary returns 0.
func (s *Summary) Quantile(q float64) float64 {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.stream.Query(q)
}

// Count returns the number of observations recorded.
func (s *Summary) Count() int64 {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.count
}

// Sum returns the sum of all observed values.
func (s *Summary) Sum() float64 {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.sum
}

// Clear resets the summary, keeping its objectives.
func (s *Summary) Clear() {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.stream.Reset()
	s.count = 0
	s.sum = 0
}

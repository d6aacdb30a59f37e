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

// Package metrics provides in-process runtime metrics instruments:
// counters, gauges, meters, histograms, timers, and streaming quantile
// summaries, with bounded memory use.
//
// Distribution-shaped instruments (Histogram, Timer) are backed by a
// Reservoir, a fixed-size statistically representative sample of an
// unbounded observation stream. The default reservoir is an
// exponentially-decaying one, biased towards observations from roughly
// the last five minutes, so that percentiles reported by a
// long-running process reflect recent behavior rather than its entire
// lifetime:
//
//	timer := metrics.NewTimer()
//	sw := timer.Start()
//	handle(req)
//	sw.Stop()
//
//	p99 := timer.Snapshot().Percentile(0.99) // seconds
//
// Instruments may be used free-standing or registered by name in a
// Registry:
//
//	reg := metrics.NewRegistry()
//	h := metrics.GetOrRegisterHistogram("db.query.rows", reg)
//	h.Update(float64(rows))
//
// The optional RuntimeSampler and ProcessSampler feed Go runtime and
// OS process statistics into registered instruments.
//
// Nothing in this package exports, encodes, or transmits metrics;
// callers drain a Registry (or individual instruments) into whatever
// reporting pipeline they use.
package metrics

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
	"fmt"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// A Registry maps globally unique names to instruments, so that the
// code observing a metric and the code reporting it only need to share
// the name.
//
// In most situations using DefaultRegistry is sufficient versus
// creating one's own.
type Registry struct {
	mtx     sync.RWMutex
	metrics map[string]any
}

// DefaultRegistry is the registry used by the package-level
// GetOrRegister helpers when passed a nil registry.
var DefaultRegistry = NewRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{metrics: make(map[string]any)}
}

// DuplicateMetricError is returned by Register when the name is taken.
type DuplicateMetricError struct {
	Name string
}

func (e DuplicateMetricError) Error() string {
	return fmt.Sprintf("metrics: duplicate metric %q", e.Name)
}

// Register associates metric with name. It returns a
// DuplicateMetricError if the name is already in use.
func (r *Registry) Register(name string, metric any) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if _, ok := r.metrics[name]; ok {
		return DuplicateMetricError{Name: name}
	}
	r.metrics[name] = metric
	return nil
}

// MustRegister is Register that panics on error. Use for registrations
// at program start whose failure is a programming error.
func (r *Registry) MustRegister(name string, metric any) {
	if err := r.Register(name, metric); err != nil {
		panic(err)
	}
}

// Get returns the instrument registered under name, or nil.
func (r *Registry) Get(name string) any {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.metrics[name]
}

// Unregister removes the instrument registered under name.
func (r *Registry) Unregister(name string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	delete(r.metrics, name)
}

// UnregisterAll removes every registered instrument.
func (r *Registry) UnregisterAll() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	clear(r.metrics)
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mtx.RLock()
	names := make([]string, 0, len(r.metrics))
	for name := range r.metrics {
		names = append(names, name)
	}
	r.mtx.RUnlock()
	sort.Strings(names)
	return names
}

// Each calls f for every registered instrument in name order. The
// registry lock is not held during the calls, so f may register or
// read instruments; metrics registered after Each begins may be
// missed.
func (r *Registry) Each(f func(name string, metric any)) {
	r.mtx.RLock()
	snapshot := make(map[string]any, len(r.metrics))
	for name, metric := range r.metrics {
		snapshot[name] = metric
	}
	r.mtx.RUnlock()

	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f(name, snapshot[name])
	}
}

// getOrRegister returns the instrument under name, constructing and
// registering one if absent. A registered instrument of a different
// type than T is a programming error and panics.
func getOrRegister[T any](name string, build func() T, r *Registry) T {
	if r == nil {
		r = DefaultRegistry
	}
	if existing := r.Get(name); existing != nil {
		return mustBe[T](name, existing)
	}

	r.mtx.Lock()
	if existing, ok := r.metrics[name]; ok {
		r.mtx.Unlock()
		return mustBe[T](name, existing)
	}
	metric := build()
	r.metrics[name] = metric
	r.mtx.Unlock()
	return metric
}

func mustBe[T any](name string, metric any) T {
	t, ok := metric.(T)
	if !ok {
		panic(fmt.Sprintf("metrics: %q is registered as %T, not the requested type", name, metric))
	}
	return t
}

// seedFor derives a stable reservoir seed from an instrument name, so
// that the same named instrument replays the same sampling decisions
// across process restarts.
func seedFor(name string) int64 {
	return int64(xxhash.Sum64String(name))
}

// GetOrRegisterCounter returns the counter registered under name in r
// (nil means DefaultRegistry), creating it if needed.
func GetOrRegisterCounter(name string, r *Registry) *Counter {
	return getOrRegister(name, NewCounter, r)
}

// GetOrRegisterGauge returns the gauge registered under name in r,
// creating it if needed.
func GetOrRegisterGauge(name string, r *Registry) *Gauge {
	return getOrRegister(name, NewGauge, r)
}

// GetOrRegisterMeter returns the meter registered under name in r,
// creating it if needed.
func GetOrRegisterMeter(name string, r *Registry) *Meter {
	return getOrRegister(name, NewMeter, r)
}

// GetOrRegisterHistogram returns the histogram registered under name
// in r, creating one backed by a default exponentially-decaying
// reservoir seeded from the name if needed.
func GetOrRegisterHistogram(name string, r *Registry) *Histogram {
	return getOrRegister(name, func() *Histogram {
		return NewHistogram(NewSeededExpDecayReservoir(DefReservoirSize, DefAlpha, seedFor(name)))
	}, r)
}

// GetOrRegisterTimer returns the timer registered under name in r,
// creating one backed by a name-seeded decaying reservoir if needed.
func GetOrRegisterTimer(name string, r *Registry) *Timer {
	return getOrRegister(name, func() *Timer {
		h := NewHistogram(NewSeededExpDecayReservoir(DefReservoirSize, DefAlpha, seedFor(name)))
		return NewCustomTimer(h, NewMeter())
	}, r)
}

// GetOrRegisterSummary returns the summary registered under name in r,
// creating one with DefObjectives if needed.
func GetOrRegisterSummary(name string, r *Registry) *Summary {
	return getOrRegister(name, func() *Summary {
		return NewSummary(SummaryOpts{})
	}, r)
}

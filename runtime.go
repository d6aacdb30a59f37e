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
	"runtime"
	"time"
)

// A RuntimeSampler feeds Go runtime statistics into registered
// instruments: goroutine count, heap usage gauges, GC counters, and a
// histogram of recent GC pause durations.
type RuntimeSampler struct {
	goroutines  *Gauge
	heapAlloc   *Gauge
	heapObjects *Gauge
	heapSys     *Gauge
	stackInuse  *Gauge
	numGC       *Counter
	gcPause     *Histogram

	lastNumGC uint32
}

// NewRuntimeSampler registers runtime instruments under the "runtime."
// prefix in r (nil means DefaultRegistry) and returns a sampler that
// refreshes them. Registering twice in the same registry returns a
// DuplicateMetricError.
func NewRuntimeSampler(r *Registry) (*RuntimeSampler, error) {
	if r == nil {
		r = DefaultRegistry
	}
	s := &RuntimeSampler{
		goroutines:  NewGauge(),
		heapAlloc:   NewGauge(),
		heapObjects: NewGauge(),
		heapSys:     NewGauge(),
		stackInuse:  NewGauge(),
		numGC:       NewCounter(),
		gcPause:     NewHistogram(nil),
	}
	for name, metric := range map[string]any{
		"runtime.goroutines":            s.goroutines,
		"runtime.mem.heap_alloc_bytes":  s.heapAlloc,
		"runtime.mem.heap_objects":      s.heapObjects,
		"runtime.mem.heap_sys_bytes":    s.heapSys,
		"runtime.mem.stack_inuse_bytes": s.stackInuse,
		"runtime.gc.collections_total":  s.numGC,
		"runtime.gc.pause_seconds":      s.gcPause,
	} {
		if err := r.Register(name, metric); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Sample reads the runtime counters once and updates the registered
// instruments. ReadMemStats stops the world briefly; sample at
// second-scale intervals, not per request.
func (s *RuntimeSampler) Sample() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	s.goroutines.Set(float64(runtime.NumGoroutine()))
	s.heapAlloc.Set(float64(ms.HeapAlloc))
	s.heapObjects.Set(float64(ms.HeapObjects))
	s.heapSys.Set(float64(ms.HeapSys))
	s.stackInuse.Set(float64(ms.StackInuse))

	if delta := ms.NumGC - s.lastNumGC; delta > 0 {
		s.numGC.Inc(int64(delta))
		// PauseNs is a circular buffer of the last 256 pauses; replay
		// only the ones that happened since the previous Sample.
		if delta > uint32(len(ms.PauseNs)) {
			delta = uint32(len(ms.PauseNs))
		}
		for i := uint32(0); i < delta; i++ {
			pause := ms.PauseNs[(ms.NumGC-i+uint32(len(ms.PauseNs))-1)%uint32(len(ms.PauseNs))]
			s.gcPause.Update(time.Duration(pause).Seconds())
		}
		s.lastNumGC = ms.NumGC
	}
}

// Run samples every interval until stop is closed. It is typically
// started in its own goroutine:
//
//	go sampler.Run(10*time.Second, ctxDone)
func (s *RuntimeSampler) Run(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.Sample()
		case <-stop:
			return
		}
	}
}

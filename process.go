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
	"time"

	"github.com/prometheus/procfs"
)

// A Logger receives errors from sampler loops. log.Logger satisfies
// it.
type Logger interface {
	Println(v ...any)
}

// A ProcessSampler feeds operating-system process statistics (CPU
// time, memory, file descriptors) into registered gauges. It reads
// /proc and therefore only constructs successfully on systems that
// provide it.
type ProcessSampler struct {
	proc procfs.Proc

	cpuSeconds *Gauge
	rss        *Gauge
	vsize      *Gauge
	openFDs    *Gauge
	maxFDs     *Gauge
	startTime  *Gauge

	// Logger, if set, receives errors from the Run loop. Sample
	// returns them instead.
	Logger Logger
}

// NewProcessSampler registers process instruments under the "process."
// prefix in r (nil means DefaultRegistry) and returns a sampler that
// refreshes them for the current process.
func NewProcessSampler(r *Registry) (*ProcessSampler, error) {
	proc, err := procfs.Self()
	if err != nil {
		return nil, fmt.Errorf("metrics: process stats unavailable: %w", err)
	}
	if r == nil {
		r = DefaultRegistry
	}
	s := &ProcessSampler{
		proc:       proc,
		cpuSeconds: NewGauge(),
		rss:        NewGauge(),
		vsize:      NewGauge(),
		openFDs:    NewGauge(),
		maxFDs:     NewGauge(),
		startTime:  NewGauge(),
	}
	for name, metric := range map[string]any{
		"process.cpu_seconds_total":     s.cpuSeconds,
		"process.resident_memory_bytes": s.rss,
		"process.virtual_memory_bytes":  s.vsize,
		"process.open_fds":              s.openFDs,
		"process.max_fds":               s.maxFDs,
		"process.start_time_seconds":    s.startTime,
	} {
		if err := r.Register(name, metric); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Sample reads /proc once and updates the registered gauges.
func (s *ProcessSampler) Sample() error {
	stat, err := s.proc.Stat()
	if err != nil {
		return fmt.Errorf("metrics: reading process stat: %w", err)
	}
	s.cpuSeconds.Set(stat.CPUTime())
	s.rss.Set(float64(stat.ResidentMemory()))
	s.vsize.Set(float64(stat.VirtualMemory()))
	if start, err := stat.StartTime(); err == nil {
		s.startTime.Set(start)
	}

	if fds, err := s.proc.FileDescriptorsLen(); err == nil {
		s.openFDs.Set(float64(fds))
	}
	if limits, err := s.proc.Limits(); err == nil {
		s.maxFDs.Set(float64(limits.OpenFiles))
	}
	return nil
}

// Run samples every interval until stop is closed, reporting errors to
// s.Logger if one is set.
func (s *ProcessSampler) Run(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := s.Sample(); err != nil && s.Logger != nil {
				s.Logger.Println(err)
			}
		case <-stop:
			return
		}
	}
}

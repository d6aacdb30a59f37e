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

import "time"

// A Reservoir maintains a statistically representative sample of a
// stream of float64 observations within a fixed memory bound.
//
// Implementations in this package are safe for concurrent use. The
// sample a Snapshot returns is a detached copy; mutating the reservoir
// afterwards does not affect it.
type Reservoir interface {
	// Clear discards all retained samples and resets the reservoir to
	// its freshly constructed state.
	Clear()

	// Size returns the number of samples a Snapshot would contain.
	Size() int

	// Snapshot returns the current sample. It never mutates the
	// reservoir.
	Snapshot() *Snapshot

	// Update offers a new observation to the reservoir.
	Update(v float64)
}

// nowFunc is the clock seam used by reservoirs, meters, and timers.
// Production code uses time.Now; tests substitute fixed timestamps.
type nowFunc func() time.Time

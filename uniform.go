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
	"math/rand"
	"sync"
	"time"
)

// UniformReservoir is a fixed-size sample in which every observation
// ever offered has equal probability of being retained (Vitter's
// algorithm R). Use it when summaries should describe the whole
// lifetime of the stream; use ExpDecayReservoir when they should
// describe recent behavior.
type UniformReservoir struct {
	mtx    sync.Mutex
	size   int
	count  int64
	values []float64
	rnd    *rand.Rand
}

// NewUniformReservoir returns a uniform reservoir retaining at most
// size samples.
func NewUniformReservoir(size int) *UniformReservoir {
	return NewSeededUniformReservoir(size, time.Now().UnixNano())
}

// NewSeededUniformReservoir is NewUniformReservoir with an explicit
// random seed for replayable sampling decisions.
func NewSeededUniformReservoir(size int, seed int64) *UniformReservoir {
	return &UniformReservoir{
		size:   size,
		values: make([]float64, 0, size),
		rnd:    rand.New(rand.NewSource(seed)),
	}
}

// Clear discards all samples. The random state is retained.
func (r *UniformReservoir) Clear() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.count = 0
	r.values = r.values[:0]
}

// Size returns the number of samples a Snapshot would contain.
func (r *UniformReservoir) Size() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return len(r.values)
}

// Snapshot returns the retained sample values.
func (r *UniformReservoir) Snapshot() *Snapshot {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return NewSnapshot(r.values)
}

// Update offers a new observation to the reservoir.
func (r *UniformReservoir) Update(v float64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.count++
	if len(r.values) < r.size {
		r.values = append(r.values, v)
		return
	}
	if i := r.rnd.Int63n(r.count); i < int64(r.size) {
		r.values[i] = v
	}
}

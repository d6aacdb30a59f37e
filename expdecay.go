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
	"math/rand"
	"sync"
	"time"

	"github.com/google/btree"
)

const (
	// DefReservoirSize is the default number of samples an
	// ExpDecayReservoir retains. At this size the sample offers a 99.9%
	// confidence level with a 5% margin of error.
	DefReservoirSize = 1028

	// DefAlpha is the default decay factor. It biases the reservoir
	// heavily towards observations made in the last five minutes.
	DefAlpha = 0.015

	// rescalePeriod bounds how long priority keys may grow against a
	// fixed landmark before they are renormalized. exp(alpha*elapsed)
	// overflows float64 once elapsed passes roughly 47000s at the
	// default alpha; an hourly rescale keeps well clear of that.
	rescalePeriod = int64(time.Hour / time.Second)

	// Branching factor for the priority-ordered sample tree.
	sampleTreeDegree = 16
)

// expDecaySample is one retained observation keyed by its sampling
// priority. Samples are ordered by key alone, so inserting a sample
// whose key collides with a retained one overwrites it.
type expDecaySample struct {
	k float64 // priority, exp(alpha*elapsed)/u
	v float64 // observed value
}

func lessByPriority(a, b expDecaySample) bool { return a.k < b.k }

// ExpDecayReservoir is an exponentially-decaying random sample of a
// float64 stream. It uses Cormode et al.'s forward-decaying priority
// reservoir sampling to retain a bounded, statistically representative
// sample that is biased towards recent observations.
//
// See http://dimacs.rutgers.edu/~graham/pubs/papers/fwddecay.pdf —
// Cormode, Shkapenyuk, Srivastava, Xu: "Forward Decay: A Practical
// Time Decay Model for Streaming Systems" (ICDE '09).
type ExpDecayReservoir struct {
	mtx         sync.Mutex
	alpha       float64
	size        int
	count       int64
	start       int64 // decay landmark, Unix seconds
	nextRescale int64 // Unix seconds; advances monotonically
	samples     *btree.BTreeG[expDecaySample]
	rnd         *rand.Rand
	now         nowFunc
}

// NewExpDecayReservoir returns a reservoir retaining at most size
// samples, decaying at rate alpha. Use DefReservoirSize and DefAlpha
// unless you have measured reasons not to.
func NewExpDecayReservoir(size int, alpha float64) *ExpDecayReservoir {
	return newExpDecayReservoir(size, alpha, time.Now().UnixNano(), time.Now)
}

// NewSeededExpDecayReservoir is NewExpDecayReservoir with an explicit
// random seed. Two reservoirs with the same seed, size, and alpha fed
// the same observations at the same times retain identical samples,
// which makes sampling decisions replayable.
func NewSeededExpDecayReservoir(size int, alpha float64, seed int64) *ExpDecayReservoir {
	return newExpDecayReservoir(size, alpha, seed, time.Now)
}

func newExpDecayReservoir(size int, alpha float64, seed int64, now nowFunc) *ExpDecayReservoir {
	r := &ExpDecayReservoir{
		alpha:   alpha,
		size:    size,
		samples: btree.NewG(sampleTreeDegree, lessByPriority),
		rnd:     rand.New(rand.NewSource(seed)),
		now:     now,
	}
	r.reset(now().Unix())
	return r
}

// Clear discards all samples and moves the decay landmark to the
// present. The random state is retained, so a cleared reservoir
// continues the same deterministic draw sequence.
func (r *ExpDecayReservoir) Clear() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.samples.Clear(false)
	r.reset(r.now().Unix())
}

// reset rewinds counters and re-landmarks at t. Callers hold mtx (or
// own the reservoir exclusively, during construction).
func (r *ExpDecayReservoir) reset(t int64) {
	r.count = 0
	r.start = t
	r.nextRescale = t + rescalePeriod
}

// Size returns the number of samples a Snapshot would contain: the
// update count until the reservoir fills, its capacity afterwards.
func (r *ExpDecayReservoir) Size() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if r.count < int64(r.size) {
		return int(r.count)
	}
	return r.size
}

// Snapshot returns the retained sample values. It is read-only: no
// rescale happens here even if one is due, so repeated snapshots of a
// quiet reservoir are stable.
func (r *ExpDecayReservoir) Snapshot() *Snapshot {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	values := make([]float64, 0, r.samples.Len())
	r.samples.Ascend(func(s expDecaySample) bool {
		values = append(values, s.v)
		return true
	})
	return NewSnapshot(values)
}

// Update offers a new observation to the reservoir.
func (r *ExpDecayReservoir) Update(v float64) {
	r.update(v, r.now())
}

// update samples v as of time t. A method of its own so that tests can
// drive the reservoir with explicit timestamps.
func (r *ExpDecayReservoir) update(v float64, t time.Time) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	now := t.Unix()
	if now >= r.nextRescale {
		r.rescale(now)
	}

	// Priority grows exponentially with time since the landmark and is
	// jittered by an inverse uniform draw, so newer observations tend
	// to outrank older ones without ever guaranteeing it.
	elapsed := float64(now - r.start)
	u := r.rnd.Float64()
	for u == 0 { // Float64 yields [0,1); a zero draw would make the key +Inf
		u = r.rnd.Float64()
	}
	s := expDecaySample{k: math.Exp(r.alpha*elapsed) / u, v: v}

	r.count++
	if r.count <= int64(r.size) {
		r.samples.ReplaceOrInsert(s)
		return
	}

	// Full: the new sample displaces the lowest-priority one, but only
	// if it outranks it. A zero-capacity reservoir retains nothing.
	min, ok := r.samples.Min()
	if !ok {
		return
	}
	if s.k > min.k {
		if _, overwrote := r.samples.ReplaceOrInsert(s); !overwrote {
			r.samples.Delete(min)
		}
	}
}

// rescale re-landmarks the reservoir at now, multiplying every
// priority key by exp(-alpha*diff). All keys shrink by the same
// factor, so relative order and retention probabilities are preserved
// while the absolute magnitudes return to a range that cannot overflow
// before the next rescale.
//
// Rescaled keys may collide; colliding samples merge silently, exactly
// as a fresh insert with an equal key would overwrite. count is
// recomputed from the surviving samples.
func (r *ExpDecayReservoir) rescale(now int64) {
	factor := math.Exp(-r.alpha * float64(now-r.start))
	rescaled := btree.NewG(sampleTreeDegree, lessByPriority)
	r.samples.Ascend(func(s expDecaySample) bool {
		rescaled.ReplaceOrInsert(expDecaySample{k: s.k * factor, v: s.v})
		return true
	})
	r.samples = rescaled
	r.start = now
	r.count = int64(rescaled.Len())
	// Never shrink the window: a late rescale must not schedule the
	// following one early.
	if next := now + rescalePeriod; next > r.nextRescale {
		r.nextRescale = next
	}
}

// sampleLen reports the retained sample count, for tests asserting the
// capacity invariant directly.
func (r *ExpDecayReservoir) sampleLen() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.samples.Len()
}

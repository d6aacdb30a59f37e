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
	"sync/atomic"
)

// tickInterval is the fixed period over which EWMA instant rates are
// measured. Meters tick their averages once per elapsed interval.
const tickInterval = 5 // seconds

// An EWMA tracks an exponentially-weighted moving average of an event
// rate, in events per second. Events accumulate via Update; the
// average only moves when Tick is called, once per five-second
// interval (a Meter does this bookkeeping).
type EWMA struct {
	uncounted atomic.Int64

	mtx  sync.Mutex
	rate float64 // events per second
	init bool

	alpha float64
}

// NewEWMA returns an EWMA with the given smoothing constant.
func NewEWMA(alpha float64) *EWMA {
	return &EWMA{alpha: alpha}
}

// NewEWMA1 returns an EWMA equivalent to a UNIX one-minute load
// average when ticked every five seconds.
func NewEWMA1() *EWMA { return NewEWMA(ewmaAlpha(1)) }

// NewEWMA5 returns the five-minute equivalent of NewEWMA1.
func NewEWMA5() *EWMA { return NewEWMA(ewmaAlpha(5)) }

// NewEWMA15 returns the fifteen-minute equivalent of NewEWMA1.
func NewEWMA15() *EWMA { return NewEWMA(ewmaAlpha(15)) }

func ewmaAlpha(minutes float64) float64 {
	return 1 - math.Exp(-float64(tickInterval)/60/minutes)
}

// Update records n events for the interval in progress.
func (e *EWMA) Update(n int64) {
	e.uncounted.Add(n)
}

// Tick folds the events of the elapsed interval into the average. The
// first tick adopts the instant rate outright so a fresh EWMA does not
// spend minutes climbing from zero.
func (e *EWMA) Tick() {
	count := e.uncounted.Swap(0)
	instant := float64(count) / tickInterval

	e.mtx.Lock()
	defer e.mtx.Unlock()
	if e.init {
		e.rate += e.alpha * (instant - e.rate)
	} else {
		e.rate = instant
		e.init = true
	}
}

// Rate returns the moving average rate in events per second.
func (e *EWMA) Rate() float64 {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	return e.rate
}

// Clear resets the average to its initial state.
func (e *EWMA) Clear() {
	e.uncounted.Store(0)
	e.mtx.Lock()
	defer e.mtx.Unlock()
	e.rate = 0
	e.init = false
}

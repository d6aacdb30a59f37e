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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHistogram() *Histogram {
	// Reservoir large enough that snapshots are exact for these tests.
	return NewHistogram(NewSeededExpDecayReservoir(1000, DefAlpha, 1))
}

func TestHistogramEmpty(t *testing.T) {
	h := testHistogram()
	assert.Zero(t, h.Count())
	assert.Zero(t, h.Min())
	assert.Zero(t, h.Max())
	assert.Zero(t, h.Mean())
	assert.Zero(t, h.StdDev())
	assert.Zero(t, h.Size())
}

func TestHistogramAccumulators(t *testing.T) {
	h := testHistogram()
	for i := 1; i <= 10; i++ {
		h.Update(float64(i))
	}
	assert.Equal(t, int64(10), h.Count())
	assert.Equal(t, 1.0, h.Min())
	assert.Equal(t, 10.0, h.Max())
	assert.Equal(t, 55.0, h.Sum())
	assert.InDelta(t, 5.5, h.Mean(), 1e-12)
	assert.InDelta(t, 9.1666667, h.Variance(), 1e-6)
	assert.InDelta(t, 3.0276504, h.StdDev(), 1e-6)
}

func TestHistogramNegativeValues(t *testing.T) {
	h := testHistogram()
	h.Update(-5)
	h.Update(5)
	assert.Equal(t, -5.0, h.Min())
	assert.Equal(t, 5.0, h.Max())
	assert.Zero(t, h.Mean())
}

func TestHistogramSnapshotPercentiles(t *testing.T) {
	h := testHistogram()
	for i := 1; i <= 100; i++ {
		h.Update(float64(i))
	}
	s := h.Snapshot()
	require.Equal(t, 100, s.Size(), "all observations retained below reservoir capacity")
	assert.InDelta(t, 50.5, s.Median(), 1e-12)
	assert.InDelta(t, 99, s.Percentile(0.98), 1.0)
}

func TestHistogramAccumulatorsOutliveReservoir(t *testing.T) {
	// min/max/mean describe the whole stream even once the reservoir
	// has shed the early observations.
	h := NewHistogram(NewSeededExpDecayReservoir(10, DefAlpha, 1))
	h.Update(1000000)
	for i := 0; i < 500; i++ {
		h.Update(1)
	}
	assert.Equal(t, 1000000.0, h.Max())
	assert.Equal(t, int64(501), h.Count())
	assert.Equal(t, 10, h.Size())
}

func TestHistogramClear(t *testing.T) {
	h := testHistogram()
	for i := 0; i < 10; i++ {
		h.Update(float64(i))
	}
	h.Clear()
	assert.Zero(t, h.Count())
	assert.Zero(t, h.Min())
	assert.Zero(t, h.Max())
	assert.Zero(t, h.Mean())
	assert.Zero(t, h.Size())
	assert.Empty(t, h.Snapshot().Values())

	h.Update(3)
	assert.Equal(t, 3.0, h.Min())
	assert.Equal(t, 3.0, h.Max())
}

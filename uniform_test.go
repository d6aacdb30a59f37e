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

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestUniformReservoirBelowCapacity(t *testing.T) {
	r := NewSeededUniformReservoir(10, 1)
	for i := 1; i <= 3; i++ {
		r.Update(float64(i))
	}
	assert.Equal(t, 3, r.Size())
	if diff := cmp.Diff([]float64{1, 2, 3}, r.Snapshot().Values()); diff != "" {
		t.Errorf("unexpected sample (-want +got):\n%s", diff)
	}
}

func TestUniformReservoirBounded(t *testing.T) {
	r := NewSeededUniformReservoir(100, 1)
	for i := 0; i < 10000; i++ {
		r.Update(float64(i))
	}
	assert.Equal(t, 100, r.Size())
	for _, v := range r.Snapshot().Values() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 10000.0)
	}
}

func TestUniformReservoirDeterminism(t *testing.T) {
	a := NewSeededUniformReservoir(50, 99)
	b := NewSeededUniformReservoir(50, 99)
	for i := 0; i < 2000; i++ {
		a.Update(float64(i))
		b.Update(float64(i))
	}
	if diff := cmp.Diff(a.Snapshot().Values(), b.Snapshot().Values()); diff != "" {
		t.Errorf("identical seeds diverged (-a +b):\n%s", diff)
	}
}

func TestUniformReservoirClear(t *testing.T) {
	r := NewSeededUniformReservoir(10, 1)
	for i := 0; i < 20; i++ {
		r.Update(float64(i))
	}
	r.Clear()
	assert.Equal(t, 0, r.Size())
	assert.Empty(t, r.Snapshot().Values())
	r.Update(5)
	assert.Equal(t, 1, r.Size())
}

func TestUniformReservoirZeroCapacity(t *testing.T) {
	r := NewSeededUniformReservoir(0, 1)
	for i := 0; i < 10; i++ {
		r.Update(float64(i))
	}
	assert.Equal(t, 0, r.Size())
}

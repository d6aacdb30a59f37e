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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGauge(t *testing.T) {
	g := NewGauge()
	assert.Zero(t, g.Value())
	g.Set(47.11)
	assert.Equal(t, 47.11, g.Value())
	g.Set(-3)
	assert.Equal(t, -3.0, g.Value())
}

func TestGaugeAdd(t *testing.T) {
	g := NewGauge()
	g.Set(10)
	g.Add(2.5)
	g.Add(-5)
	assert.Equal(t, 7.5, g.Value())
}

func TestGaugeAddConcurrent(t *testing.T) {
	g := NewGauge()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				g.Add(0.5)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 4000.0, g.Value())
}

func TestGaugeFunc(t *testing.T) {
	v := 1.0
	g := NewGaugeFunc(func() float64 { return v })
	assert.Equal(t, 1.0, g.Value())
	v = 2.0
	assert.Equal(t, 2.0, g.Value())
}

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

import "sync/atomic"

// A Counter is a monotonically adjustable integer value.
type Counter struct {
	n atomic.Int64
}

// NewCounter returns a counter at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Inc increments the counter by n.
func (c *Counter) Inc(n int64) {
	c.n.Add(n)
}

// Dec decrements the counter by n.
func (c *Counter) Dec(n int64) {
	c.n.Add(-n)
}

// Count returns the current value.
func (c *Counter) Count() int64 {
	return c.n.Load()
}

// Clear resets the counter to zero.
func (c *Counter) Clear() {
	c.n.Store(0)
}

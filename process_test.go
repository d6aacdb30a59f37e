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

func TestProcessSampler(t *testing.T) {
	r := NewRegistry()
	s, err := NewProcessSampler(r)
	if err != nil {
		t.Skipf("process stats unavailable on this system: %v", err)
	}

	require.NoError(t, s.Sample())

	rss, ok := r.Get("process.resident_memory_bytes").(*Gauge)
	require.True(t, ok)
	assert.Greater(t, rss.Value(), 0.0)

	fds, ok := r.Get("process.open_fds").(*Gauge)
	require.True(t, ok)
	assert.Greater(t, fds.Value(), 0.0)
}

func TestProcessSamplerDuplicateRegistration(t *testing.T) {
	r := NewRegistry()
	if _, err := NewProcessSampler(r); err != nil {
		t.Skipf("process stats unavailable on this system: %v", err)
	}
	_, err := NewProcessSampler(r)
	var dup DuplicateMetricError
	assert.ErrorAs(t, err, &dup)
}

// Copyright 2024 Chunkdb, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindReturnsErrNoConfigWhenAbsent(t *testing.T) {
	_, err := Find(t.TempDir())
	require.ErrorIs(t, err, ErrNoConfig)
}

func TestWriteToThenFindRoundTrips(t *testing.T) {
	dir := t.TempDir()
	want := &Config{
		DefaultChunkCapacity: 5000,
		BootstrapTables:      []string{"orders", "customers"},
	}
	path, err := want.WriteTo(dir)
	require.NoError(t, err)
	require.FileExists(t, path)

	got, err := Find(dir)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDefaultHasUnboundedCapacity(t *testing.T) {
	d := Default()
	require.Equal(t, uint32(0), d.DefaultChunkCapacity)
	require.Empty(t, d.BootstrapTables)
}

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

package chunk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chunkdb/chunkdb/segment"
	"github.com/chunkdb/chunkdb/types"
)

func newTestChunk() *Chunk {
	c := New()
	c.AddSegment(segment.NewValue(types.I32))
	c.AddSegment(segment.NewValue(types.Str))
	return c
}

func TestChunkAppendAndSize(t *testing.T) {
	c := newTestChunk()
	require.Equal(t, 0, c.Size())

	require.NoError(t, c.Append([]types.Value{types.NewI32(1), types.NewStr("a")}))
	require.NoError(t, c.Append([]types.Value{types.NewI32(2), types.NewStr("b")}))
	require.Equal(t, 2, c.Size())

	seg0, err := c.GetSegment(0)
	require.NoError(t, err)
	v, err := seg0.Get(1)
	require.NoError(t, err)
	require.Equal(t, int32(2), v.I32())
}

func TestChunkAppendArityMismatch(t *testing.T) {
	c := newTestChunk()
	err := c.Append([]types.Value{types.NewI32(1)})
	require.Error(t, err)
}

func TestChunkGetSegmentOutOfRange(t *testing.T) {
	c := newTestChunk()
	_, err := c.GetSegment(-1)
	require.Error(t, err)
	_, err = c.GetSegment(2)
	require.Error(t, err)
}

func TestChunkSetSegment(t *testing.T) {
	c := newTestChunk()
	require.NoError(t, c.Append([]types.Value{types.NewI32(5), types.NewStr("x")}))

	dict, err := segment.Compress(mustGetSegment(t, c, 0))
	require.NoError(t, err)
	require.NoError(t, c.SetSegment(0, dict))

	v, err := func() (types.Value, error) {
		seg, err := c.GetSegment(0)
		require.NoError(t, err)
		return seg.Get(0)
	}()
	require.NoError(t, err)
	require.Equal(t, int32(5), v.I32())
}

func TestChunkEmptySizeIsZero(t *testing.T) {
	c := New()
	require.Equal(t, 0, c.Size())
	require.Equal(t, 0, c.SegmentCount())
}

func mustGetSegment(t *testing.T, c *Chunk, i int) segment.Segment {
	t.Helper()
	seg, err := c.GetSegment(i)
	require.NoError(t, err)
	return seg
}

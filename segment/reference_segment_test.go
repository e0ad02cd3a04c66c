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

package segment

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chunkdb/chunkdb/rowid"
	"github.com/chunkdb/chunkdb/types"
)

// fakeBaseTable is a minimal BaseTableView stand-in, single chunk, one
// column, used to unit-test ReferenceSegment without importing package
// table (which itself imports segment).
type fakeBaseTable struct {
	elemType types.ElementType
	col      Segment
}

func (f *fakeBaseTable) ChunkCount() int { return 1 }
func (f *fakeBaseTable) ColumnElementType(col uint16) types.ElementType {
	return f.elemType
}
func (f *fakeBaseTable) ChunkSegment(chunkID int, col uint16) (Segment, error) {
	return f.col, nil
}

func TestReferenceSegmentGetIndirectsThroughPositions(t *testing.T) {
	base := &fakeBaseTable{elemType: types.I32, col: buildValueSegment(t, []int32{10, 20, 30, 40})}

	positions := rowid.NewPositionList()
	positions.Append(rowid.ID{ChunkID: 0, Offset: 3})
	positions.Append(rowid.ID{ChunkID: 0, Offset: 0})
	positions.Freeze()

	ref := NewReferenceSegment(base, 0, positions)
	require.Equal(t, 2, ref.Size())
	require.Equal(t, types.I32, ref.ElementType())

	v0, err := ref.Get(0)
	require.NoError(t, err)
	require.Equal(t, int32(40), v0.I32())

	v1, err := ref.Get(1)
	require.NoError(t, err)
	require.Equal(t, int32(10), v1.I32())
}

func TestReferenceSegmentGetOutOfRange(t *testing.T) {
	base := &fakeBaseTable{elemType: types.I32, col: buildValueSegment(t, []int32{1})}
	positions := rowid.NewPositionList()
	positions.Append(rowid.ID{ChunkID: 0, Offset: 0})
	positions.Freeze()

	ref := NewReferenceSegment(base, 0, positions)
	_, err := ref.Get(-1)
	require.Error(t, err)
	_, err = ref.Get(1)
	require.Error(t, err)
}

func TestReferenceSegmentAppendFails(t *testing.T) {
	base := &fakeBaseTable{elemType: types.I32, col: buildValueSegment(t, []int32{1})}
	positions := rowid.NewPositionList()
	positions.Freeze()

	ref := NewReferenceSegment(base, 0, positions)
	err := ref.Append(types.NewI32(1))
	require.Error(t, err)
}

func TestReferenceSegmentAccessors(t *testing.T) {
	base := &fakeBaseTable{elemType: types.Str, col: NewValue(types.Str)}
	positions := rowid.NewPositionList()
	positions.Freeze()

	ref := NewReferenceSegment(base, 2, positions)
	require.Same(t, base, ref.ReferencedTable().(*fakeBaseTable))
	require.Equal(t, uint16(2), ref.ReferencedColumn())
	require.Same(t, positions, ref.PosList())
}

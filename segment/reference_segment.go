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
	"github.com/pkg/errors"

	"github.com/chunkdb/chunkdb/d"
	"github.com/chunkdb/chunkdb/rowid"
	"github.com/chunkdb/chunkdb/types"
)

// ReferenceSegment projects a shared position list over a column of a
// base table. It owns no values of its own; every read indirects
// through the position list into the referenced table.
type ReferenceSegment struct {
	refTable  BaseTableView
	refColumn uint16
	positions *rowid.PositionList
}

// NewReferenceSegment builds a reference segment over column refColumn
// of refTable, sharing positions. refTable must be a base table (spec
// the scan enforces this by unwrapping one level before calling
// here (see package operator).
func NewReferenceSegment(refTable BaseTableView, refColumn uint16, positions *rowid.PositionList) *ReferenceSegment {
	return &ReferenceSegment{refTable: refTable, refColumn: refColumn, positions: positions}
}

func (s *ReferenceSegment) Size() int { return s.positions.Len() }

func (s *ReferenceSegment) ElementType() types.ElementType {
	return s.refTable.ColumnElementType(s.refColumn)
}

func (s *ReferenceSegment) Get(i int) (types.Value, error) {
	if i < 0 || i >= s.positions.Len() {
		return types.Value{}, errors.Wrapf(d.ErrIndexOutOfRange, "reference segment offset %d (size %d)", i, s.positions.Len())
	}
	pos := s.positions.At(i)
	seg, err := s.refTable.ChunkSegment(int(pos.ChunkID), s.refColumn)
	if err != nil {
		return types.Value{}, errors.Wrapf(err, "reading referenced chunk %d column %d", pos.ChunkID, s.refColumn)
	}
	return seg.Get(int(pos.Offset))
}

// Append always fails: reference segments own no values.
func (s *ReferenceSegment) Append(types.Value) error {
	return errors.Wrap(d.ErrImmutableSegment, "append into reference segment")
}

// PosList exposes the shared position list.
func (s *ReferenceSegment) PosList() *rowid.PositionList { return s.positions }

// ReferencedTable exposes the shared handle to the base table.
func (s *ReferenceSegment) ReferencedTable() BaseTableView { return s.refTable }

// ReferencedColumn reports the referenced column index.
func (s *ReferenceSegment) ReferencedColumn() uint16 { return s.refColumn }

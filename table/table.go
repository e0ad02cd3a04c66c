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

// Package table implements the table: column schema, ordered chunks,
// target chunk capacity, row append, column add, and chunk
// compression.
package table

import (
	"github.com/pkg/errors"

	"github.com/chunkdb/chunkdb/chunk"
	"github.com/chunkdb/chunkdb/d"
	"github.com/chunkdb/chunkdb/segment"
	"github.com/chunkdb/chunkdb/types"
)

// Table is the column-schema-plus-chunks entity.
// A zero targetCapacity means "unbounded (single chunk)."
type Table struct {
	columnNames    []string
	columnTypes    []types.ElementType
	chunks         []*chunk.Chunk
	targetCapacity uint32
	readOnly       bool
}

// New creates a table with the given target chunk capacity (0 means
// unbounded) and one initial empty chunk, no columns.
func New(targetCapacity uint32) *Table {
	return &Table{
		chunks:         []*chunk.Chunk{chunk.New()},
		targetCapacity: targetCapacity,
	}
}

// NewWithChunks builds a table directly from a prebuilt schema and
// chunk set, with an unbounded target capacity. Used by the table
// scan to assemble its single-chunk, all-reference-segment result
// table, where the normal New+AddColumn+Append lifecycle doesn't
// apply.
func NewWithChunks(columnNames []string, columnTypes []types.ElementType, chunks []*chunk.Chunk) *Table {
	names := make([]string, len(columnNames))
	copy(names, columnNames)
	colTypes := make([]types.ElementType, len(columnTypes))
	copy(colTypes, columnTypes)
	return &Table{
		columnNames: names,
		columnTypes: colTypes,
		chunks:      chunks,
	}
}

// ColumnCount reports the number of columns in the schema.
func (t *Table) ColumnCount() int { return len(t.columnNames) }

// ColumnNames returns the ordered column names.
func (t *Table) ColumnNames() []string {
	out := make([]string, len(t.columnNames))
	copy(out, t.columnNames)
	return out
}

// ColumnTypes returns the ordered column element types.
func (t *Table) ColumnTypes() []types.ElementType {
	out := make([]types.ElementType, len(t.columnTypes))
	copy(out, t.columnTypes)
	return out
}

// ColumnElementType reports the element type of column col. col is
// assumed already validated by the caller (part of segment.BaseTableView's
// contract with reference segments); an out-of-range col is a
// programmer error and panics via d.Chk.
func (t *Table) ColumnElementType(col uint16) types.ElementType {
	d.Chk(int(col) < len(t.columnTypes), "ColumnElementType: column index out of range")
	return t.columnTypes[col]
}

// ColumnIDByName resolves name to its column index via linear search.
func (t *Table) ColumnIDByName(name string) (uint16, error) {
	for i, n := range t.columnNames {
		if n == name {
			return uint16(i), nil
		}
	}
	return 0, errors.Wrapf(d.ErrUnknownColumn, "column %q", name)
}

// ChunkCount reports the number of chunks.
func (t *Table) ChunkCount() int { return len(t.chunks) }

// GetChunk returns the chunk at index i.
func (t *Table) GetChunk(i int) (*chunk.Chunk, error) {
	if i < 0 || i >= len(t.chunks) {
		return nil, errors.Wrapf(d.ErrIndexOutOfRange, "chunk %d (have %d)", i, len(t.chunks))
	}
	return t.chunks[i], nil
}

// ChunkSegment returns the segment at column col of chunk chunkID,
// satisfying segment.BaseTableView for reference segments.
func (t *Table) ChunkSegment(chunkID int, col uint16) (segment.Segment, error) {
	c, err := t.GetChunk(chunkID)
	if err != nil {
		return nil, err
	}
	return c.GetSegment(int(col))
}

// RowCount sums every chunk's size (spec's adopted definition: not
// capacity*(chunks-1)+tail, which misbehaves once chunks are not all
// exactly full, e.g. after compression of a short chunk).
func (t *Table) RowCount() uint64 {
	var n uint64
	for _, c := range t.chunks {
		n += uint64(c.Size())
	}
	return n
}

// MarkReadOnly declares the table read-only: it is now the input to an
// operator and callers must not mutate it for the operator's lifetime
// This is a debug contract, not an enforced lock; Append
// asserts against it.
func (t *Table) MarkReadOnly() { t.readOnly = true }

// IsReadOnly reports whether MarkReadOnly has been called.
func (t *Table) IsReadOnly() bool { return t.readOnly }

// AddColumnDefinition appends (name, elemType) to the schema only; it
// does not touch any chunk's segments, leaving the table temporarily
// invalid for row append until the caller extends every chunk (see
// AddColumn, which does both atomically).
func (t *Table) AddColumnDefinition(name string, elemType types.ElementType) {
	t.columnNames = append(t.columnNames, name)
	t.columnTypes = append(t.columnTypes, elemType)
}

// AddColumn adds a new column, failing with d.ErrNonEmptyAddColumn if
// the table already has rows. Appends a fresh value segment of
// elemType to every existing chunk.
func (t *Table) AddColumn(name string, elemType types.ElementType) error {
	if t.RowCount() > 0 {
		return errors.Wrapf(d.ErrNonEmptyAddColumn, "add_column %q on table with %d rows", name, t.RowCount())
	}
	t.AddColumnDefinition(name, elemType)
	for _, c := range t.chunks {
		c.AddSegment(segment.NewValue(elemType))
	}
	return nil
}

// Append adds one row. If the target chunk capacity is exceeded, a
// fresh empty chunk is grown from the schema first.
func (t *Table) Append(row []types.Value) error {
	d.Chk(!t.readOnly, "append to a table marked read-only")

	tail := t.chunks[len(t.chunks)-1]
	if t.targetCapacity > 0 && uint32(tail.Size()) >= t.targetCapacity {
		tail = t.growChunk()
	}
	if err := tail.Append(row); err != nil {
		return errors.Wrap(err, "table append")
	}
	return nil
}

func (t *Table) growChunk() *chunk.Chunk {
	c := chunk.New()
	for _, elemType := range t.columnTypes {
		c.AddSegment(segment.NewValue(elemType))
	}
	t.chunks = append(t.chunks, c)
	return c
}

// CompressChunk replaces every segment of chunk chunkID with a
// dictionary segment built from its current value segment. After
// compression, no further appends to that chunk succeed (dictionary
// segments reject Append with d.ErrImmutableSegment).
func (t *Table) CompressChunk(chunkID int) error {
	c, err := t.GetChunk(chunkID)
	if err != nil {
		return err
	}
	for col := 0; col < c.SegmentCount(); col++ {
		seg, err := c.GetSegment(col)
		if err != nil {
			return err
		}
		compressed, err := segment.Compress(seg)
		if err != nil {
			return errors.Wrapf(err, "compressing chunk %d column %d", chunkID, col)
		}
		if err := c.SetSegment(col, compressed); err != nil {
			return err
		}
	}
	return nil
}

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

// Package chunk implements the horizontal partition of a table: an
// ordered sequence of segments, one per column, all of equal length.
package chunk

import (
	"github.com/pkg/errors"

	"github.com/chunkdb/chunkdb/d"
	"github.com/chunkdb/chunkdb/segment"
	"github.com/chunkdb/chunkdb/types"
)

// Chunk is an ordered sequence of segments. Invariant: either empty
// (no segments) or every segment has equal length, the chunk's size.
type Chunk struct {
	segments []segment.Segment
}

// New returns an empty chunk with no segments.
func New() *Chunk {
	return &Chunk{}
}

// AddSegment appends seg as the chunk's next column. Callers must add
// every column's segment before appending rows.
func (c *Chunk) AddSegment(seg segment.Segment) {
	c.segments = append(c.segments, seg)
}

// SegmentCount reports the number of column segments.
func (c *Chunk) SegmentCount() int { return len(c.segments) }

// GetSegment returns the segment at column index i.
func (c *Chunk) GetSegment(i int) (segment.Segment, error) {
	if i < 0 || i >= len(c.segments) {
		return nil, errors.Wrapf(d.ErrIndexOutOfRange, "chunk segment %d (have %d)", i, len(c.segments))
	}
	return c.segments[i], nil
}

// SetSegment replaces the segment at column index i, used by
// compression to swap a value segment for its dictionary-encoded
// replacement in place.
func (c *Chunk) SetSegment(i int, seg segment.Segment) error {
	if i < 0 || i >= len(c.segments) {
		return errors.Wrapf(d.ErrIndexOutOfRange, "chunk segment %d (have %d)", i, len(c.segments))
	}
	c.segments[i] = seg
	return nil
}

// Size is the chunk's row count: 0 when it has no segments, otherwise
// the length of segment 0 (every segment is the same length).
func (c *Chunk) Size() int {
	if len(c.segments) == 0 {
		return 0
	}
	return c.segments[0].Size()
}

// Append adds one row, appending element-wise to every segment. Fails
// with d.ErrArityMismatch unless len(row) equals the segment count.
func (c *Chunk) Append(row []types.Value) error {
	if len(row) != len(c.segments) {
		return errors.Wrapf(d.ErrArityMismatch, "row has %d values, chunk has %d segments", len(row), len(c.segments))
	}
	for i, v := range row {
		if err := c.segments[i].Append(v); err != nil {
			return errors.Wrapf(err, "appending column %d", i)
		}
	}
	return nil
}

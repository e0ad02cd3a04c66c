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

// Package segment implements the polymorphic column-segment capability:
// value, dictionary, and reference segments behind one uniform
// interface, closed over the element-type tag via Go generics rather
// than an abstract base class and runtime type identification.
package segment

import "github.com/chunkdb/chunkdb/types"

// Segment is the uniform capability every column segment exposes,
// regardless of encoding.
type Segment interface {
	// Size reports the segment's row count.
	Size() int
	// Get reads the element at offset i.
	Get(i int) (types.Value, error)
	// Append adds a value. Fails with d.ErrImmutableSegment on
	// dictionary and reference segments.
	Append(v types.Value) error
	// ElementType reports the segment's element-type tag.
	ElementType() types.ElementType
}

// Element is the closed set of Go types a value/dictionary segment
// may be instantiated over, mirroring types.ElementType.
type Element interface {
	int32 | int64 | float32 | float64 | string
}

// BaseTableView is the minimal read surface a reference segment needs
// from the table it projects over. table.Table implements it; segment
// never imports package table, breaking what would otherwise be an
// import cycle (table depends on segment for its chunks' contents).
type BaseTableView interface {
	ChunkCount() int
	ColumnElementType(col uint16) types.ElementType
	ChunkSegment(chunkID int, col uint16) (Segment, error)
}

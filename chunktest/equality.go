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

// Package chunktest provides table-equality helpers used only by
// tests: comparing two result tables for the same schema and the same
// multiset of row values, independent of how either table's chunks
// happen to be encoded. This is what lets a test assert
// encoding-independence of scan results.
package chunktest

import (
	"fmt"
	"sort"

	"github.com/chunkdb/chunkdb/table"
	"github.com/chunkdb/chunkdb/types"
)

// row is a column-major row rendered to its external surface string,
// used only as a comparison key.
type row []string

// RowValues renders table t's full contents, row-major, into a slice
// of rows of external surface strings. Column order follows t's
// schema.
func RowValues(t *table.Table) ([]row, error) {
	rows := make([]row, 0, t.RowCount())
	for c := 0; c < t.ChunkCount(); c++ {
		chunk, err := t.GetChunk(c)
		if err != nil {
			return nil, err
		}
		for r := 0; r < chunk.Size(); r++ {
			rendered := make(row, chunk.SegmentCount())
			for col := 0; col < chunk.SegmentCount(); col++ {
				seg, err := chunk.GetSegment(col)
				if err != nil {
					return nil, err
				}
				v, err := seg.Get(r)
				if err != nil {
					return nil, err
				}
				rendered[col] = renderValue(v)
			}
			rows = append(rows, rendered)
		}
	}
	return rows, nil
}

func renderValue(v types.Value) string {
	switch v.Type() {
	case types.I32:
		return fmt.Sprintf("%d", v.I32())
	case types.I64:
		return fmt.Sprintf("%d", v.I64())
	case types.F32:
		return fmt.Sprintf("%g", v.F32())
	case types.F64:
		return fmt.Sprintf("%g", v.F64())
	default:
		return v.Str()
	}
}

// SchemasEqual reports whether a and b have the same column names and
// element types, in order. Element types must match exactly; use
// SchemasEquivalent to treat {int,long} and {float,double} as equal.
func SchemasEqual(a, b *table.Table) bool {
	if a.ColumnCount() != b.ColumnCount() {
		return false
	}
	an, bn := a.ColumnNames(), b.ColumnNames()
	at, bt := a.ColumnTypes(), b.ColumnTypes()
	for i := range an {
		if an[i] != bn[i] || at[i] != bt[i] {
			return false
		}
	}
	return true
}

// SchemasEquivalent is SchemasEqual loosened to the surface
// equivalence classes {int,long} and {float,double}.
func SchemasEquivalent(a, b *table.Table) bool {
	if a.ColumnCount() != b.ColumnCount() {
		return false
	}
	an, bn := a.ColumnNames(), b.ColumnNames()
	at, bt := a.ColumnTypes(), b.ColumnTypes()
	for i := range an {
		if an[i] != bn[i] || !types.SameEquivalenceClass(at[i], bt[i]) {
			return false
		}
	}
	return true
}

// RowEquivalent reports whether a and b contain the same multiset of
// rows, ignoring order: the property a chunk-encoding-independent scan
// result must satisfy.
func RowEquivalent(a, b *table.Table) (bool, error) {
	ra, err := RowValues(a)
	if err != nil {
		return false, err
	}
	rb, err := RowValues(b)
	if err != nil {
		return false, err
	}
	if len(ra) != len(rb) {
		return false, nil
	}
	sa := renderedRows(ra)
	sb := renderedRows(rb)
	sort.Strings(sa)
	sort.Strings(sb)
	for i := range sa {
		if sa[i] != sb[i] {
			return false, nil
		}
	}
	return true, nil
}

func renderedRows(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = fmt.Sprintf("%v", []string(r))
	}
	return out
}

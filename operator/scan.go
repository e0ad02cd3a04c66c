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

package operator

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/chunkdb/chunkdb/attrvec"
	"github.com/chunkdb/chunkdb/chunk"
	"github.com/chunkdb/chunkdb/d"
	"github.com/chunkdb/chunkdb/rowid"
	"github.com/chunkdb/chunkdb/segment"
	"github.com/chunkdb/chunkdb/table"
	"github.com/chunkdb/chunkdb/types"
)

// TableScanOperator is the engine's single relational operator: a
// predicate-driven table scan. It dispatches per chunk on the
// concrete segment encoding and materialises a result table whose
// segments are all reference segments pointing back into the
// originally scanned base table.
type TableScanOperator struct {
	base
	input  Operator
	column uint16
	op     ScanType
	value  types.Value
}

// NewTableScan builds a scan of column over input, evaluating op
// against value.
func NewTableScan(input Operator, column uint16, op ScanType, value types.Value) *TableScanOperator {
	return &TableScanOperator{base: newBase(), input: input, column: column, op: op, value: value}
}

func (s *TableScanOperator) Execute(ctx context.Context) error {
	if s.executed {
		return nil
	}
	s.executed = true
	s.output, s.err = s.run(ctx)
	return s.err
}

func (s *TableScanOperator) run(ctx context.Context) (*table.Table, error) {
	if err := s.input.Execute(ctx); err != nil {
		return nil, errors.Wrap(err, "executing scan input")
	}
	tIn, err := s.input.GetOutput()
	if err != nil {
		return nil, errors.Wrap(err, "reading scan input output")
	}

	if int(s.column) >= tIn.ColumnCount() {
		return nil, errors.Wrapf(d.ErrIndexOutOfRange, "scan column %d (table has %d columns)", s.column, tIn.ColumnCount())
	}
	elemType := tIn.ColumnTypes()[s.column]
	if s.value.Type() != elemType {
		return nil, errors.Wrapf(d.ErrTypeMismatch, "scan value type %s does not match column type %s", s.value.Type(), elemType)
	}
	target, err := s.value.Cast(elemType)
	if err != nil {
		return nil, errors.Wrap(err, "casting scan value")
	}

	plist := rowid.NewPositionList()
	var refTable segment.BaseTableView = tIn
	unwrapped := false

	for chunkID := 0; chunkID < tIn.ChunkCount(); chunkID++ {
		seg, err := tIn.ChunkSegment(chunkID, s.column)
		if err != nil {
			return nil, err
		}

		before := plist.Len()
		if ref, ok := seg.(*segment.ReferenceSegment); ok {
			base := ref.ReferencedTable()
			if !unwrapped {
				refTable = base
				unwrapped = true
			} else if !sameBaseTable(refTable, base) {
				return nil, errors.Wrapf(d.ErrHeterogeneousReferenceInput, "chunk %d", chunkID)
			}
			if err := s.scanReferenceChunk(ref, elemType, target, plist); err != nil {
				return nil, err
			}
		} else {
			if err := s.scanDirectChunk(seg, elemType, target, uint32(chunkID), plist); err != nil {
				return nil, err
			}
		}

		logrus.WithFields(logrus.Fields{
			"operator": "table_scan",
			"id":       s.id,
			"chunk":    chunkID,
			"encoding": segmentKind(seg),
			"matches":  plist.Len() - before,
		}).Debug("operator: scanned chunk")
	}

	plist.Freeze()

	names := tIn.ColumnNames()
	colTypes := tIn.ColumnTypes()
	resultChunk := chunk.New()
	for c := range names {
		resultChunk.AddSegment(segment.NewReferenceSegment(refTable, uint16(c), plist))
	}
	out := table.NewWithChunks(names, colTypes, []*chunk.Chunk{resultChunk})

	logrus.WithFields(logrus.Fields{
		"operator": "table_scan",
		"id":       s.id,
		"op":       s.op,
		"column":   s.column,
		"rows":     out.RowCount(),
	}).Info("operator: executed")

	return out, nil
}

func segmentKind(seg segment.Segment) string {
	switch seg.(type) {
	case *segment.ReferenceSegment:
		return "reference"
	default:
		return "direct"
	}
}

func sameBaseTable(a, b segment.BaseTableView) bool { return a == b }

// scanDirectChunk dispatches a value or dictionary segment to its
// element-typed, width-specialised scan loop. Dispatch happens once
// per chunk, never per element.
func (s *TableScanOperator) scanDirectChunk(seg segment.Segment, elemType types.ElementType, target types.Value, chunkID uint32, plist *rowid.PositionList) error {
	switch vs := seg.(type) {
	case *segment.ValueSegment[int32]:
		scanValue(vs, segment.ValueAs[int32](elemType, target), s.op, chunkID, plist)
	case *segment.ValueSegment[int64]:
		scanValue(vs, segment.ValueAs[int64](elemType, target), s.op, chunkID, plist)
	case *segment.ValueSegment[float32]:
		scanValue(vs, segment.ValueAs[float32](elemType, target), s.op, chunkID, plist)
	case *segment.ValueSegment[float64]:
		scanValue(vs, segment.ValueAs[float64](elemType, target), s.op, chunkID, plist)
	case *segment.ValueSegment[string]:
		scanValue(vs, segment.ValueAs[string](elemType, target), s.op, chunkID, plist)
	case *segment.DictionarySegment[int32]:
		scanDictionary(vs, segment.ValueAs[int32](elemType, target), s.op, chunkID, plist)
	case *segment.DictionarySegment[int64]:
		scanDictionary(vs, segment.ValueAs[int64](elemType, target), s.op, chunkID, plist)
	case *segment.DictionarySegment[float32]:
		scanDictionary(vs, segment.ValueAs[float32](elemType, target), s.op, chunkID, plist)
	case *segment.DictionarySegment[float64]:
		scanDictionary(vs, segment.ValueAs[float64](elemType, target), s.op, chunkID, plist)
	case *segment.DictionarySegment[string]:
		scanDictionary(vs, segment.ValueAs[string](elemType, target), s.op, chunkID, plist)
	default:
		return errors.Errorf("scan: unsupported segment concrete type %T", seg)
	}
	return nil
}

// scanValue is the value-segment linear scan:
// one monomorphic loop per element type, no virtual dispatch or
// boxing in the hot path.
func scanValue[T segment.Element](vs *segment.ValueSegment[T], target T, op ScanType, chunkID uint32, plist *rowid.PositionList) {
	n := vs.Size()
	for i := 0; i < n; i++ {
		if matchesT(op, vs.ValueAt(i), target) {
			plist.Append(rowid.ID{ChunkID: chunkID, Offset: uint32(i)})
		}
	}
}

// scanDictionary is the dictionary fast-path: a single
// lower_bound binary search resolves the search value to a dictionary
// index (or INVALID_ID), then the emission predicate runs as a
// width-specialised loop over the attribute vector.
func scanDictionary[T segment.Element](ds *segment.DictionarySegment[T], target T, op ScanType, chunkID uint32, plist *rowid.PositionList) {
	vid := ds.LowerBound(target)
	attrs := ds.AttributeVector()
	invalid := attrvec.InvalidID(attrs.Width())
	contains := vid != invalid && ds.ValueByID(vid) == target

	switch attrs.Width() {
	case 1:
		raw, _ := attrvec.Raw1(attrs)
		scanAttrWidth(raw, uint8(vid), contains, op, chunkID, plist)
	case 2:
		raw, _ := attrvec.Raw2(attrs)
		scanAttrWidth(raw, uint16(vid), contains, op, chunkID, plist)
	case 4:
		raw, _ := attrvec.Raw4(attrs)
		scanAttrWidth(raw, vid, contains, op, chunkID, plist)
	default:
		d.Panic("scanDictionary: unsupported attribute-vector width")
	}
}

func scanAttrWidth[T attrWidth](raw []T, vid T, contains bool, op ScanType, chunkID uint32, plist *rowid.PositionList) {
	for i, a := range raw {
		if matchesAttr(op, contains, a, vid) {
			plist.Append(rowid.ID{ChunkID: chunkID, Offset: uint32(i)})
		}
	}
}

// scanReferenceChunk walks a reference segment's position list
// grouped by source chunk, re-reading the original segment in the
// base table once per group and applying op directly to each decoded
// value. Matching original row IDs are appended
// verbatim, never rewritten.
func (s *TableScanOperator) scanReferenceChunk(ref *segment.ReferenceSegment, elemType types.ElementType, target types.Value, plist *rowid.PositionList) error {
	baseTable := ref.ReferencedTable()
	refCol := ref.ReferencedColumn()

	for _, group := range ref.PosList().GroupByChunk() {
		origSeg, err := baseTable.ChunkSegment(int(group.ChunkID), refCol)
		if err != nil {
			return errors.Wrapf(err, "reading base chunk %d column %d", group.ChunkID, refCol)
		}
		for _, offset := range group.Offsets {
			val, err := origSeg.Get(int(offset))
			if err != nil {
				return errors.Wrapf(err, "reading base chunk %d offset %d", group.ChunkID, offset)
			}
			if applyOp(s.op, val, target) {
				plist.Append(rowid.ID{ChunkID: group.ChunkID, Offset: offset})
			}
		}
	}
	return nil
}

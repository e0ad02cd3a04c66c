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

// Package rowid defines the row identifier and the position list the
// table scan produces and every reference segment of its result
// shares.
package rowid

// ID is the canonical reference to a logical row within a table: a
// (chunk index, chunk offset) pair.
type ID struct {
	ChunkID uint32
	Offset  uint32
}

// Less orders IDs by (ChunkID, Offset), the ascending order a scan's
// position list must respect.
func (r ID) Less(o ID) bool {
	if r.ChunkID != o.ChunkID {
		return r.ChunkID < o.ChunkID
	}
	return r.Offset < o.Offset
}

// PositionList is an ordered sequence of row identifiers. A scan
// builds one uniquely, appending as it goes; once built it is wrapped
// read-only and published to every reference segment of the result
// table. Nothing mutates it after Freeze.
type PositionList struct {
	ids    []ID
	frozen bool
}

// NewPositionList returns an empty, appendable position list.
func NewPositionList() *PositionList {
	return &PositionList{}
}

// Append adds a row identifier. Panics if the list has been frozen.
func (p *PositionList) Append(id ID) {
	if p.frozen {
		panic("rowid: append to frozen position list")
	}
	p.ids = append(p.ids, id)
}

// Freeze marks the list read-only. Called once, by the scan, right
// before the list is shared across the result table's reference
// segments.
func (p *PositionList) Freeze() {
	p.frozen = true
}

// Len reports the number of row identifiers.
func (p *PositionList) Len() int { return len(p.ids) }

// At returns the row identifier at offset i.
func (p *PositionList) At(i int) ID { return p.ids[i] }

// GroupByChunk returns the entries of p grouped by ChunkID, in the
// order chunks first appear. Used by the reference-segment scan path
// to batch offsets per source chunk before re-reading the base table.
func (p *PositionList) GroupByChunk() []ChunkGroup {
	groups := make([]ChunkGroup, 0)
	index := make(map[uint32]int)
	for _, id := range p.ids {
		gi, ok := index[id.ChunkID]
		if !ok {
			gi = len(groups)
			index[id.ChunkID] = gi
			groups = append(groups, ChunkGroup{ChunkID: id.ChunkID})
		}
		groups[gi].Offsets = append(groups[gi].Offsets, id.Offset)
	}
	return groups
}

// ChunkGroup is one source chunk's worth of offsets drawn from a
// position list.
type ChunkGroup struct {
	ChunkID uint32
	Offsets []uint32
}

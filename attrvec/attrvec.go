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

// Package attrvec implements the fixed-width attribute vector: an
// ordered sequence of unsigned dictionary identifiers addressable by
// offset, in one of three concrete byte widths (1, 2, 4). Picking the
// narrowest width that fits a dictionary's cardinality is what makes
// dictionary compression worth doing; the three concrete types below
// let the scan dispatch to one monomorphic loop per width instead of
// paying virtual-call overhead per element.
package attrvec

import "github.com/chunkdb/chunkdb/d"

// Vector is the uniform capability shared by all three widths.
type Vector interface {
	Get(i int) uint32
	Set(i int, id uint32)
	Size() int
	Width() int
}

// InvalidID is the all-ones identifier for the given byte width: the
// sentinel meaning "no such dictionary entry." Narrowing to a smaller
// width truncates 2^32-1 down to 2^(8*width)-1 at every width, which
// is exactly the value this function returns.
func InvalidID(width int) uint32 {
	switch width {
	case 1:
		return 1<<8 - 1
	case 2:
		return 1<<16 - 1
	case 4:
		return 1<<32 - 1
	default:
		d.Panic("invalid attribute-vector width")
		return 0
	}
}

// WidthFor returns the narrowest width in {1,2,4} bytes such that
// cardinality < 2^(8*width)-1, keeping the all-ones InvalidID free of
// any real dictionary index, or an error if no supported width fits
// (cardinality >= 2^32-1). A 255-entry dictionary therefore needs
// width 2.
func WidthFor(cardinality uint64) (int, error) {
	switch {
	case cardinality < 1<<8-1:
		return 1, nil
	case cardinality < 1<<16-1:
		return 2, nil
	case cardinality < 1<<32-1:
		return 4, nil
	default:
		return 0, d.ErrDictionaryOverflow
	}
}

// New allocates a zero-initialised vector of the given size and width.
func New(size, width int) Vector {
	switch width {
	case 1:
		return &width1{data: make([]uint8, size)}
	case 2:
		return &width2{data: make([]uint16, size)}
	case 4:
		return &width4{data: make([]uint32, size)}
	default:
		d.Panic("unsupported attribute-vector width")
		return nil
	}
}

type width1 struct{ data []uint8 }

func (w *width1) Get(i int) uint32 {
	if i < 0 || i >= len(w.data) {
		d.Panic("attrvec: index out of range")
	}
	return uint32(w.data[i])
}

func (w *width1) Set(i int, id uint32) {
	if i < 0 || i >= len(w.data) {
		d.Panic("attrvec: index out of range")
	}
	w.data[i] = uint8(id)
}

func (w *width1) Size() int  { return len(w.data) }
func (w *width1) Width() int { return 1 }

// Raw exposes the backing slice for the scan's width-specialised
// monomorphic loop; callers must not mutate it after the
// dictionary segment that owns it has been constructed.
func (w *width1) Raw() []uint8 { return w.data }

type width2 struct{ data []uint16 }

func (w *width2) Get(i int) uint32 {
	if i < 0 || i >= len(w.data) {
		d.Panic("attrvec: index out of range")
	}
	return uint32(w.data[i])
}

func (w *width2) Set(i int, id uint32) {
	if i < 0 || i >= len(w.data) {
		d.Panic("attrvec: index out of range")
	}
	w.data[i] = uint16(id)
}

func (w *width2) Size() int  { return len(w.data) }
func (w *width2) Width() int { return 2 }
func (w *width2) Raw() []uint16 { return w.data }

type width4 struct{ data []uint32 }

func (w *width4) Get(i int) uint32 {
	if i < 0 || i >= len(w.data) {
		d.Panic("attrvec: index out of range")
	}
	return w.data[i]
}

func (w *width4) Set(i int, id uint32) {
	if i < 0 || i >= len(w.data) {
		d.Panic("attrvec: index out of range")
	}
	w.data[i] = id
}

func (w *width4) Size() int  { return len(w.data) }
func (w *width4) Width() int { return 4 }
func (w *width4) Raw() []uint32 { return w.data }

// Raw1, Raw2, Raw4 type-assert v down to its concrete width and expose
// the backing slice, letting the scan's dictionary fast-path select a
// monomorphic loop once per chunk rather than dispatching per element.
// ok is false if v is not of the asked-for width.
func Raw1(v Vector) (data []uint8, ok bool) {
	w, ok := v.(*width1)
	if !ok {
		return nil, false
	}
	return w.data, true
}

func Raw2(v Vector) (data []uint16, ok bool) {
	w, ok := v.(*width2)
	if !ok {
		return nil, false
	}
	return w.data, true
}

func Raw4(v Vector) (data []uint32, ok bool) {
	w, ok := v.(*width4)
	if !ok {
		return nil, false
	}
	return w.data, true
}

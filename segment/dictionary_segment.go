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

	"github.com/chunkdb/chunkdb/attrvec"
	"github.com/chunkdb/chunkdb/d"
	"github.com/chunkdb/chunkdb/types"
)

// DictionarySegment is the immutable, dictionary-encoded column
// segment: a sorted, duplicate-free dictionary plus a bit-width-fitted
// attribute vector mapping each original row offset to a dictionary
// index. Built once by BuildDictionary (see compress.go); never mutated after.
type DictionarySegment[T Element] struct {
	elemType types.ElementType
	dict     []T
	attrs    attrvec.Vector
}

func (s *DictionarySegment[T]) Size() int                     { return s.attrs.Size() }
func (s *DictionarySegment[T]) ElementType() types.ElementType { return s.elemType }

func (s *DictionarySegment[T]) Get(i int) (types.Value, error) {
	if i < 0 || i >= s.attrs.Size() {
		return types.Value{}, errors.Wrapf(d.ErrIndexOutOfRange, "dictionary segment offset %d (size %d)", i, s.attrs.Size())
	}
	id := s.attrs.Get(i)
	return boxValue(s.elemType, s.dict[id]), nil
}

// Append always fails: dictionary segments are immutable once built.
func (s *DictionarySegment[T]) Append(types.Value) error {
	return errors.Wrap(d.ErrImmutableSegment, "append into dictionary segment")
}

// Dictionary exposes the sorted, duplicate-free dictionary. Shared,
// read-only: safe to hand out because nothing ever mutates it.
func (s *DictionarySegment[T]) Dictionary() []T { return s.dict }

// AttributeVector exposes the shared identifier vector.
func (s *DictionarySegment[T]) AttributeVector() attrvec.Vector { return s.attrs }

// ValueByID returns the dictionary entry at the given identifier.
func (s *DictionarySegment[T]) ValueByID(id uint32) T { return s.dict[id] }

// LowerBound returns the least dictionary index i with dict[i] >= v,
// or attrvec.InvalidID if no such entry exists.
func (s *DictionarySegment[T]) LowerBound(v T) uint32 {
	lo, hi := 0, len(s.dict)
	for lo < hi {
		mid := (lo + hi) / 2
		if s.dict[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == len(s.dict) {
		return attrvec.InvalidID(s.attrs.Width())
	}
	return uint32(lo)
}

// UpperBound returns the least dictionary index i with dict[i] > v,
// or attrvec.InvalidID if no such entry exists.
func (s *DictionarySegment[T]) UpperBound(v T) uint32 {
	lo, hi := 0, len(s.dict)
	for lo < hi {
		mid := (lo + hi) / 2
		if v < s.dict[mid] {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	if lo == len(s.dict) {
		return attrvec.InvalidID(s.attrs.Width())
	}
	return uint32(lo)
}

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
	"github.com/chunkdb/chunkdb/types"
)

// ValueSegment is the append-only, uncompressed column-segment
// encoding: a typed growable ordered sequence of its element type.
type ValueSegment[T Element] struct {
	elemType types.ElementType
	values   []T
}

// NewValueSegment constructs an empty value segment for elemType. T
// must be the Go type that elemType maps to (e.g. int32 for types.I32);
// callers needing a dynamically-typed segment should use NewValue.
func NewValueSegment[T Element](elemType types.ElementType) *ValueSegment[T] {
	return &ValueSegment[T]{elemType: elemType}
}

// NewValue constructs an empty value segment behind the Segment
// interface, dispatching on elemType to the right generic
// instantiation. This is the factory chunk growth and column
// addition use, since the element type is only known at runtime.
func NewValue(elemType types.ElementType) Segment {
	switch elemType {
	case types.I32:
		return NewValueSegment[int32](elemType)
	case types.I64:
		return NewValueSegment[int64](elemType)
	case types.F32:
		return NewValueSegment[float32](elemType)
	case types.F64:
		return NewValueSegment[float64](elemType)
	case types.Str:
		return NewValueSegment[string](elemType)
	default:
		d.Panic("NewValue: unknown element type")
		return nil
	}
}

func (s *ValueSegment[T]) Size() int                       { return len(s.values) }
func (s *ValueSegment[T]) ElementType() types.ElementType   { return s.elemType }

func (s *ValueSegment[T]) Get(i int) (types.Value, error) {
	if i < 0 || i >= len(s.values) {
		return types.Value{}, errors.Wrapf(d.ErrIndexOutOfRange, "value segment offset %d (size %d)", i, len(s.values))
	}
	return boxValue(s.elemType, s.values[i]), nil
}

func (s *ValueSegment[T]) Append(v types.Value) error {
	if v.Type() != s.elemType {
		return errors.Wrapf(d.ErrTypeMismatch, "append %s into %s value segment", v.Type(), s.elemType)
	}
	s.values = append(s.values, unboxValue[T](s.elemType, v))
	return nil
}

// ValueAt is the monomorphic, error-free accessor used internally by
// dictionary compression and the value-segment scan path, where
// the offset is already known to be in range.
func (s *ValueSegment[T]) ValueAt(i int) T { return s.values[i] }

// Values exposes the backing slice read-only, for dictionary
// compression to copy from.
func (s *ValueSegment[T]) Values() []T { return s.values }

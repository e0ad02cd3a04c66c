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

package types

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/chunkdb/chunkdb/d"
)

// Value is a tagged union over the five element types, used only at
// the boundary: row append, scan search value, scalar probe results.
// The zero Value is not meaningful; always construct via one of the
// NewXxx constructors.
type Value struct {
	typ ElementType
	i32 int32
	i64 int64
	f32 float32
	f64 float64
	str string
}

func NewI32(v int32) Value    { return Value{typ: I32, i32: v} }
func NewI64(v int64) Value    { return Value{typ: I64, i64: v} }
func NewF32(v float32) Value  { return Value{typ: F32, f32: v} }
func NewF64(v float64) Value  { return Value{typ: F64, f64: v} }
func NewStr(v string) Value   { return Value{typ: Str, str: v} }

// Type reports the value's tag.
func (v Value) Type() ElementType { return v.typ }

func (v Value) I32() int32   { return v.i32 }
func (v Value) I64() int64   { return v.i64 }
func (v Value) F32() float32 { return v.f32 }
func (v Value) F64() float64 { return v.f64 }
func (v Value) Str() string  { return v.str }

// asDecimal produces the canonical decimal representation of a
// numeric value, used as the pivot for every numeric<->string cast so
// that float conversions stay round-trippable.
func (v Value) asDecimal() decimal.Decimal {
	switch v.typ {
	case I32:
		return decimal.NewFromInt32(v.i32)
	case I64:
		return decimal.NewFromInt(v.i64)
	case F32:
		return decimal.NewFromFloat32(v.f32)
	case F64:
		return decimal.NewFromFloat(v.f64)
	default:
		d.Panic("asDecimal called on non-numeric value")
		return decimal.Zero
	}
}

// Cast converts v to the target element type. Numeric<->numeric uses
// standard truncation/widening; numeric<->string round-trips through
// a canonical decimal textual form. Cast fails with d.ErrTypeMismatch
// wrapped with context when the source cannot be faithfully
// represented in the target type.
func (v Value) Cast(target ElementType) (Value, error) {
	if v.typ == target {
		return v, nil
	}

	switch {
	case v.typ.IsNumeric() && target.IsNumeric():
		return v.castNumeric(target), nil
	case v.typ.IsNumeric() && target == Str:
		return NewStr(v.asDecimal().String()), nil
	case v.typ == Str && target.IsNumeric():
		return v.castStringToNumeric(target)
	default:
		return Value{}, errors.Wrapf(d.ErrTypeMismatch, "cannot cast %s to %s", v.typ, target)
	}
}

func (v Value) castNumeric(target ElementType) Value {
	dec := v.asDecimal()
	switch target {
	case I32:
		return NewI32(int32(dec.IntPart()))
	case I64:
		return NewI64(dec.IntPart())
	case F32:
		f, _ := dec.Float64()
		return NewF32(float32(f))
	case F64:
		f, _ := dec.Float64()
		return NewF64(f)
	default:
		d.Panic("castNumeric called with non-numeric target")
		return Value{}
	}
}

func (v Value) castStringToNumeric(target ElementType) (Value, error) {
	dec, err := decimal.NewFromString(v.str)
	if err != nil {
		return Value{}, errors.Wrapf(d.ErrTypeMismatch, "cannot cast string %q to %s", v.str, target)
	}
	switch target {
	case I32:
		i, err := strconv.ParseInt(dec.StringFixed(0), 10, 32)
		if err != nil {
			return Value{}, errors.Wrapf(d.ErrTypeMismatch, "string %q does not fit in i32", v.str)
		}
		return NewI32(int32(i)), nil
	case I64:
		return NewI64(dec.IntPart()), nil
	case F32:
		f, _ := dec.Float64()
		return NewF32(float32(f)), nil
	case F64:
		f, _ := dec.Float64()
		return NewF64(f), nil
	default:
		d.Panic("castStringToNumeric called with non-numeric target")
		return Value{}, nil
	}
}

// Equal compares two values of the same element type. Callers must
// cast to a common type first; Equal panics on a type mismatch since
// it is only ever called after the caller has already resolved types.
func (v Value) Equal(o Value) bool {
	d.Chk(v.typ == o.typ, "Equal called on values of differing element type")
	switch v.typ {
	case I32:
		return v.i32 == o.i32
	case I64:
		return v.i64 == o.i64
	case F32:
		return v.f32 == o.f32
	case F64:
		return v.f64 == o.f64
	case Str:
		return v.str == o.str
	default:
		return false
	}
}

// Less reports whether v < o for values of the same element type.
func (v Value) Less(o Value) bool {
	d.Chk(v.typ == o.typ, "Less called on values of differing element type")
	switch v.typ {
	case I32:
		return v.i32 < o.i32
	case I64:
		return v.i64 < o.i64
	case F32:
		return v.f32 < o.f32
	case F64:
		return v.f64 < o.f64
	case Str:
		return v.str < o.str
	default:
		return false
	}
}

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
	"github.com/chunkdb/chunkdb/d"
	"github.com/chunkdb/chunkdb/types"
)

// boxValue lifts a concrete T into the types.Value tagged union.
func boxValue[T Element](elemType types.ElementType, v T) types.Value {
	switch elemType {
	case types.I32:
		return types.NewI32(any(v).(int32))
	case types.I64:
		return types.NewI64(any(v).(int64))
	case types.F32:
		return types.NewF32(any(v).(float32))
	case types.F64:
		return types.NewF64(any(v).(float64))
	case types.Str:
		return types.NewStr(any(v).(string))
	default:
		d.Panic("boxValue: unknown element type")
		return types.Value{}
	}
}

// ValueAs lowers a types.Value already known to carry elemType into a
// concrete T. Exported for package operator's scan dispatch, which
// needs to unbox a cast search value once per chunk before running a
// monomorphic scan loop.
func ValueAs[T Element](elemType types.ElementType, v types.Value) T {
	return unboxValue[T](elemType, v)
}

// unboxValue lowers a types.Value already known to carry elemType
// into a concrete T.
func unboxValue[T Element](elemType types.ElementType, v types.Value) T {
	switch elemType {
	case types.I32:
		return any(v.I32()).(T)
	case types.I64:
		return any(v.I64()).(T)
	case types.F32:
		return any(v.F32()).(T)
	case types.F64:
		return any(v.F64()).(T)
	case types.Str:
		return any(v.Str()).(T)
	default:
		d.Panic("unboxValue: unknown element type")
		var zero T
		return zero
	}
}

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
	"github.com/chunkdb/chunkdb/segment"
	"github.com/chunkdb/chunkdb/types"
)

// matchesT evaluates op over two concrete element values, used by the
// value-segment linear-scan path (one monomorphic instantiation per
// element type, no boxing in the inner loop).
func matchesT[T segment.Element](op ScanType, a, target T) bool {
	switch op {
	case OpEquals:
		return a == target
	case OpNotEquals:
		return a != target
	case OpLessThan:
		return a < target
	case OpLessThanEquals:
		return a <= target
	case OpGreaterThan:
		return a > target
	case OpGreaterThanEquals:
		return a >= target
	default:
		return false
	}
}

// attrWidth is the closed set of concrete Go types the attribute
// vector's three byte widths map to.
type attrWidth interface {
	uint8 | uint16 | uint32
}

// matchesAttr is the dictionary fast-path's emission predicate:
// it is expressed purely in terms of attribute-vector-index
// comparisons against vid, the dictionary index of the least entry
// >= the search value, branching on whether that entry is an exact
// hit (contains). This single formula, instantiated once per
// attribute-vector width, also covers the vid==INVALID_ID edge case
// (the search value exceeds every dictionary entry) without special
// casing: every valid attribute-vector entry compares less than the
// width's INVALID_ID sentinel.
func matchesAttr[T attrWidth](op ScanType, contains bool, a, vid T) bool {
	switch op {
	case OpEquals:
		return contains && a == vid
	case OpNotEquals:
		if contains {
			return a != vid
		}
		return true
	case OpLessThan:
		return a < vid
	case OpLessThanEquals:
		if contains {
			return a <= vid
		}
		return a < vid
	case OpGreaterThan:
		if contains {
			return a > vid
		}
		return a >= vid
	case OpGreaterThanEquals:
		return a >= vid
	default:
		return false
	}
}

// applyOp evaluates op over two boxed values of the same element
// type, used on the reference-segment scan path where values have
// already been decoded out of whatever encoding the base table uses
// and boxing cost no longer matters.
func applyOp(op ScanType, a, target types.Value) bool {
	switch op {
	case OpEquals:
		return a.Equal(target)
	case OpNotEquals:
		return !a.Equal(target)
	case OpLessThan:
		return a.Less(target)
	case OpLessThanEquals:
		return a.Less(target) || a.Equal(target)
	case OpGreaterThan:
		return target.Less(a)
	case OpGreaterThanEquals:
		return target.Less(a) || a.Equal(target)
	default:
		return false
	}
}

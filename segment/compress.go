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
	"sort"

	"github.com/pkg/errors"

	"github.com/chunkdb/chunkdb/attrvec"
	"github.com/chunkdb/chunkdb/d"
	"github.com/chunkdb/chunkdb/types"
)

// BuildDictionary performs dictionary-compression construction:
// sort a copy of the value segment's data, deduplicate it into the
// dictionary, pick the narrowest attribute-vector width that fits the
// dictionary's cardinality, and binary-search each original value back
// into a dictionary index.
func BuildDictionary[T Element](vs *ValueSegment[T]) (*DictionarySegment[T], error) {
	n := vs.Size()
	tmp := make([]T, n)
	copy(tmp, vs.Values())

	sort.SliceStable(tmp, func(i, j int) bool { return tmp[i] < tmp[j] })

	dict := make([]T, 0, n)
	for i, v := range tmp {
		if i == 0 || dict[len(dict)-1] != v {
			dict = append(dict, v)
		}
	}

	width, err := attrvec.WidthFor(uint64(len(dict)))
	if err != nil {
		return nil, errors.Wrapf(err, "compressing %d-row segment into %d-entry dictionary", n, len(dict))
	}

	attrs := attrvec.New(n, width)
	for r := 0; r < n; r++ {
		id := dictIndexOf(dict, vs.ValueAt(r))
		if id < 0 {
			d.Panic("compress: value missing from its own dictionary")
		}
		attrs.Set(r, uint32(id))
	}

	return &DictionarySegment[T]{elemType: vs.elemType, dict: dict, attrs: attrs}, nil
}

// dictIndexOf binary-searches the sorted, duplicate-free dict for v.
func dictIndexOf[T Element](dict []T, v T) int {
	lo, hi := 0, len(dict)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case dict[mid] < v:
			lo = mid + 1
		case v < dict[mid]:
			hi = mid
		default:
			return mid
		}
	}
	return -1
}

// Compress dispatches on seg's element type to the right
// BuildDictionary instantiation, returning a Segment so callers that
// don't know (or care about) the concrete element type at compile
// time can still compress a chunk's column.
func Compress(seg Segment) (Segment, error) {
	switch vs := seg.(type) {
	case *ValueSegment[int32]:
		return BuildDictionary(vs)
	case *ValueSegment[int64]:
		return BuildDictionary(vs)
	case *ValueSegment[float32]:
		return BuildDictionary(vs)
	case *ValueSegment[float64]:
		return BuildDictionary(vs)
	case *ValueSegment[string]:
		return BuildDictionary(vs)
	default:
		return nil, errors.Errorf("cannot compress segment of concrete type %T", seg)
	}
}

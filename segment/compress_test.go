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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chunkdb/chunkdb/attrvec"
	"github.com/chunkdb/chunkdb/types"
)

func buildValueSegment(t *testing.T, values []int32) *ValueSegment[int32] {
	t.Helper()
	vs := NewValueSegment[int32](types.I32)
	for _, v := range values {
		require.NoError(t, vs.Append(types.NewI32(v)))
	}
	return vs
}

func TestBuildDictionarySortedAndDeduped(t *testing.T) {
	vs := buildValueSegment(t, []int32{5, 5, 2, 2, 7})
	ds, err := BuildDictionary(vs)
	require.NoError(t, err)

	require.Equal(t, []int32{2, 5, 7}, ds.Dictionary())
	require.Equal(t, 1, ds.AttributeVector().Width())

	// Round-trip read-back.
	for i, want := range []int32{5, 5, 2, 2, 7} {
		v, err := ds.Get(i)
		require.NoError(t, err)
		require.Equal(t, want, v.I32())
	}
}

func TestBuildDictionaryAttributeVectorValues(t *testing.T) {
	vs := buildValueSegment(t, []int32{5, 5, 2, 2, 7})
	ds, err := BuildDictionary(vs)
	require.NoError(t, err)

	attrs := ds.AttributeVector()
	want := []uint32{1, 1, 0, 0, 2}
	for i, w := range want {
		require.Equal(t, w, attrs.Get(i))
	}
}

func TestDictionarySortedness(t *testing.T) {
	vs := buildValueSegment(t, []int32{9, 1, 5, 3, 3, 7, 1})
	ds, err := BuildDictionary(vs)
	require.NoError(t, err)
	dict := ds.Dictionary()
	for i := 1; i < len(dict); i++ {
		require.Less(t, dict[i-1], dict[i])
	}
}

func TestAttributeVectorRangeInvariant(t *testing.T) {
	vs := buildValueSegment(t, []int32{9, 1, 5, 3, 3, 7, 1})
	ds, err := BuildDictionary(vs)
	require.NoError(t, err)
	attrs := ds.AttributeVector()
	n := uint32(len(ds.Dictionary()))
	for i := 0; i < attrs.Size(); i++ {
		require.Less(t, attrs.Get(i), n)
	}
}

func TestWidthMinimality(t *testing.T) {
	values255 := make([]int32, 255)
	for i := range values255 {
		values255[i] = int32(i)
	}
	vs := buildValueSegment(t, values255)
	ds, err := BuildDictionary(vs)
	require.NoError(t, err)
	require.Equal(t, 2, ds.AttributeVector().Width(), "255 distinct entries require width >= 2")

	values200 := values255[:200]
	vs2 := buildValueSegment(t, values200)
	ds2, err := BuildDictionary(vs2)
	require.NoError(t, err)
	require.Equal(t, 1, ds2.AttributeVector().Width(), "200 distinct entries fit in width 1")
}

func TestLowerBoundAndUpperBound(t *testing.T) {
	vs := buildValueSegment(t, []int32{5, 5, 2, 2, 7})
	ds, err := BuildDictionary(vs)
	require.NoError(t, err)
	// dict = [2,5,7]
	require.Equal(t, uint32(1), ds.LowerBound(3)) // first >= 3 is 5 at index 1
	require.Equal(t, uint32(0), ds.LowerBound(2))
	require.Equal(t, uint32(2), ds.LowerBound(6))
	require.Equal(t, attrvec.InvalidID(ds.AttributeVector().Width()), ds.LowerBound(100))

	require.Equal(t, uint32(1), ds.UpperBound(2)) // first > 2 is 5 at index 1
	require.Equal(t, uint32(2), ds.UpperBound(5)) // first > 5 is 7 at index 2
	require.Equal(t, attrvec.InvalidID(ds.AttributeVector().Width()), ds.UpperBound(7))
}

func TestCompressDispatchesByConcreteType(t *testing.T) {
	vs := NewValue(types.Str)
	require.NoError(t, vs.Append(types.NewStr("b")))
	require.NoError(t, vs.Append(types.NewStr("a")))
	out, err := Compress(vs)
	require.NoError(t, err)
	ds, ok := out.(*DictionarySegment[string])
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, ds.Dictionary())
}

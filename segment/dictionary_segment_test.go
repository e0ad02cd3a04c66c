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

	"github.com/chunkdb/chunkdb/types"
)

func TestDictionarySegmentAppendFails(t *testing.T) {
	vs := buildValueSegment(t, []int32{1, 2, 3})
	ds, err := BuildDictionary(vs)
	require.NoError(t, err)

	err = ds.Append(types.NewI32(4))
	require.Error(t, err)
}

func TestDictionarySegmentSizeAndElementType(t *testing.T) {
	vs := buildValueSegment(t, []int32{3, 1, 2, 1})
	ds, err := BuildDictionary(vs)
	require.NoError(t, err)

	require.Equal(t, 4, ds.Size())
	require.Equal(t, types.I32, ds.ElementType())
}

func TestDictionarySegmentGetOutOfRange(t *testing.T) {
	vs := buildValueSegment(t, []int32{1, 2})
	ds, err := BuildDictionary(vs)
	require.NoError(t, err)

	_, err = ds.Get(-1)
	require.Error(t, err)
	_, err = ds.Get(2)
	require.Error(t, err)
}

func TestDictionarySegmentValueByID(t *testing.T) {
	vs := buildValueSegment(t, []int32{30, 10, 20})
	ds, err := BuildDictionary(vs)
	require.NoError(t, err)

	require.Equal(t, int32(10), ds.ValueByID(0))
	require.Equal(t, int32(20), ds.ValueByID(1))
	require.Equal(t, int32(30), ds.ValueByID(2))
}

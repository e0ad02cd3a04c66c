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

func TestValueSegmentAppendAndGet(t *testing.T) {
	s := NewValue(types.I32)
	for _, v := range []int32{1, 2, 3} {
		require.NoError(t, s.Append(types.NewI32(v)))
	}
	require.Equal(t, 3, s.Size())
	got, err := s.Get(1)
	require.NoError(t, err)
	require.Equal(t, int32(2), got.I32())
}

func TestValueSegmentAppendTypeMismatch(t *testing.T) {
	s := NewValue(types.I32)
	err := s.Append(types.NewStr("nope"))
	require.Error(t, err)
}

func TestValueSegmentGetOutOfRange(t *testing.T) {
	s := NewValue(types.I32)
	_, err := s.Get(0)
	require.Error(t, err)
}

func TestValueSegmentStringElement(t *testing.T) {
	s := NewValue(types.Str)
	require.NoError(t, s.Append(types.NewStr("hello")))
	got, err := s.Get(0)
	require.NoError(t, err)
	require.Equal(t, "hello", got.Str())
}

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

package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chunkdb/chunkdb/table"
)

func TestRegistryAddGetHasDropTable(t *testing.T) {
	r := New()
	tbl := table.New(0)

	require.False(t, r.HasTable("t1"))
	require.NoError(t, r.AddTable("t1", tbl))
	require.True(t, r.HasTable("t1"))

	got, err := r.GetTable("t1")
	require.NoError(t, err)
	require.Same(t, tbl, got)

	require.NoError(t, r.DropTable("t1"))
	require.False(t, r.HasTable("t1"))
}

func TestRegistryAddTableDuplicateFails(t *testing.T) {
	r := New()
	require.NoError(t, r.AddTable("t1", table.New(0)))
	err := r.AddTable("t1", table.New(0))
	require.Error(t, err)
}

func TestRegistryGetAndDropUnknownTableFails(t *testing.T) {
	r := New()
	_, err := r.GetTable("missing")
	require.Error(t, err)
	err = r.DropTable("missing")
	require.Error(t, err)
}

func TestRegistryTableNamesAndReset(t *testing.T) {
	r := New()
	require.NoError(t, r.AddTable("a", table.New(0)))
	require.NoError(t, r.AddTable("b", table.New(0)))
	require.ElementsMatch(t, []string{"a", "b"}, r.TableNames())

	r.Reset()
	require.Empty(t, r.TableNames())
	require.False(t, r.HasTable("a"))
}

func TestRegistryDefaultIsSingleton(t *testing.T) {
	d1 := Default()
	d2 := Default()
	require.Same(t, d1, d2)
	d1.Reset()
}

func TestRegistryZeroValueUsableForAddTable(t *testing.T) {
	var r Registry
	require.NoError(t, r.AddTable("z", table.New(0)))
	require.True(t, r.HasTable("z"))
}

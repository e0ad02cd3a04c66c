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

package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/chunkdb/chunkdb/table"
)

// printSummary prints a table's name, column count, row count, and
// chunk count, the CLI-level summary a driver is allowed to
// produce outside the engine proper.
func printSummary(name string, t *table.Table) {
	header := color.New(color.FgCyan, color.Bold)
	header.Printf("%s\n", name)
	fmt.Printf("  columns: %d\n", t.ColumnCount())
	fmt.Printf("  rows:    %s\n", humanize.Comma(int64(t.RowCount())))
	fmt.Printf("  chunks:  %d\n", t.ChunkCount())
}

// printError prints an engine error in red, distinguishing it from
// ordinary driver output.
func printError(err error) {
	color.New(color.FgRed, color.Bold).Fprintln(color.Error, err)
}

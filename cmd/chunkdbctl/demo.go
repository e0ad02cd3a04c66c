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
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chunkdb/chunkdb/config"
	"github.com/chunkdb/chunkdb/operator"
	"github.com/chunkdb/chunkdb/registry"
	"github.com/chunkdb/chunkdb/table"
	"github.com/chunkdb/chunkdb/types"
)

func newDemoCommand() *cobra.Command {
	var capacity uint32
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "build a sample table, compress it, and run a scan over it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(capacity)
		},
	}
	cmd.Flags().Uint32Var(&capacity, "chunk-capacity", 5, "target chunk capacity for the sample table")
	return cmd
}

func runDemo(capacity uint32) error {
	cfg, err := config.Find(".")
	if err != nil && err != config.ErrNoConfig {
		return err
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if cfg.DefaultChunkCapacity > 0 {
		capacity = cfg.DefaultChunkCapacity
	}

	reg := registry.Default()
	reg.Reset()

	t := table.New(capacity)
	if err := t.AddColumn("a", types.I32); err != nil {
		return err
	}
	for _, v := range []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10} {
		if err := t.Append([]types.Value{types.NewI32(v)}); err != nil {
			return err
		}
	}
	if t.ChunkCount() > 1 {
		if err := t.CompressChunk(0); err != nil {
			return err
		}
	}
	if err := reg.AddTable("demo", t); err != nil {
		return err
	}
	printSummary("demo", t)

	scan := operator.NewTableScan(operator.Wrap(t), 0, operator.OpGreaterThanEquals, types.NewI32(4))
	if err := scan.Execute(context.Background()); err != nil {
		printError(err)
		return err
	}
	out, err := scan.GetOutput()
	if err != nil {
		return err
	}
	printSummary("demo scan a >= 4", out)
	fmt.Println()
	return nil
}

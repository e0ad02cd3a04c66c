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
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/dustin/go-humanize"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/chunkdb/chunkdb/operator"
	"github.com/chunkdb/chunkdb/table"
	"github.com/chunkdb/chunkdb/types"
)

// newBenchCommand is the "benchmark driver" external collaborator:
// external collaborator: it repeatedly scans a generated table,
// optionally under CPU profiling, and reports scan latency
// percentiles from an HDR histogram.
func newBenchCommand() *cobra.Command {
	var rows int
	var capacity uint32
	var iterations int
	var cpuProfile bool

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "repeatedly scan a generated table and report latency percentiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(rows, capacity, iterations, cpuProfile)
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 100_000, "number of rows in the generated table")
	cmd.Flags().Uint32Var(&capacity, "chunk-capacity", 10_000, "target chunk capacity")
	cmd.Flags().IntVar(&iterations, "iterations", 50, "number of scans to run")
	cmd.Flags().BoolVar(&cpuProfile, "cpu-profile", false, "wrap the run in a CPU profile")
	return cmd
}

func runBench(rows int, capacity uint32, iterations int, cpuProfile bool) error {
	if cpuProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	t := table.New(capacity)
	if err := t.AddColumn("a", types.I32); err != nil {
		return err
	}
	for i := 0; i < rows; i++ {
		if err := t.Append([]types.Value{types.NewI32(int32(i % 1000))}); err != nil {
			return err
		}
	}
	for c := 0; c < t.ChunkCount()-1; c++ {
		if err := t.CompressChunk(c); err != nil {
			return err
		}
	}

	hist := hdrhistogram.New(1, 10_000_000, 3)
	wrapped := operator.Wrap(t)
	if err := wrapped.Execute(context.Background()); err != nil {
		return err
	}

	for i := 0; i < iterations; i++ {
		start := time.Now()
		scan := operator.NewTableScan(wrapped, 0, operator.OpEquals, types.NewI32(500))
		if err := scan.Execute(context.Background()); err != nil {
			return err
		}
		hist.RecordValue(time.Since(start).Microseconds())
	}

	fmt.Printf("rows=%s chunks=%d iterations=%d\n", humanize.Comma(int64(rows)), t.ChunkCount(), iterations)
	fmt.Printf("p50=%dus p95=%dus p99=%dus max=%dus\n",
		hist.ValueAtQuantile(50), hist.ValueAtQuantile(95), hist.ValueAtQuantile(99), hist.Max())
	return nil
}

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

// Package operator implements the lazy unary computation-node
// framework and, on top of it, the table-scan operator.
package operator

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/chunkdb/chunkdb/d"
	"github.com/chunkdb/chunkdb/table"
)

// Operator is a lazy unary computation node producing a table.
// Execute runs to completion synchronously and is idempotent; a
// second call is a no-op. GetOutput is undefined before the first
// Execute.
type Operator interface {
	Execute(ctx context.Context) error
	GetOutput() (*table.Table, error)
}

// base is the shared bookkeeping every operator embeds: an identity
// used only to correlate log lines across a chain of operators, and
// the cached-output/executed-once contract.
type base struct {
	id       uuid.UUID
	executed bool
	output   *table.Table
	err      error
}

func newBase() base {
	return base{id: uuid.New()}
}

// GetOutput returns the cached output table. Calling it before
// Execute is a programmer error.
func (b *base) GetOutput() (*table.Table, error) {
	d.Chk(b.executed, "GetOutput called before Execute")
	return b.output, b.err
}

// TableWrapperOperator adapts an existing table into the operator
// framework, so a driver can feed a table it already built directly
// into a scan without a no-op intermediate node type.
type TableWrapperOperator struct {
	base
	table *table.Table
}

// Wrap returns an operator whose output is t, unchanged.
func Wrap(t *table.Table) *TableWrapperOperator {
	return &TableWrapperOperator{base: newBase(), table: t}
}

func (w *TableWrapperOperator) Execute(context.Context) error {
	if w.executed {
		return nil
	}
	w.table.MarkReadOnly()
	w.output = w.table
	w.executed = true
	logrus.WithFields(logrus.Fields{
		"operator": "table_wrapper",
		"id":       w.id,
		"rows":     w.table.RowCount(),
	}).Debug("operator: executed")
	return nil
}

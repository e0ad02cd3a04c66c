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

// Package registry implements the process-wide name->table mapping.
// Rather than hidden global mutation, the registry type is a plain
// value a caller constructs explicitly; a lazily-initialised package
// singleton (Default) is provided for callers (the CLI driver) that
// want process-wide sharing, with an explicit Reset for tests.
package registry

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/chunkdb/chunkdb/d"
	"github.com/chunkdb/chunkdb/table"
)

// Registry is a name->table mapping. The zero value is ready to use.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]*table.Table
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{tables: make(map[string]*table.Table)}
}

// AddTable inserts name->t, failing with d.ErrDuplicateTable if name
// is already registered.
func (r *Registry) AddTable(name string, t *table.Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tables == nil {
		r.tables = make(map[string]*table.Table)
	}
	if _, exists := r.tables[name]; exists {
		return errors.Wrapf(d.ErrDuplicateTable, "table %q", name)
	}
	r.tables[name] = t
	logrus.WithField("table", name).Debug("registry: added table")
	return nil
}

// DropTable removes name, failing with d.ErrUnknownTable if absent.
func (r *Registry) DropTable(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tables[name]; !exists {
		return errors.Wrapf(d.ErrUnknownTable, "table %q", name)
	}
	delete(r.tables, name)
	logrus.WithField("table", name).Debug("registry: dropped table")
	return nil
}

// GetTable resolves name, failing with d.ErrUnknownTable if absent.
func (r *Registry) GetTable(name string) (*table.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, exists := r.tables[name]
	if !exists {
		return nil, errors.Wrapf(d.ErrUnknownTable, "table %q", name)
	}
	return t, nil
}

// HasTable reports whether name is registered.
func (r *Registry) HasTable(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.tables[name]
	return exists
}

// TableNames returns the registered names in unspecified order.
func (r *Registry) TableNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	return names
}

// Reset discards all entries.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables = make(map[string]*table.Table)
	logrus.Debug("registry: reset")
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default lazily initialises and returns the process-wide registry
// singleton. Tests that need isolation should construct their own
// Registry with New, or call Default().Reset() between cases.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = New()
	})
	return defaultReg
}

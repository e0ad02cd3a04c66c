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

package operator

// ScanType enumerates the six comparison predicates a table scan can
// evaluate.
type ScanType uint8

const (
	OpEquals ScanType = iota
	OpNotEquals
	OpLessThan
	OpLessThanEquals
	OpGreaterThan
	OpGreaterThanEquals
)

func (t ScanType) String() string {
	switch t {
	case OpEquals:
		return "="
	case OpNotEquals:
		return "!="
	case OpLessThan:
		return "<"
	case OpLessThanEquals:
		return "<="
	case OpGreaterThan:
		return ">"
	case OpGreaterThanEquals:
		return ">="
	default:
		return "?"
	}
}

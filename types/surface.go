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

package types

import "fmt"

// surfaceNames is the external element-type vocabulary: two
// equivalence classes, {int, long} and {float, double}, used only by
// test helpers that compare result tables loosely across widths.
var surfaceNames = map[string]ElementType{
	"int":    I32,
	"long":   I64,
	"float":  F32,
	"double": F64,
	"string": Str,
}

// numericEquivalenceClass maps an element type to the equivalence
// class it belongs to for loose test comparisons: {int, long} both
// map to "integral", {float, double} both map to "floating".
func numericEquivalenceClass(t ElementType) string {
	switch t {
	case I32, I64:
		return "integral"
	case F32, F64:
		return "floating"
	case Str:
		return "string"
	default:
		return "unknown"
	}
}

// SameEquivalenceClass reports whether a and b belong to the same
// surface equivalence class ({int,long} or {float,double}), used by
// chunktest's loose table-equality helper.
func SameEquivalenceClass(a, b ElementType) bool {
	return numericEquivalenceClass(a) == numericEquivalenceClass(b)
}

// ParseElementType resolves one of the external element-type strings.
func ParseElementType(s string) (ElementType, error) {
	t, ok := surfaceNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown element type surface name %q", s)
	}
	return t, nil
}

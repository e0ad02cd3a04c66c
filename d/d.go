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

// Package d holds the engine-wide error vocabulary and a small set of
// debug assertions used to guard invariants that must never be violated
// by a correct caller (bad chunk indices, nil shared handles).
package d

import "errors"

// Sentinel error kinds. Every one is surfaced to the caller, wrapped
// with call-site context via github.com/pkg/errors where useful; none
// are swallowed inside the core.
var (
	ErrTypeMismatch             = errors.New("type mismatch")
	ErrArityMismatch            = errors.New("arity mismatch")
	ErrUnknownColumn            = errors.New("unknown column")
	ErrDuplicateTable           = errors.New("duplicate table")
	ErrUnknownTable             = errors.New("unknown table")
	ErrNonEmptyAddColumn        = errors.New("add_column on non-empty table")
	ErrImmutableSegment         = errors.New("segment is immutable")
	ErrDictionaryOverflow       = errors.New("dictionary overflow")
	ErrHeterogeneousReferenceInput = errors.New("scan input mixes reference segments over different base tables")
	ErrIndexOutOfRange          = errors.New("index out of range")
)

// Panic unconditionally aborts with msg. Used where the source would
// assert a condition that a correct caller can never violate.
func Panic(msg string) {
	panic(msg)
}

// PanicIfError panics if err is non-nil.
func PanicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

// PanicIfTrue panics with msg if cond holds.
func PanicIfTrue(cond bool, msg string) {
	if cond {
		panic(msg)
	}
}

// Chk panics with msg if cond does not hold. Reads as "check."
func Chk(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}

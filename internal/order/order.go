// Copyright 2022 Sogang University
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

// Package order provides total orders for use as tree comparators.  A
// comparator returns a negative number when a sorts before b, zero when they
// are equivalent and a positive number otherwise.
package order

import (
	"sync"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Ordered compares two values of an ordered type by their natural order.
// NaNs sort before all other floating-point values and are equivalent to each
// other.
func Ordered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case b < a:
		return +1
	case a == b:
		return 0
	}
	// at least one of the operands is NaN
	switch {
	case a != a && b != b:
		return 0
	case a != a:
		return -1
	default:
		return +1
	}
}

// Reverse returns the inverse of the given order.
func Reverse[T any](cmp func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		return cmp(b, a)
	}
}

// Collate returns a language-sensitive order on strings for the given tag.
// Strings that collate equally are treated as equivalent, so a tree ordered
// by the returned function holds at most one of them.
//
// A collator is not safe for concurrent use; the returned function serializes
// its calls so that it may be shared by concurrent readers.
func Collate(tag language.Tag, opts ...collate.Option) func(a, b string) int {
	var (
		mu sync.Mutex
		c  = collate.New(tag, opts...)
	)
	return func(a, b string) int {
		mu.Lock()
		defer mu.Unlock()
		return c.CompareString(a, b)
	}
}

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

//go:build go1.18
// +build go1.18

package bst

import (
	"fmt"
	"math"
	"math/rand"
	"reflect"
	"testing"
)

func TestLessThan(t *testing.T) {
	tr := fixture()
	for _, tc := range []struct {
		upper     int
		inclusive bool
		want      []int
	}{
		{-10, false, nil},
		{4, false, []int{1, 2, 3}},
		{4, true, []int{1, 2, 3, 4}},
		{1, false, nil},
		{1, true, []int{1}},
		{10, false, []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{8, false, []int{1, 2, 3, 4, 5, 6, 7}},
	} {
		it := tr.LessThan(tc.upper)
		if tc.inclusive {
			it = tr.LessThanOrEqual(tc.upper)
		}
		if got := it.Values(); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("upper %d inclusive %v: got %v, want %v", tc.upper, tc.inclusive, got, tc.want)
		}
	}
}

func TestGreaterThan(t *testing.T) {
	tr := fixture()
	for _, tc := range []struct {
		lower     int
		inclusive bool
		want      []int
	}{
		{0, false, []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{5, false, []int{6, 7, 8}},
		{5, true, []int{5, 6, 7, 8}},
		{8, false, nil},
		{8, true, []int{8}},
		{2, false, []int{3, 4, 5, 6, 7, 8}},
		{4, true, []int{4, 5, 6, 7, 8}},
	} {
		it := tr.GreaterThan(tc.lower)
		if tc.inclusive {
			it = tr.GreaterThanOrEqual(tc.lower)
		}
		if got := it.Values(); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("lower %d inclusive %v: got %v, want %v", tc.lower, tc.inclusive, got, tc.want)
		}
	}
}

func TestRange(t *testing.T) {
	tr := fixture()
	for _, tc := range []struct {
		lower, upper               int
		excludeLower, excludeUpper bool
		want                       []int
	}{
		{2, 5, false, false, []int{2, 3, 4, 5}},
		{2, 10, false, false, []int{2, 3, 4, 5, 6, 7, 8}},
		{-10, 5, false, false, []int{1, 2, 3, 4, 5}},
		{math.MinInt, math.MaxInt, false, false, []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{math.MinInt, math.MaxInt, true, true, []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{2, 5, true, false, []int{3, 4, 5}},
		{2, 5, false, true, []int{2, 3, 4}},
		{2, 5, true, true, []int{3, 4}},
		{2, 2, false, false, []int{2}},
		{5, 5, false, false, []int{5}},
		{4, 2, true, true, nil},
		{4, 2, false, false, nil},
		{2, 2, true, false, nil},
		{2, 2, false, true, nil},
		{9, 12, false, false, nil},
		{-5, 0, false, false, nil},
		{5, 7, false, false, []int{5, 6, 7}},
	} {
		name := fmt.Sprintf("%d,%d,%v,%v", tc.lower, tc.upper, tc.excludeLower, tc.excludeUpper)
		if got := tr.Range(tc.lower, tc.upper, tc.excludeLower, tc.excludeUpper).Values(); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: got %v, want %v", name, got, tc.want)
		}
	}
}

func TestRangeEmptyTree(t *testing.T) {
	tr := New[int]()
	if got := tr.Range(0, 10, false, false).Values(); got != nil {
		t.Fatalf("got %v", got)
	}
	if got := tr.LessThan(10).Values(); got != nil {
		t.Fatalf("got %v", got)
	}
	if got := tr.GreaterThan(0).Values(); got != nil {
		t.Fatalf("got %v", got)
	}
}

// An exact match on the lower bound may still have a right subtree.
func TestGreaterThanExactMatchRightSubtree(t *testing.T) {
	tr := BuildTree(&NodeConfig[int]{
		Value: 5,
		Left:  Leaf(1),
		Right: &NodeConfig[int]{Value: 7, Left: Leaf(6), Right: Leaf(9)},
	})
	if got, want := tr.GreaterThan(5).Values(), []int{6, 7, 9}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := tr.GreaterThanOrEqual(5).Values(), []int{5, 6, 7, 9}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := tr.Range(5, 8, true, false).Values(), []int{6, 7}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// filter returns the values of the tree that lie between lower and upper by
// scanning every node.
func filter(tr *Tree[int], lower, upper int, excludeLower, excludeUpper bool) (out []int) {
	WalkInOrder(tr.Root(), func(n *Node[int]) {
		v := n.Value()
		if v < lower || (excludeLower && v == lower) || upper < v || (excludeUpper && v == upper) {
			return
		}
		out = append(out, v)
	})
	return
}

func TestRangeRandom(t *testing.T) {
	const treeSize = 200
	for round := 0; round < 20; round++ {
		tr := New[int]()
		for _, v := range rand.Perm(treeSize * 2)[:treeSize] {
			tr.Insert(v)
		}
		if round%2 == 0 {
			tr.Rebalance()
		}
		for i := 0; i < 200; i++ {
			lower, upper := rand.Intn(treeSize*2+10)-5, rand.Intn(treeSize*2+10)-5
			if i%10 == 0 {
				upper = lower
			}
			for _, ex := range [][2]bool{{false, false}, {true, false}, {false, true}, {true, true}} {
				got := tr.Range(lower, upper, ex[0], ex[1]).Values()
				if want := filter(tr, lower, upper, ex[0], ex[1]); !reflect.DeepEqual(got, want) {
					t.Fatalf("range(%d, %d, %v, %v): got %v, want %v", lower, upper, ex[0], ex[1], got, want)
				}
			}
			if got, want := tr.LessThanOrEqual(upper).Values(), filter(tr, math.MinInt, upper, false, false); !reflect.DeepEqual(got, want) {
				t.Fatalf("lessThanOrEqual(%d): got %v, want %v", upper, got, want)
			}
			if got, want := tr.GreaterThan(lower).Values(), filter(tr, lower, math.MaxInt, true, false); !reflect.DeepEqual(got, want) {
				t.Fatalf("greaterThan(%d): got %v, want %v", lower, got, want)
			}
		}
	}
}

// counting wraps a comparator and counts its calls.
type counting struct {
	calls int
}

func (c *counting) compare(a, b int) int {
	c.calls++
	return a - b
}

func TestRangeSublinear(t *testing.T) {
	const treeSize = 1 << 14
	values := rang(treeSize)
	c := new(counting)
	tr, err := NewFromValuesWithComparator[int](c.compare, values...)
	if err != nil {
		t.Fatal(err)
	}
	c.calls = 0
	if got := tr.Range(100, 109, false, false).Values(); len(got) != 10 {
		t.Fatalf("got %v", got)
	}
	// two descents of at most the height of the tree
	if limit := 4*Height(tr.Root()) + 2; limit < c.calls {
		t.Fatalf("%d comparisons for a range of 10 in %d nodes", c.calls, treeSize)
	}
}

// Comparators may return any magnitude, not just -1, 0 and +1.
func TestRangeComparatorMagnitude(t *testing.T) {
	tr, err := NewFromValuesWithComparator[int](func(a, b int) int {
		return (a - b) * 1000
	}, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		lower, upper int
		want         []int
	}{
		{2, 4, []int{2, 3, 4}},
		{6, 9, []int{6, 7, 8, 9}},
		{1, 1, []int{1}},
	} {
		if got := tr.Range(tc.lower, tc.upper, false, false).Values(); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Range(%d, %d): got %v, want %v", tc.lower, tc.upper, got, tc.want)
		}
	}
}

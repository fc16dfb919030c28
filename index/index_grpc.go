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

// Package index serves a string-keyed ordered index over gRPC.  The index is
// a binary search tree; writers are serialized and readers share access.
package index

import (
	"context"
	"errors"
	"sync"

	"github.com/9rum/bstree/internal/bst"
	"github.com/9rum/bstree/internal/treejson"
	"github.com/golang/glog"
	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Traversal orders accepted by Traverse.
const (
	InOrder      = "in"
	PreOrder     = "pre"
	PostOrder    = "post"
	BreadthFirst = "level"
)

// indexServer implements the server API for Index service.
type indexServer struct {
	UnimplementedIndexServer
	mu   sync.RWMutex
	tree *bst.Tree[string]
}

// NewIndexServer creates a new index server whose keys are ordered by the
// given comparator.
func NewIndexServer(cmp bst.Comparator[string]) IndexServer {
	return &indexServer{tree: bst.NewWithComparator(cmp)}
}

// Insert adds a key to the index.
func (s *indexServer) Insert(ctx context.Context, in *wrapperspb.StringValue) (*empty.Empty, error) {
	glog.Infof("Insert called with key: %q", in.GetValue())
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tree.Insert(in.GetValue()); err != nil {
		if errors.Is(err, bst.ErrDuplicateKey) {
			return nil, status.Errorf(codes.AlreadyExists, "key %q already exists", in.GetValue())
		}
		return nil, status.Errorf(codes.Internal, "%v", err)
	}
	return new(empty.Empty), nil
}

// Delete removes a key from the index and reports whether it was present.
func (s *indexServer) Delete(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	glog.Infof("Delete called with key: %q", in.GetValue())
	s.mu.Lock()
	defer s.mu.Unlock()

	return wrapperspb.Bool(s.tree.Delete(in.GetValue())), nil
}

// Search reports whether a key is present.
func (s *indexServer) Search(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	glog.V(1).Infof("Search called with key: %q", in.GetValue())
	s.mu.RLock()
	defer s.mu.RUnlock()

	return wrapperspb.Bool(s.tree.Has(in.GetValue())), nil
}

// Min returns the smallest key.
func (s *indexServer) Min(ctx context.Context, in *empty.Empty) (*wrapperspb.StringValue, error) {
	glog.V(1).Info("Min called")
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := s.tree.Min()
	if n == nil {
		return nil, status.Error(codes.NotFound, "index is empty")
	}
	return wrapperspb.String(n.Value()), nil
}

// Max returns the largest key.
func (s *indexServer) Max(ctx context.Context, in *empty.Empty) (*wrapperspb.StringValue, error) {
	glog.V(1).Info("Max called")
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := s.tree.Max()
	if n == nil {
		return nil, status.Error(codes.NotFound, "index is empty")
	}
	return wrapperspb.String(n.Value()), nil
}

// rangeQuery is the decoded form of a Range request.
type rangeQuery struct {
	lower, upper               *string
	excludeLower, excludeUpper bool
	limit                      int
}

// parseRangeQuery decodes the fields "lower" and "upper" (strings, each
// optional), "exclude_lower" and "exclude_upper" (booleans) and "limit" (a
// non-negative number, zero meaning no limit).
func parseRangeQuery(in *structpb.Struct) (q rangeQuery, err error) {
	for name, value := range in.GetFields() {
		switch name {
		case "lower", "upper":
			kind, ok := value.GetKind().(*structpb.Value_StringValue)
			if !ok {
				return q, status.Errorf(codes.InvalidArgument, "%s must be a string", name)
			}
			if name == "lower" {
				q.lower = &kind.StringValue
			} else {
				q.upper = &kind.StringValue
			}
		case "exclude_lower", "exclude_upper":
			kind, ok := value.GetKind().(*structpb.Value_BoolValue)
			if !ok {
				return q, status.Errorf(codes.InvalidArgument, "%s must be a boolean", name)
			}
			if name == "exclude_lower" {
				q.excludeLower = kind.BoolValue
			} else {
				q.excludeUpper = kind.BoolValue
			}
		case "limit":
			kind, ok := value.GetKind().(*structpb.Value_NumberValue)
			if !ok || kind.NumberValue < 0 || kind.NumberValue != float64(int(kind.NumberValue)) {
				return q, status.Errorf(codes.InvalidArgument, "limit must be a non-negative integer")
			}
			q.limit = int(kind.NumberValue)
		default:
			return q, status.Errorf(codes.InvalidArgument, "unknown field %q", name)
		}
	}
	return
}

// iterator returns the range query over the given tree.
func (q rangeQuery) iterator(tree *bst.Tree[string]) *bst.Iterator[string] {
	switch {
	case q.lower != nil && q.upper != nil:
		return tree.Range(*q.lower, *q.upper, q.excludeLower, q.excludeUpper)
	case q.upper != nil && q.excludeUpper:
		return tree.LessThan(*q.upper)
	case q.upper != nil:
		return tree.LessThanOrEqual(*q.upper)
	case q.lower != nil && q.excludeLower:
		return tree.GreaterThan(*q.lower)
	case q.lower != nil:
		return tree.GreaterThanOrEqual(*q.lower)
	default:
		return bst.InOrder(tree.Root())
	}
}

// collect drains up to limit keys from the given iterator; zero means no
// limit.
func collect(it *bst.Iterator[string], limit int) (keys []string) {
	it.ForEach(func(n *bst.Node[string]) bool {
		keys = append(keys, n.Value())
		return limit == 0 || len(keys) < limit
	})
	return
}

// send streams the given keys.
func send(keys []string, stream interface {
	Send(*wrapperspb.StringValue) error
}) error {
	for _, key := range keys {
		if err := stream.Send(wrapperspb.String(key)); err != nil {
			return err
		}
	}
	return nil
}

// Range streams the keys within the requested bounds in ascending order.
// The keys are collected under the read lock and sent after releasing it.
func (s *indexServer) Range(in *structpb.Struct, stream Index_RangeServer) error {
	glog.V(1).Infof("Range called with %v", in.AsMap())
	q, err := parseRangeQuery(in)
	if err != nil {
		return err
	}

	s.mu.RLock()
	keys := collect(q.iterator(s.tree), q.limit)
	s.mu.RUnlock()

	return send(keys, stream)
}

// Traverse streams all keys in the requested traversal order.
func (s *indexServer) Traverse(in *wrapperspb.StringValue, stream Index_TraverseServer) error {
	glog.V(1).Infof("Traverse called with order: %s", in.GetValue())
	var traverse func(*bst.Node[string]) *bst.Iterator[string]
	switch in.GetValue() {
	case InOrder, "":
		traverse = bst.InOrder[string]
	case PreOrder:
		traverse = bst.PreOrder[string]
	case PostOrder:
		traverse = bst.PostOrder[string]
	case BreadthFirst:
		traverse = bst.BreadthFirst[string]
	default:
		return status.Errorf(codes.InvalidArgument, "unknown order %q", in.GetValue())
	}

	s.mu.RLock()
	keys := collect(traverse(s.tree.Root()), 0)
	s.mu.RUnlock()

	return send(keys, stream)
}

// Rebalance rebuilds the index into a tree of minimal height.
func (s *indexServer) Rebalance(ctx context.Context, in *empty.Empty) (*empty.Empty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := bst.Height(s.tree.Root())
	s.tree.Rebalance()
	glog.Infof("Rebalance called: height %d -> %d", before, bst.Height(s.tree.Root()))
	return new(empty.Empty), nil
}

// Shape returns the structure of the index as a parenthesized string.
func (s *indexServer) Shape(ctx context.Context, in *empty.Empty) (*wrapperspb.StringValue, error) {
	glog.V(1).Info("Shape called")
	s.mu.RLock()
	defer s.mu.RUnlock()

	return wrapperspb.String(bst.TreeString(s.tree.Root())), nil
}

// Dump returns the structure of the index as indented nested JSON.
func (s *indexServer) Dump(ctx context.Context, in *empty.Empty) (*wrapperspb.StringValue, error) {
	glog.V(1).Info("Dump called")
	s.mu.RLock()
	defer s.mu.RUnlock()

	out, err := treejson.MarshalIndent(s.tree.Root())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "%v", err)
	}
	return wrapperspb.String(string(out)), nil
}

// Load replaces the contents of the index with the tree in the given JSON
// document.  The tree is adopted with its shape; it must be ordered by the
// index's comparator and hold no duplicate keys.
func (s *indexServer) Load(ctx context.Context, in *wrapperspb.StringValue) (*empty.Empty, error) {
	c, err := treejson.Unmarshal[string](in.GetValue(), treejson.String)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tree := bst.BuildTreeWithComparator(c, s.tree.Comparator())
	if !tree.Valid() {
		return nil, status.Error(codes.InvalidArgument, "tree is not ordered or holds duplicate keys")
	}
	s.tree = tree
	glog.Infof("Load called: %d keys", tree.Len())
	return new(empty.Empty), nil
}

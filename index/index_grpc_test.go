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

package index

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"sort"
	"sync"
	"testing"

	"github.com/9rum/bstree/internal/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"golang.org/x/text/language"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// dial starts an index server over an in-memory listener and returns a
// client connected to it.
func dial(t *testing.T, cmp func(a, b string) int) IndexClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	RegisterIndexServer(server, NewIndexServer(cmp))
	go server.Serve(lis)
	t.Cleanup(server.Stop)

	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return lis.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewIndexClient(conn)
}

// recv drains a key stream.
func recv(t *testing.T, stream interface {
	Recv() (*wrapperspb.StringValue, error)
}) (keys []string) {
	t.Helper()
	for {
		m, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return
		}
		require.NoError(t, err)
		keys = append(keys, m.GetValue())
	}
}

func insert(t *testing.T, c IndexClient, keys ...string) {
	t.Helper()
	for _, key := range keys {
		_, err := c.Insert(context.Background(), wrapperspb.String(key))
		require.NoError(t, err, key)
	}
}

func rangeOf(t *testing.T, c IndexClient, fields map[string]interface{}) []string {
	t.Helper()
	in, err := structpb.NewStruct(fields)
	require.NoError(t, err)
	stream, err := c.Range(context.Background(), in)
	require.NoError(t, err)
	return recv(t, stream)
}

func TestIndexServer(t *testing.T) {
	ctx := context.Background()
	c := dial(t, order.Ordered[string])

	_, err := c.Min(ctx, new(emptypb.Empty))
	assert.Equal(t, codes.NotFound, status.Code(err))

	insert(t, c, "b", "a", "g", "d", "c", "f", "e", "h")

	_, err = c.Insert(ctx, wrapperspb.String("d"))
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	found, err := c.Search(ctx, wrapperspb.String("e"))
	require.NoError(t, err)
	assert.True(t, found.GetValue())

	min, err := c.Min(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	assert.Equal(t, "a", min.GetValue())
	max, err := c.Max(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	assert.Equal(t, "h", max.GetValue())

	shape, err := c.Shape(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	assert.Equal(t, "(b(a(null)(null))(g(d(c(null)(null))(f(e(null)(null))(null)))(h(null)(null))))", shape.GetValue())

	deleted, err := c.Delete(ctx, wrapperspb.String("d"))
	require.NoError(t, err)
	assert.True(t, deleted.GetValue())
	deleted, err = c.Delete(ctx, wrapperspb.String("z"))
	require.NoError(t, err)
	assert.False(t, deleted.GetValue())

	shape, err = c.Shape(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	assert.Equal(t, "(b(a(null)(null))(g(e(c(null)(null))(f(null)(null)))(h(null)(null))))", shape.GetValue())

	_, err = c.Rebalance(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	shape, err = c.Shape(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	assert.Equal(t, "(e(b(a(null)(null))(c(null)(null)))(g(f(null)(null))(h(null)(null))))", shape.GetValue())
}

func TestIndexServerRange(t *testing.T) {
	c := dial(t, order.Ordered[string])
	insert(t, c, "b", "a", "g", "d", "c", "f", "e", "h")

	for _, tc := range []struct {
		fields map[string]interface{}
		want   []string
	}{
		{map[string]interface{}{"lower": "b", "upper": "e"}, []string{"b", "c", "d", "e"}},
		{map[string]interface{}{"lower": "b", "upper": "e", "exclude_lower": true, "exclude_upper": true}, []string{"c", "d"}},
		{map[string]interface{}{"lower": "e"}, []string{"e", "f", "g", "h"}},
		{map[string]interface{}{"lower": "e", "exclude_lower": true}, []string{"f", "g", "h"}},
		{map[string]interface{}{"upper": "c"}, []string{"a", "b", "c"}},
		{map[string]interface{}{"upper": "c", "exclude_upper": true}, []string{"a", "b"}},
		{map[string]interface{}{}, []string{"a", "b", "c", "d", "e", "f", "g", "h"}},
		{map[string]interface{}{"limit": 3}, []string{"a", "b", "c"}},
		{map[string]interface{}{"lower": "d", "upper": "b"}, nil},
	} {
		assert.Equal(t, tc.want, rangeOf(t, c, tc.fields), "%v", tc.fields)
	}

	for _, fields := range []map[string]interface{}{
		{"lower": 1},
		{"exclude_upper": "yes"},
		{"limit": -1},
		{"limit": 1.5},
		{"bogus": true},
	} {
		in, err := structpb.NewStruct(fields)
		require.NoError(t, err)
		stream, err := c.Range(context.Background(), in)
		require.NoError(t, err)
		_, err = stream.Recv()
		assert.Equal(t, codes.InvalidArgument, status.Code(err), "%v", fields)
	}
}

func TestIndexServerTraverse(t *testing.T) {
	c := dial(t, order.Ordered[string])
	insert(t, c, "b", "a", "c")

	for _, tc := range []struct {
		order string
		want  []string
	}{
		{InOrder, []string{"a", "b", "c"}},
		{PreOrder, []string{"b", "a", "c"}},
		{PostOrder, []string{"a", "c", "b"}},
		{BreadthFirst, []string{"b", "a", "c"}},
	} {
		stream, err := c.Traverse(context.Background(), wrapperspb.String(tc.order))
		require.NoError(t, err)
		assert.Equal(t, tc.want, recv(t, stream), tc.order)
	}

	stream, err := c.Traverse(context.Background(), wrapperspb.String("zigzag"))
	require.NoError(t, err)
	_, err = stream.Recv()
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestIndexServerDumpLoad(t *testing.T) {
	ctx := context.Background()
	c := dial(t, order.Ordered[string])
	insert(t, c, "m", "f", "t", "a")

	dump, err := c.Dump(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	require.True(t, gjson.Valid(dump.GetValue()))
	assert.Equal(t, "m", gjson.Get(dump.GetValue(), "value").String())
	assert.Equal(t, "a", gjson.Get(dump.GetValue(), "left.left.value").String())

	other := dial(t, order.Ordered[string])
	_, err = other.Load(ctx, dump)
	require.NoError(t, err)
	shape, err := other.Shape(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	assert.Equal(t, "(m(f(a(null)(null))(null))(t(null)(null)))", shape.GetValue())

	for _, doc := range []string{
		`{"value":`,
		`{"value":1}`,
		`{"value":"b","left":{"value":"c"}}`,
		`{"value":"b","right":{"value":"b"}}`,
	} {
		_, err = other.Load(ctx, wrapperspb.String(doc))
		assert.Equal(t, codes.InvalidArgument, status.Code(err), doc)
	}

	// a rejected snapshot leaves the index untouched
	shape, err = other.Shape(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	assert.Equal(t, "(m(f(a(null)(null))(null))(t(null)(null)))", shape.GetValue())

	_, err = other.Load(ctx, wrapperspb.String("null"))
	require.NoError(t, err)
	_, err = other.Max(ctx, new(emptypb.Empty))
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestIndexServerCollation(t *testing.T) {
	c := dial(t, order.Collate(language.English))
	insert(t, c, "banana", "Apple", "cherry", "apple")

	stream, err := c.Traverse(context.Background(), wrapperspb.String(InOrder))
	require.NoError(t, err)
	keys := recv(t, stream)
	require.Len(t, keys, 4)
	assert.Equal(t, []string{"banana", "cherry"}, keys[2:])
}

func TestIndexServerConcurrent(t *testing.T) {
	const (
		workers = 8
		keys    = 64
	)
	c := dial(t, order.Ordered[string])

	var wg sync.WaitGroup
	for worker := 0; worker < workers; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for _, i := range rand.Perm(keys) {
				key := fmt.Sprintf("%02d-%03d", worker, i)
				if _, err := c.Insert(context.Background(), wrapperspb.String(key)); err != nil {
					t.Errorf("could not insert %s: %v", key, err)
				}
				if i%16 == 0 {
					if _, err := c.Rebalance(context.Background(), new(emptypb.Empty)); err != nil {
						t.Errorf("could not rebalance: %v", err)
					}
				}
			}
		}(worker)
	}
	wg.Wait()

	got := rangeOf(t, c, map[string]interface{}{})
	require.Len(t, got, workers*keys)
	assert.True(t, sort.StringsAreSorted(got))
}

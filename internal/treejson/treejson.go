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

// Package treejson encodes node graphs as nested JSON objects and decodes
// them back into node configurations.  A node is written as
//
//	{"value":2,"left":{"value":1,"left":null,"right":null},"right":null}
//
// where absent children are null.  On input, absent children may also be
// omitted.
package treejson

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/9rum/bstree/internal/bst"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// ErrInvalid is returned when decoding a malformed document.
var ErrInvalid = errors.New("treejson: invalid document")

// Decoder converts a JSON value into a node value.
type Decoder[T any] func(gjson.Result) (T, error)

// Marshal encodes the subtree rooted at root.  An absent root is encoded as
// null.  Values are encoded as encoding/json would encode them.
func Marshal[T any](root *bst.Node[T]) (_ string, err error) {
	// in post-order the encodings of both children sit on top of the stack
	// when their parent is visited, right above left
	var encoded []string
	pop := func() (out string) {
		out, encoded = encoded[len(encoded)-1], encoded[:len(encoded)-1]
		return
	}
	bst.PostOrder(root).ForEach(func(n *bst.Node[T]) bool {
		left, right := "null", "null"
		if n.Right() != nil {
			right = pop()
		}
		if n.Left() != nil {
			left = pop()
		}
		var obj string
		if obj, err = sjson.Set("{}", "value", n.Value()); err != nil {
			return false
		}
		if obj, err = sjson.SetRaw(obj, "left", left); err != nil {
			return false
		}
		if obj, err = sjson.SetRaw(obj, "right", right); err != nil {
			return false
		}
		encoded = append(encoded, obj)
		return true
	})
	if err != nil {
		return "", err
	}
	if len(encoded) == 0 {
		return "null", nil
	}
	return encoded[0], nil
}

// MarshalIndent is like Marshal but indents the output.
func MarshalIndent[T any](root *bst.Node[T]) ([]byte, error) {
	json, err := Marshal(root)
	if err != nil {
		return nil, err
	}
	return pretty.Pretty([]byte(json)), nil
}

// Unmarshal decodes the given document into a node configuration, converting
// each value with decode.  A null document decodes to a nil configuration.
func Unmarshal[T any](data string, decode Decoder[T]) (*bst.NodeConfig[T], error) {
	if !gjson.Valid(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalid)
	}
	return unmarshal(gjson.Parse(data), decode, "@this")
}

func unmarshal[T any](r gjson.Result, decode Decoder[T], path string) (*bst.NodeConfig[T], error) {
	if !r.Exists() || r.Type == gjson.Null {
		return nil, nil
	}
	if !r.IsObject() {
		return nil, fmt.Errorf("%w: %s is not an object", ErrInvalid, path)
	}
	raw := r.Get("value")
	if !raw.Exists() {
		return nil, fmt.Errorf("%w: %s has no value", ErrInvalid, path)
	}
	value, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s.value: %v", ErrInvalid, path, err)
	}
	c := &bst.NodeConfig[T]{Value: value}
	if c.Left, err = unmarshal(r.Get("left"), decode, path+".left"); err != nil {
		return nil, err
	}
	if c.Right, err = unmarshal(r.Get("right"), decode, path+".right"); err != nil {
		return nil, err
	}
	return c, nil
}

// String decodes a JSON string.
func String(r gjson.Result) (string, error) {
	if r.Type != gjson.String {
		return "", fmt.Errorf("want string, got %s", r.Type)
	}
	return r.Str, nil
}

// Int64 decodes a JSON number that is an integer.
func Int64(r gjson.Result) (int64, error) {
	if r.Type != gjson.Number {
		return 0, fmt.Errorf("want number, got %s", r.Type)
	}
	return strconv.ParseInt(r.Raw, 10, 64)
}

// Float64 decodes a JSON number.
func Float64(r gjson.Result) (float64, error) {
	if r.Type != gjson.Number {
		return 0, fmt.Errorf("want number, got %s", r.Type)
	}
	return r.Num, nil
}

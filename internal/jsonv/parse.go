package jsonv

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"
)

// frame is one open container on the parse stack.
type frame struct {
	isObject bool
	arr      Array
	obj      Object
	key      string
	haveKey  bool
	seen     map[string]struct{}
}

// Parse decodes data into a Value.
//
// The parser is driven by go-json tokens on an explicit stack, so deeply
// nested documents do not grow the Go call stack. Numbers are kept in their
// lexical form and trailing data after the top-level value is an error.
func Parse(data []byte) (Value, error) {
	// Token does not check separators; [1 2] and [1,,2] would pass.
	if !j.Valid(data) {
		return nil, fmt.Errorf("invalid JSON")
	}

	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var stack []frame
	var root Value

	for root == nil {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("unexpected end of JSON input")
			}
			return nil, err
		}

		var v Value
		switch t := tok.(type) {
		case j.Delim:
			switch t {
			case '[':
				stack = append(stack, frame{})
				continue
			case '{':
				stack = append(stack, frame{isObject: true})
				continue
			case ']', '}':
				if len(stack) == 0 {
					return nil, fmt.Errorf("unexpected %q", rune(t))
				}
				top := stack[len(stack)-1]
				if top.isObject != (t == '}') {
					return nil, fmt.Errorf("mismatched %q", rune(t))
				}
				if top.haveKey {
					return nil, fmt.Errorf("missing value for key %q", top.key)
				}
				stack = stack[:len(stack)-1]
				if top.isObject {
					v = top.obj
				} else {
					v = top.arr
				}
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].isObject && !stack[n-1].haveKey {
				top := &stack[n-1]
				if top.seen == nil {
					top.seen = make(map[string]struct{})
				}
				if _, dup := top.seen[t]; dup {
					return nil, fmt.Errorf("duplicate object key %q", t)
				}
				top.seen[t] = struct{}{}
				top.key = t
				top.haveKey = true
				continue
			}
			v = String(t)
		case j.Number:
			v = Number(t)
		case float64:
			v = Number(strconv.FormatFloat(t, 'g', -1, 64))
		case bool:
			v = Bool(t)
		case nil:
			v = Null{}
		default:
			return nil, fmt.Errorf("unexpected token %T", tok)
		}

		if len(stack) == 0 {
			root = v
			break
		}
		top := &stack[len(stack)-1]
		if top.isObject {
			if !top.haveKey {
				return nil, fmt.Errorf("object key must be a string, got %s", Kind(v))
			}
			top.obj = append(top.obj, Member{Key: top.key, Value: v})
			top.haveKey = false
		} else {
			top.arr = append(top.arr, v)
		}
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return root, nil
}

// Indent reformats compact JSON with two-space indentation.
func Indent(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := j.Indent(&buf, data, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

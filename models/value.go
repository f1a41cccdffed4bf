package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Kind discriminates the variants of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a decoded JSON document. Exactly one payload field is meaningful,
// selected by Kind. Object keys keep their document order.
type Value struct {
	kind Kind
	b    bool
	num  json.Number
	str  string
	arr  []Value
	keys []string
	obj  map[string]Value
}

// Null returns the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a JSON boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// NumberLiteral wraps a JSON number literal, e.g. "42" or "1.5e3".
func NumberLiteral(lit string) Value { return Value{kind: KindNumber, num: json.Number(lit)} }

// String wraps a JSON string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array wraps a JSON array.
func Array(items ...Value) Value { return Value{kind: KindArray, arr: items} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Items returns the elements of an array value, nil otherwise.
func (v Value) Items() []Value { return v.arr }

// Keys returns object keys in document order, nil for non-objects.
func (v Value) Keys() []string { return v.keys }

// Field returns the member named key of an object value.
func (v Value) Field(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	f, ok := v.obj[key]
	return f, ok
}

// Interface converts v into plain Go values: nil, bool, float64 or int64,
// string, []any and map[string]any. Used for open-ended fields.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		n, _ := v.number()
		return n.Interface()
	case KindString:
		return v.str
	case KindArray:
		out := make([]any, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for k, item := range v.obj {
			out[k] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// number converts a number value into a Number, keeping the integer/float distinction
// of the literal.
func (v Value) number() (Number, error) {
	lit := v.num.String()
	if !strings.ContainsAny(lit, ".eE") {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return IntNumber(i), nil
		}
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Number{}, err
	}
	return FloatNumber(f), nil
}

// describe renders a short description of v for validation errors.
func (v Value) describe() string {
	switch v.kind {
	case KindNumber:
		return "number " + v.num.String()
	case KindString:
		s := v.str
		if len(s) > 32 {
			s = s[:32] + "..."
		}
		return fmt.Sprintf("string %q", s)
	case KindBool:
		return fmt.Sprintf("boolean %t", v.b)
	default:
		return v.kind.String()
	}
}

var (
	parseConfig = jsoniter.Config{UseNumber: true}.Froze()
	jsonAPI     = jsoniter.ConfigCompatibleWithStandardLibrary
)

// Parse decodes a JSON document into a Value.
func Parse(data []byte) (Value, error) {
	iter := parseConfig.BorrowIterator(data)
	defer parseConfig.ReturnIterator(iter)

	v := readValue(iter)
	if iter.Error != nil && !errors.Is(iter.Error, io.EOF) {
		return Value{}, iter.Error
	}
	// Only whitespace may follow the document.
	if iter.WhatIsNext() != jsoniter.InvalidValue || !errors.Is(iter.Error, io.EOF) {
		return Value{}, errors.New("trailing data after top-level value")
	}
	return v, nil
}

func readValue(iter *jsoniter.Iterator) Value {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		return Null()
	case jsoniter.BoolValue:
		return Bool(iter.ReadBool())
	case jsoniter.NumberValue:
		return Value{kind: KindNumber, num: iter.ReadNumber()}
	case jsoniter.StringValue:
		return String(iter.ReadString())
	case jsoniter.ArrayValue:
		items := make([]Value, 0)
		for iter.ReadArray() {
			items = append(items, readValue(iter))
			if iter.Error != nil && !errors.Is(iter.Error, io.EOF) {
				break
			}
		}
		return Array(items...)
	case jsoniter.ObjectValue:
		obj := Value{kind: KindObject, obj: make(map[string]Value)}
		iter.ReadObjectCB(func(iter *jsoniter.Iterator, field string) bool {
			if _, dup := obj.obj[field]; !dup {
				obj.keys = append(obj.keys, field)
			}
			obj.obj[field] = readValue(iter)
			return iter.Error == nil || errors.Is(iter.Error, io.EOF)
		})
		return obj
	default:
		iter.ReportError("readValue", "expected a JSON value")
		return Null()
	}
}

package models

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/caentzminger/defillama/apierrors"
)

// RootPath is the path of the top-level response value in validation errors.
const RootPath = "$"

// decodeFunc turns the JSON value found at path into a T.
type decodeFunc[T any] func(v Value, path string) (T, error)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func fieldPath(parent, key string) string {
	if identPattern.MatchString(key) {
		return parent + "." + key
	}
	return parent + "[" + strconv.Quote(key) + "]"
}

func indexPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}

func mismatch(path, expected string, v Value) error {
	return apierrors.NewValidationError(path, expected, v.describe())
}

func decodeString(v Value, path string) (string, error) {
	if v.kind != KindString {
		return "", mismatch(path, "string", v)
	}
	return v.str, nil
}

func decodeBool(v Value, path string) (bool, error) {
	if v.kind != KindBool {
		return false, mismatch(path, "boolean", v)
	}
	return v.b, nil
}

func decodeNumber(v Value, path string) (Number, error) {
	if v.kind != KindNumber {
		return Number{}, mismatch(path, "number", v)
	}
	n, err := v.number()
	if err != nil {
		return Number{}, mismatch(path, "number", v)
	}
	return n, nil
}

func decodeFloat(v Value, path string) (float64, error) {
	n, err := decodeNumber(v, path)
	if err != nil {
		return 0, err
	}
	return n.Float64(), nil
}

// decodeInt accepts integer literals and floats without a fractional part.
func decodeInt(v Value, path string) (int64, error) {
	n, err := decodeNumber(v, path)
	if err != nil {
		return 0, err
	}
	if n.IsInt() {
		return n.Int64(), nil
	}
	f := n.Float64()
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt64 {
		return 0, mismatch(path, "integer", v)
	}
	return int64(f), nil
}

// decodeTime accepts unix seconds as a number or numeric string, or an RFC 3339 string.
func decodeTime(v Value, path string) (time.Time, error) {
	switch v.kind {
	case KindNumber:
		n, err := decodeNumber(v, path)
		if err != nil {
			return time.Time{}, err
		}
		return unixTime(n), nil
	case KindString:
		s := strings.TrimSpace(v.str)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return time.Unix(i, 0).UTC(), nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return unixTime(FloatNumber(f)), nil
		}
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), nil
			}
		}
	}
	return time.Time{}, mismatch(path, "unix timestamp or RFC 3339 date", v)
}

func unixTime(n Number) time.Time {
	if n.IsInt() {
		return time.Unix(n.Int64(), 0).UTC()
	}
	sec, frac := math.Modf(n.Float64())
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC()
}

// decodeAny accepts any value and converts it to plain Go values.
func decodeAny(v Value, _ string) (any, error) {
	return v.Interface(), nil
}

// decodeChartPoint decodes a positional [timestamp, value] tuple.
func decodeChartPoint(v Value, path string) (ChartPoint, error) {
	if v.kind != KindArray || len(v.arr) != 2 {
		return ChartPoint{}, mismatch(path, "[timestamp, value] pair", v)
	}
	var p ChartPoint
	for i, item := range v.arr {
		n, err := decodeNumber(item, indexPath(path, i))
		if err != nil {
			return ChartPoint{}, err
		}
		p[i] = n
	}
	return p, nil
}

// listOf lifts an element decoder to a JSON array decoder. The result has one
// element per array item, in order.
func listOf[T any](elem decodeFunc[T]) decodeFunc[[]T] {
	return func(v Value, path string) ([]T, error) {
		if v.kind != KindArray {
			return nil, mismatch(path, "array", v)
		}
		out := make([]T, 0, len(v.arr))
		for i, item := range v.arr {
			decoded, err := elem(item, indexPath(path, i))
			if err != nil {
				return nil, err
			}
			out = append(out, decoded)
		}
		return out, nil
	}
}

// mapOf lifts an element decoder to a JSON object decoder keyed by the verbatim member names.
func mapOf[T any](elem decodeFunc[T]) decodeFunc[map[string]T] {
	return func(v Value, path string) (map[string]T, error) {
		if v.kind != KindObject {
			return nil, mismatch(path, "object", v)
		}
		out := make(map[string]T, len(v.keys))
		for _, key := range v.keys {
			decoded, err := elem(v.obj[key], fieldPath(path, key))
			if err != nil {
				return nil, err
			}
			out[key] = decoded
		}
		return out, nil
	}
}

// nullable decodes JSON null as a nil pointer.
func nullable[T any](elem decodeFunc[T]) decodeFunc[*T] {
	return func(v Value, path string) (*T, error) {
		if v.IsNull() {
			return nil, nil
		}
		decoded, err := elem(v, path)
		if err != nil {
			return nil, err
		}
		return &decoded, nil
	}
}

// reader reads the members of one JSON object and keeps the first schema mismatch,
// so record decoders can read every field and check Err once.
type reader struct {
	path string
	obj  Value
	err  error
}

func newReader(v Value, path string) *reader {
	r := &reader{path: path, obj: v}
	if v.kind != KindObject {
		r.err = mismatch(path, "object", v)
	}
	return r
}

// Err returns the first mismatch encountered.
func (r *reader) Err() error { return r.err }

// member returns the value of key. Missing and null members report ok=false;
// for required members that is recorded as an error.
func (r *reader) member(key, expected string, required bool) (v Value, path string, ok bool) {
	if r.err != nil {
		return Value{}, "", false
	}
	path = fieldPath(r.path, key)
	v, present := r.obj.obj[key]
	if !present || v.IsNull() {
		if required {
			actual := "missing"
			if present {
				actual = "null"
			}
			r.err = apierrors.NewValidationError(path, expected, actual)
		}
		return Value{}, path, false
	}
	return v, path, true
}

func required[T any](r *reader, key, expected string, fn decodeFunc[T]) T {
	var zero T
	v, path, ok := r.member(key, expected, true)
	if !ok {
		return zero
	}
	out, err := fn(v, path)
	if err != nil {
		r.err = err
		return zero
	}
	return out
}

// optional returns the zero T when the member is missing or null.
func optional[T any](r *reader, key string, fn decodeFunc[T]) T {
	var zero T
	v, path, ok := r.member(key, "", false)
	if !ok {
		return zero
	}
	out, err := fn(v, path)
	if err != nil {
		r.err = err
		return zero
	}
	return out
}

func optionalPtr[T any](r *reader, key string, fn decodeFunc[T]) *T {
	v, path, ok := r.member(key, "", false)
	if !ok {
		return nil
	}
	out, err := fn(v, path)
	if err != nil {
		r.err = err
		return nil
	}
	return &out
}

func (r *reader) String(key string) string {
	return required(r, key, "string", decodeString)
}

func (r *reader) OptString(key string) *string {
	return optionalPtr(r, key, decodeString)
}

func (r *reader) Float(key string) float64 {
	return required(r, key, "number", decodeFloat)
}

func (r *reader) OptFloat(key string) *float64 {
	return optionalPtr(r, key, decodeFloat)
}

func (r *reader) Int(key string) int64 {
	return required(r, key, "integer", decodeInt)
}

func (r *reader) OptInt(key string) *int64 {
	return optionalPtr(r, key, decodeInt)
}

func (r *reader) Bool(key string) bool {
	return required(r, key, "boolean", decodeBool)
}

func (r *reader) Time(key string) time.Time {
	return required(r, key, "unix timestamp or RFC 3339 date", decodeTime)
}

func (r *reader) Strings(key string) []string {
	return required(r, key, "array of strings", listOf(decodeString))
}

func (r *reader) OptStrings(key string) []string {
	return optional(r, key, listOf(decodeString))
}

func (r *reader) FloatMap(key string) map[string]float64 {
	return required(r, key, "object of numbers", mapOf(decodeFloat))
}

func (r *reader) OptFloatMap(key string) map[string]float64 {
	return optional(r, key, mapOf(decodeFloat))
}

func (r *reader) OptStringMap(key string) map[string]string {
	return optional(r, key, mapOf(decodeString))
}

// OptObject returns an open-ended object member as plain Go values.
func (r *reader) OptObject(key string) map[string]any {
	return optional(r, key, mapOf(decodeAny))
}

func (r *reader) Chart(key string) []ChartPoint {
	return required(r, key, "array of [timestamp, value] pairs", listOf(decodeChartPoint))
}

func (r *reader) OptChart(key string) []ChartPoint {
	return optional(r, key, listOf(decodeChartPoint))
}

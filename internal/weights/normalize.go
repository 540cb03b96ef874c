// Package weights turns the ways a caller can describe a weighted collection
// into canonical parallel weight/value slices.
//
// Accepted value shapes:
//
//   - a map from value to weight
//   - a slice of [weight, value] pairs
//   - a bare slice of values (uniform weights unless explicit weights are given)
//
// The returned weights are non-negative and sum to 1.
package weights

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"slices"
)

// Codes match the issue codes of the root package.
const (
	CodeInvalidType    = "invalid_type"
	CodeRequired       = "required"
	CodeLengthMismatch = "length_mismatch"
	CodeInvalidWeight  = "invalid_weight"
	CodeConflict       = "conflict"
)

// Error describes why a collection could not be normalized.
type Error struct {
	Code  string
	Param string // "weights" or "values"
	Index int    // offending element, -1 when the whole collection is at fault
	Got   any
	Want  string
}

func (e *Error) Error() string {
	where := e.Param
	if e.Index >= 0 {
		where = fmt.Sprintf("%s[%d]", e.Param, e.Index)
	}
	return fmt.Sprintf("weights: %s at %s: want %s (got %v)", e.Code, where, e.Want, e.Got)
}

// Normalize converts (weights, values) into parallel slices whose weights sum
// to 1. weights may be nil; when given it must match a bare values slice in
// length and cannot be combined with a mapping.
func Normalize(weights []float64, values any) ([]float64, []any, error) {
	raw, vals, err := split(weights, values)
	if err != nil {
		return nil, nil, err
	}
	out, err := scale(raw)
	if err != nil {
		return nil, nil, err
	}
	return out, vals, nil
}

func split(weights []float64, values any) ([]float64, []any, error) {
	rv := reflect.ValueOf(values)
	switch rv.Kind() {
	case reflect.Map:
		if weights != nil {
			return nil, nil, &Error{Code: CodeConflict, Param: "weights", Index: -1, Got: len(weights), Want: "no explicit weights with a mapping"}
		}
		return fromMap(rv)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			break
		}
		n := rv.Len()
		if n == 0 {
			return nil, nil, &Error{Code: CodeRequired, Param: "values", Index: -1, Got: 0, Want: "at least one value"}
		}
		vals := make([]any, n)
		for i := 0; i < n; i++ {
			vals[i] = rv.Index(i).Interface()
		}
		if weights != nil {
			if len(weights) != n {
				return nil, nil, &Error{Code: CodeLengthMismatch, Param: "weights", Index: -1, Got: len(weights), Want: fmt.Sprintf("%d (one per value)", n)}
			}
			return append([]float64(nil), weights...), vals, nil
		}
		if ws, vs, ok := pairs(rv); ok {
			return ws, vs, nil
		}
		raw := make([]float64, n)
		for i := range raw {
			raw[i] = 1
		}
		return raw, vals, nil
	}
	return nil, nil, &Error{Code: CodeInvalidType, Param: "values", Index: -1, Got: fmt.Sprintf("%T", values), Want: "a mapping or a sequence"}
}

// pairs recognizes a sequence whose every element is a two-element sequence
// with a numeric first element.
func pairs(rv reflect.Value) ([]float64, []any, bool) {
	n := rv.Len()
	ws := make([]float64, n)
	vs := make([]any, n)
	for i := 0; i < n; i++ {
		el := elem(rv.Index(i))
		if el.Kind() != reflect.Slice && el.Kind() != reflect.Array {
			return nil, nil, false
		}
		if el.Len() != 2 {
			return nil, nil, false
		}
		w, ok := number(el.Index(0).Interface())
		if !ok {
			return nil, nil, false
		}
		ws[i] = w
		vs[i] = el.Index(1).Interface()
	}
	return ws, vs, true
}

func fromMap(rv reflect.Value) ([]float64, []any, error) {
	keys := rv.MapKeys()
	if len(keys) == 0 {
		return nil, nil, &Error{Code: CodeRequired, Param: "values", Index: -1, Got: 0, Want: "at least one value"}
	}
	slices.SortFunc(keys, compareKeys)
	ws := make([]float64, len(keys))
	vs := make([]any, len(keys))
	for i, k := range keys {
		w, ok := number(rv.MapIndex(k).Interface())
		if !ok {
			return nil, nil, &Error{Code: CodeInvalidWeight, Param: "weights", Index: i, Got: rv.MapIndex(k).Interface(), Want: "a number"}
		}
		ws[i] = w
		vs[i] = k.Interface()
	}
	return ws, vs, nil
}

func scale(raw []float64) ([]float64, error) {
	var sum float64
	for i, w := range raw {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, &Error{Code: CodeInvalidWeight, Param: "weights", Index: i, Got: w, Want: "a non-negative finite number"}
		}
		sum += w
	}
	if sum <= 0 {
		return nil, &Error{Code: CodeInvalidWeight, Param: "weights", Index: -1, Got: sum, Want: "a positive total"}
	}
	out := make([]float64, len(raw))
	for i, w := range raw {
		out[i] = w / sum
	}
	return out, nil
}

// compareKeys orders map keys: numbers numerically, strings lexically, and
// anything else by its printed form.
func compareKeys(a, b reflect.Value) int {
	a, b = elem(a), elem(b)
	if x, ok := number(a.Interface()); ok {
		if y, ok := number(b.Interface()); ok {
			return cmp.Compare(x, y)
		}
	}
	if a.Kind() == reflect.String && b.Kind() == reflect.String {
		return cmp.Compare(a.String(), b.String())
	}
	return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
}

func elem(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

// number accepts Go integer and floating-point kinds.
func number(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

package sqldsl

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
)

var numberRe = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// Value converts a Go scalar into a typed SQL expression.
//
// Precedence:
//   - values that are already an Expr (Raw, Lit, Func, ...) are returned unchanged
//   - strings become Lit, with embedded quotes doubled on render
//   - booleans become Bool
//   - integer and float kinds become Int, Uint or Float
//   - a json.Number is rendered verbatim when it is a well-formed number, so
//     integers beyond float64 precision survive; otherwise it becomes Lit
//   - nil becomes Null
//   - anything else renders through fmt.Sprint, unquoted
//
// Plain strings are never treated as raw SQL. Use Raw to pass a fragment
// through unescaped.
func Value(v any) Expr {
	switch x := v.(type) {
	case nil:
		return Null{}
	case Expr:
		return x
	case string:
		return Lit(x)
	case json.Number:
		if numberRe.MatchString(string(x)) {
			return Raw(x)
		}
		return Lit(x)
	case bool:
		return Bool(x)
	case int:
		return Int(x)
	case int8:
		return Int(x)
	case int16:
		return Int(x)
	case int32:
		return Int(x)
	case int64:
		return Int(x)
	case uint:
		return Uint(x)
	case uint8:
		return Uint(x)
	case uint16:
		return Uint(x)
	case uint32:
		return Uint(x)
	case uint64:
		return Uint(x)
	case float32:
		return Float(x)
	case float64:
		return Float(x)
	}

	// Named types (type Status string, type Level int, ...) fall back on
	// their underlying kind.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return Lit(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Uint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null{}
		}
	}
	return Raw(fmt.Sprint(v))
}

// Values converts each element with Value.
func Values(vs []any) []Expr {
	exprs := make([]Expr, len(vs))
	for i, v := range vs {
		exprs[i] = Value(v)
	}
	return exprs
}

// Format renders a Go scalar as SQL literal text.
func Format(v any) string {
	return Value(v).SQL()
}

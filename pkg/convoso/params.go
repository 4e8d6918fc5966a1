package convoso

import (
	"encoding/json"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind uint8

// Value kinds. The zero Value is KindOmitted.
const (
	KindOmitted Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindList
	KindNull
	KindUnsupported
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindOmitted:
		return "omitted"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindNull:
		return "null"
	case KindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Value is a single caller-supplied parameter value.
//
// It is one of: a scalar (string, integer, float, bool), an ordered list of
// values, an omitted value (the key is present but carries nothing), a null,
// or an unsupported shape such as a nested object. Build values with the
// constructors below or classify arbitrary Go values with ValueOf.
type Value struct {
	kind Kind
	str  string
	num  int64
	flt  float64
	flag bool
	list []Value
}

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int returns an integer value.
func Int(n int) Value { return Value{kind: KindInt, num: int64(n)} }

// Int64 returns an integer value.
func Int64(n int64) Value { return Value{kind: KindInt, num: n} }

// Float returns a floating point value.
func Float(f float64) Value { return Value{kind: KindFloat, flt: f} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// List returns an ordered list value.
func List(values ...Value) Value {
	list := make([]Value, len(values))
	copy(list, values)

	return Value{kind: KindList, list: list}
}

// Strings returns a list of string values.
func Strings(values ...string) Value {
	list := make([]Value, 0, len(values))
	for _, v := range values {
		list = append(list, String(v))
	}

	return Value{kind: KindList, list: list}
}

// Ints returns a list of integer values.
func Ints(values ...int) Value {
	list := make([]Value, 0, len(values))
	for _, v := range values {
		list = append(list, Int(v))
	}

	return Value{kind: KindList, list: list}
}

// Omitted returns a value that is never sent.
func Omitted() Value { return Value{} }

// Null returns an explicit null. Nulls are dropped during normalization.
func Null() Value { return Value{kind: KindNull} }

// OptString returns String(*s), or Omitted when s is nil.
func OptString(s *string) Value {
	if s == nil {
		return Omitted()
	}

	return String(*s)
}

// OptInt returns Int(*n), or Omitted when n is nil.
func OptInt(n *int) Value {
	if n == nil {
		return Omitted()
	}

	return Int(*n)
}

// OptFloat returns Float(*f), or Omitted when f is nil.
func OptFloat(f *float64) Value {
	if f == nil {
		return Omitted()
	}

	return Float(*f)
}

// OptBool returns Bool(*b), or Omitted when b is nil.
func OptBool(b *bool) Value {
	if b == nil {
		return Omitted()
	}

	return Bool(*b)
}

// OptStrings returns Strings(values...), or Omitted when values is nil.
func OptStrings(values []string) Value {
	if values == nil {
		return Omitted()
	}

	return Strings(values...)
}

// OptInts returns Ints(values...), or Omitted when values is nil.
func OptInts(values []int) Value {
	if values == nil {
		return Omitted()
	}

	return Ints(values...)
}

// NonEmpty returns String(s), or Omitted when s is empty.
func NonEmpty(s string) Value {
	if s == "" {
		return Omitted()
	}

	return String(s)
}

// ValueOf classifies an arbitrary Go value.
//
// nil becomes Null, nil pointers become Omitted, slices and arrays become
// lists, and maps or structs become Unsupported.
func ValueOf(v any) Value {
	switch typed := v.(type) {
	case nil:
		return Null()
	case Value:
		return typed
	case string:
		return String(typed)
	case bool:
		return Bool(typed)
	case int:
		return Int(typed)
	case int64:
		return Int64(typed)
	case float64:
		return Float(typed)
	case json.Number:
		if n, err := typed.Int64(); err == nil {
			return Int64(n)
		}

		if f, err := typed.Float64(); err == nil {
			return Float(f)
		}

		return String(typed.String())
	case []string:
		return Strings(typed...)
	case []int:
		return Ints(typed...)
	case []Value:
		return List(typed...)
	}

	return valueOfReflect(reflect.ValueOf(v))
}

func valueOfReflect(rv reflect.Value) Value {
	//nolint:exhaustive // remaining kinds are unsupported
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Omitted()
		}

		return ValueOf(rv.Elem().Interface())
	case reflect.String:
		return String(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int64(int64(rv.Uint())) //nolint:gosec // query values never exceed int64
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null()
		}

		list := make([]Value, 0, rv.Len())
		for i := range rv.Len() {
			list = append(list, ValueOf(rv.Index(i).Interface()))
		}

		return Value{kind: KindList, list: list}
	default:
		return Value{kind: KindUnsupported}
	}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsOmitted reports whether v carries nothing.
func (v Value) IsOmitted() bool { return v.kind == KindOmitted }

// IsScalar reports whether v is a string, integer, float or bool.
func (v Value) IsScalar() bool {
	return v.kind == KindString || v.kind == KindInt || v.kind == KindFloat || v.kind == KindBool
}

// IsNumeric reports whether v is an integer or a float.
func (v Value) IsNumeric() bool { return v.kind == KindInt || v.kind == KindFloat }

// Int64 returns the integer held by v.
func (v Value) Int64() (int64, bool) { return v.num, v.kind == KindInt }

// Float64 returns the number held by v as a float.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.flt, true
	case KindInt:
		return float64(v.num), true
	default:
		return 0, false
	}
}

// Elements returns the members of a list value.
func (v Value) Elements() []Value {
	if v.kind != KindList {
		return nil
	}

	return v.list
}

// String returns the query string form of v. Lists are comma joined and
// anything that is not a scalar renders as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.flt, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindList:
		parts := make([]string, len(v.list))
		for i, elem := range v.list {
			parts[i] = elem.String()
		}

		return strings.Join(parts, ",")
	case KindOmitted, KindNull, KindUnsupported:
		return ""
	default:
		return ""
	}
}

// Interface returns v as a plain Go value suitable for encoding or
// expression evaluation.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.num
	case KindFloat:
		return v.flt
	case KindBool:
		return v.flag
	case KindList:
		out := make([]any, len(v.list))
		for i, elem := range v.list {
			out[i] = elem.Interface()
		}

		return out
	case KindOmitted, KindNull, KindUnsupported:
		return nil
	default:
		return nil
	}
}

// Params is a caller-supplied parameter bag.
type Params map[string]Value

// Set stores value under key and returns p for chaining.
func (p Params) Set(key string, value Value) Params {
	p[key] = value

	return p
}

// Clone returns a shallow copy of p. A nil Params clones to an empty one.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}

	return out
}

// With returns a copy of p with every entry of extra layered on top.
func (p Params) With(extra Params) Params {
	out := p.Clone()
	for k, v := range extra {
		out[k] = v
	}

	return out
}

// Query is a normalized parameter mapping. Every value is a scalar or omitted.
type Query map[string]Value

// Get returns the value stored under key.
func (q Query) Get(key string) (Value, bool) {
	v, ok := q[key]

	return v, ok
}

// Values converts q to url.Values, skipping omitted entries.
func (q Query) Values() url.Values {
	values := make(url.Values, len(q))
	for key, value := range q {
		if value.IsOmitted() {
			continue
		}

		values.Set(key, value.String())
	}

	return values
}

// NormalizeParams flattens params into a Query.
//
// Lists are joined with commas (an empty list becomes the empty string),
// scalars and omitted values pass through, and nulls or unsupported shapes
// are dropped without error.
func NormalizeParams(params Params) Query {
	query := make(Query, len(params))

	for key, value := range params {
		switch value.kind {
		case KindList:
			query[key] = String(value.String())
		case KindOmitted, KindString, KindInt, KindFloat, KindBool:
			query[key] = value
		case KindNull, KindUnsupported:
			// dropped
		}
	}

	return query
}

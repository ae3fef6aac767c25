package decode

import (
	"math"
	"strconv"

	"github.com/tidwall/gjson"
)

// Value is a JSON value that remembers where it came from.
type Value struct {
	res  gjson.Result
	path string
}

// Parse validates payload and returns its root value.
func Parse(payload []byte) (Value, error) {
	if !gjson.ValidBytes(payload) {
		return Value{}, fail("", ErrSyntax)
	}
	return Value{res: gjson.ParseBytes(payload)}, nil
}

// Path is the dotted location of the value inside the payload.
func (v Value) Path() string { return v.path }

// Exists reports whether the value is present and not null.
func (v Value) Exists() bool {
	return v.res.Exists() && v.res.Type != gjson.Null
}

// Raw returns the value's JSON text.
func (v Value) Raw() string { return v.res.Raw }

// Get returns the named member. Absent members yield a Value whose Exists is false.
func (v Value) Get(field string) Value {
	return Value{res: v.res.Get(gjson.Escape(field)), path: join(v.path, field)}
}

// Object returns the named member, requiring it to be a JSON object.
func (v Value) Object(field string) (Value, error) {
	child := v.Get(field)
	if !child.Exists() {
		return Value{}, fail(child.path, ErrMissing)
	}
	if !child.res.IsObject() {
		return Value{}, typeError(child.path, "object", child)
	}
	return child, nil
}

// Array returns the named member, requiring it to be a JSON array.
func (v Value) Array(field string) (Value, error) {
	child := v.Get(field)
	if !child.Exists() {
		return Value{}, fail(child.path, ErrMissing)
	}
	if !child.res.IsArray() {
		return Value{}, typeError(child.path, "array", child)
	}
	return child, nil
}

// Each calls fn for every member of an object, stopping at the first error.
func (v Value) Each(fn func(key string, member Value) error) error {
	if !v.res.IsObject() {
		return typeError(v.path, "object", v)
	}
	var err error
	v.res.ForEach(func(k, member gjson.Result) bool {
		err = fn(k.String(), Value{res: member, path: join(v.path, k.String())})
		return err == nil
	})
	return err
}

// Elements calls fn for every element of an array, stopping at the first error.
func (v Value) Elements(fn func(i int, elem Value) error) error {
	if !v.res.IsArray() {
		return typeError(v.path, "array", v)
	}
	for i, elem := range v.res.Array() {
		if err := fn(i, Value{res: elem, path: v.path + "[" + strconv.Itoa(i) + "]"}); err != nil {
			return err
		}
	}
	return nil
}

func (v Value) kindName() string {
	switch {
	case !v.res.Exists():
		return "nothing"
	case v.res.IsObject():
		return "object"
	case v.res.IsArray():
		return "array"
	}
	switch v.res.Type {
	case gjson.Null:
		return "null"
	case gjson.True, gjson.False:
		return "bool"
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	default:
		return "unknown"
	}
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

// Converter turns a present JSON value into T or reports a typed Error.
type Converter[T any] func(v Value) (T, error)

// String accepts JSON strings.
func String(v Value) (string, error) {
	if v.res.Type != gjson.String {
		return "", typeError(v.path, "string", v)
	}
	return v.res.Str, nil
}

// Float accepts JSON numbers.
func Float(v Value) (float64, error) {
	if v.res.Type != gjson.Number {
		return 0, typeError(v.path, "number", v)
	}
	return v.res.Num, nil
}

// Int accepts JSON numbers without a fractional part.
func Int(v Value) (int, error) {
	f, err := Float(v)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, typeError(v.path, "integer", v)
	}
	return int(v.res.Int()), nil
}

// Bool accepts JSON booleans.
func Bool(v Value) (bool, error) {
	if v.res.Type != gjson.True && v.res.Type != gjson.False {
		return false, typeError(v.path, "bool", v)
	}
	return v.res.Bool(), nil
}

// Strings accepts arrays whose every element is a string.
func Strings(v Value) ([]string, error) {
	out := []string{}
	err := v.Elements(func(_ int, elem Value) error {
		s, err := String(elem)
		if err != nil {
			return err
		}
		out = append(out, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IntString accepts a JSON string holding a base-10 integer, as some sources send numeric keys.
func IntString(v Value) (int, error) {
	s, err := String(v)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, typeError(v.path, "integer string", v)
	}
	return n, nil
}

// MIT License

// Copyright (c) 2023 wetrycode

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package apiresponse

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// MessageVariablesKey body key whose mapping is sanitized on failures
const MessageVariablesKey = "messageVariables"

const (
	objectPlaceholder = "[object Object]"
	inspectDepth      = 2
	inspectDateLayout = "2006-01-02T15:04:05.000Z"
)

// ValueShape the category a message variable falls into
type ValueShape uint

const (
	// ShapeScalar strings, numbers and booleans
	ShapeScalar ValueShape = iota
	// ShapeAbsent nil values and nil pointers
	ShapeAbsent
	// ShapeSequence slices and arrays
	ShapeSequence
	// ShapeObject maps, structs and everything else
	ShapeObject
)

// GetTypeName the name of the shape
func (s ValueShape) GetTypeName() string {
	switch s {
	case ShapeScalar:
		return "scalar"
	case ShapeAbsent:
		return "absent"
	case ShapeSequence:
		return "sequence"
	case ShapeObject:
		return "object"
	}
	return "unknown"
}

// ShapeOf classify a value
func ShapeOf(value interface{}) ValueShape {
	return shapeOf(reflect.ValueOf(value))
}

func shapeOf(v reflect.Value) ValueShape {
	if !v.IsValid() {
		return ShapeAbsent
	}
	switch v.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return ShapeScalar
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return ShapeAbsent
		}
		return shapeOf(v.Elem())
	case reflect.Slice:
		if v.IsNil() {
			return ShapeAbsent
		}
		return ShapeSequence
	case reflect.Array:
		return ShapeSequence
	case reflect.Map:
		if v.IsNil() {
			return ShapeAbsent
		}
		return ShapeObject
	}
	return ShapeObject
}

// EnsureScalar convert a value into a scalar a gateway can carry.
// Scalars are returned unchanged, absent values become "", sequences are
// comma joined and objects get an inspect style rendering.
func EnsureScalar(value interface{}) interface{} {
	v := reflect.ValueOf(value)
	switch shapeOf(v) {
	case ShapeScalar:
		return value
	case ShapeAbsent:
		return ""
	case ShapeSequence:
		return joinSequence(indirect(v))
	default:
		return inspect(value)
	}
}

// SanitizeMessageVariables apply EnsureScalar to every entry of vars in a new mapping
func SanitizeMessageVariables(vars map[string]interface{}) map[string]interface{} {
	sanitized := make(map[string]interface{}, len(vars))
	for key, value := range vars {
		sanitized[key] = EnsureScalar(value)
	}
	return sanitized
}

func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	return v
}

// joinSequence render a sequence the way a generic join does
func joinSequence(v reflect.Value) string {
	parts := make([]string, v.Len())
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		switch shapeOf(elem) {
		case ShapeAbsent:
			parts[i] = ""
		case ShapeScalar:
			parts[i] = scalarText(indirect(elem))
		case ShapeSequence:
			parts[i] = joinSequence(indirect(elem))
		default:
			parts[i] = objectPlaceholder
		}
	}
	return strings.Join(parts, ",")
}

// scalarText the default string form of a scalar
func scalarText(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return FormatNumber(v.Float(), 32)
	case reflect.Float64:
		return FormatNumber(v.Float(), 64)
	}
	return fmt.Sprintf("%v", v.Interface())
}

// FormatNumber render a float the way number to string conversion does:
// integral values carry no fraction, very large and very small magnitudes use an exponent.
func FormatNumber(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		text := strconv.FormatFloat(f, 'e', -1, bitSize)
		mantissa, exp, _ := strings.Cut(text, "e")
		if strings.HasPrefix(exp, "-") {
			return mantissa + "e-" + strings.TrimLeft(exp[1:], "0")
		}
		return mantissa + "e+" + strings.TrimLeft(strings.TrimPrefix(exp, "+"), "0")
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

var identifierKey = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// inspect a debugging representation of an object. Structs render by
// their JSON keys, dates render unquoted in UTC.
func inspect(value interface{}) string {
	return inspectValue(inspectable(value), 0)
}

// rawText is printed by inspectValue as it is
type rawText string

// inspectable normalize value into generic JSON shapes keeping time.Time values
func inspectable(value interface{}) interface{} {
	switch typed := value.(type) {
	case time.Time:
		return typed
	case *time.Time:
		if typed == nil {
			return nil
		}
		return *typed
	case map[string]interface{}:
		if typed == nil {
			return nil
		}
		out := make(map[string]interface{}, len(typed))
		for key, elem := range typed {
			out[key] = inspectable(elem)
		}
		return out
	case []interface{}:
		if typed == nil {
			return nil
		}
		out := make([]interface{}, len(typed))
		for i, elem := range typed {
			out[i] = inspectable(elem)
		}
		return out
	}
	data, err := json.Marshal(value)
	if err != nil {
		return rawText(fmt.Sprintf("%v", value))
	}
	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return rawText(fmt.Sprintf("%v", value))
	}
	return generic
}

func inspectValue(value interface{}, depth int) string {
	switch typed := value.(type) {
	case nil:
		return "null"
	case rawText:
		return string(typed)
	case time.Time:
		return typed.UTC().Format(inspectDateLayout)
	case string:
		return quoteString(typed)
	case bool:
		return strconv.FormatBool(typed)
	case float64:
		return FormatNumber(typed, 64)
	case []interface{}:
		if len(typed) == 0 {
			return "[]"
		}
		if depth > inspectDepth {
			return "[Array]"
		}
		parts := make([]string, len(typed))
		for i, elem := range typed {
			parts[i] = inspectValue(elem, depth+1)
		}
		return "[ " + strings.Join(parts, ", ") + " ]"
	case map[string]interface{}:
		if len(typed) == 0 {
			return "{}"
		}
		if depth > inspectDepth {
			return "[Object]"
		}
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, key := range keys {
			name := key
			if !identifierKey.MatchString(key) {
				name = quoteString(key)
			}
			parts[i] = name + ": " + inspectValue(typed[key], depth+1)
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	}
	return fmt.Sprintf("%v", value)
}

func quoteString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

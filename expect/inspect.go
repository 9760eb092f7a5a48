package expect

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Inspect renders a value the way failure messages show it.
// Strings are single-quoted, collections are rendered element by element, and nil is "nil".
func Inspect(val any) string {
	return inspect(reflect.ValueOf(val), 0)
}

const maxInspectDepth = 4

func inspect(v reflect.Value, depth int) string {
	if !v.IsValid() {
		return "nil"
	}
	if depth > maxInspectDepth {
		return "[" + v.Type().String() + "]"
	}
	if v.CanInterface() {
		switch t := v.Interface().(type) {
		case error:
			if v.Kind() == reflect.Pointer && v.IsNil() {
				return "nil"
			}
			return "[error: " + t.Error() + "]"
		case fmt.Stringer:
			if v.Kind() == reflect.Pointer && v.IsNil() {
				return "nil"
			}
			return t.String()
		}
	}
	switch v.Kind() {
	case reflect.String:
		return "'" + v.String() + "'"
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return "nil"
		}
		return inspect(v.Elem(), depth+1)
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return "nil"
		}
		if v.Len() == 0 {
			return "[]"
		}
		parts := make([]string, v.Len())
		for i := 0; i < v.Len(); i++ {
			parts[i] = inspect(v.Index(i), depth+1)
		}
		return "[ " + strings.Join(parts, ", ") + " ]"
	case reflect.Map:
		if v.IsNil() {
			return "nil"
		}
		if v.Len() == 0 {
			return "{}"
		}
		parts := make([]string, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			parts = append(parts, inspectKey(iter.Key())+": "+inspect(iter.Value(), depth+1))
		}
		sort.Strings(parts)
		return "{ " + strings.Join(parts, ", ") + " }"
	case reflect.Struct:
		if v.NumField() == 0 {
			return v.Type().String() + "{}"
		}
		parts := make([]string, v.NumField())
		for i := 0; i < v.NumField(); i++ {
			parts[i] = v.Type().Field(i).Name + ": " + inspect(v.Field(i), depth+1)
		}
		return v.Type().String() + "{ " + strings.Join(parts, ", ") + " }"
	case reflect.Func, reflect.Chan:
		if v.IsNil() {
			return "nil"
		}
		return "[" + v.Type().String() + "]"
	case reflect.Bool:
		return fmt.Sprint(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fmt.Sprint(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fmt.Sprint(v.Uint())
	case reflect.Float32, reflect.Float64:
		return fmt.Sprint(v.Float())
	default:
		if v.CanInterface() {
			return fmt.Sprintf("%v", v.Interface())
		}
		return "[" + v.Type().String() + "]"
	}
}

func inspectKey(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return inspect(k, maxInspectDepth)
}

/*
Copyright 2023 eatmoreapple

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package env

import (
	"fmt"
	"reflect"
)

// valueFromReflect handles the Go shapes FromGo's type switch does not name
// directly: structs, pointers, named slice/map types, and so on. It is the
// fallback path, not the common one, so reflection cost here is acceptable.
func valueFromReflect(v any) Value {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return Null
	}
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null
		}
		return valueFromReflect(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		n := rv.Len()
		items := make([]Value, n)
		for i := 0; i < n; i++ {
			items[i] = FromGo(rv.Index(i).Interface())
		}
		return Array(items...)
	case reflect.Map:
		m := NewOrderedMap()
		for _, key := range rv.MapKeys() {
			m.Set(fmt.Sprint(key.Interface()), FromGo(rv.MapIndex(key).Interface()))
		}
		return Object(m)
	case reflect.Struct:
		m := NewOrderedMap()
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			field := rt.Field(i)
			if !field.IsExported() {
				continue
			}
			name := field.Tag.Get("json")
			if name == "" || name == "-" {
				name = field.Name
			}
			m.Set(name, FromGo(rv.Field(i).Interface()))
		}
		return Object(m)
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.String:
		return String(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Number(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float())
	default:
		return Null
	}
}

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

import "testing"

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"null", Null, false},
		{"false", Bool(false), false},
		{"true", Bool(true), true},
		{"zero", Number(0), false},
		{"nonzero", Number(1), true},
		{"empty string", String(""), false},
		{"nonempty string", String("x"), true},
		{"empty array", Array(), false},
		{"nonempty array", Array(Number(1)), true},
		{"empty object", Object(NewOrderedMap()), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsTruthy(); got != tt.want {
				t.Fatalf("IsTruthy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrderedMapInsertionOrder(t *testing.T) {
	m := NewOrderedMap()
	m.Set("b", Number(2))
	m.Set("a", Number(1))
	m.Set("c", Number(3))
	got := m.Keys()
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFromGoObject(t *testing.T) {
	v := FromGo(map[string]any{"name": "x", "age": 7})
	if v.Kind() != KindObject {
		t.Fatalf("Kind() = %v, want object", v.Kind())
	}
	name, ok := v.Object().Get("name")
	if !ok || name.Str() != "x" {
		t.Fatalf("name = %v, ok=%v", name, ok)
	}
}

func TestValueString(t *testing.T) {
	if got := Number(7).String(); got != "7" {
		t.Fatalf("String() = %q, want 7", got)
	}
	if got := Bool(true).String(); got != "true" {
		t.Fatalf("String() = %q, want true", got)
	}
}

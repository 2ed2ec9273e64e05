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

package node

import (
	"testing"

	"github.com/sqlmap-go/sqlmap/dialect"
	"github.com/sqlmap-go/sqlmap/env"
)

func newTestContext(root env.Value) *Context {
	return NewContext(root, dialect.MySQL, nil)
}

func objEnv(pairs ...any) env.Value {
	m := env.NewOrderedMap()
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i].(string), env.FromGo(pairs[i+1]))
	}
	return env.Object(m)
}

func mustTextNode(t *testing.T, raw string) *TextNode {
	t.Helper()
	n, err := NewTextNode(raw)
	if err != nil {
		t.Fatalf("NewTextNode(%q): %v", raw, err)
	}
	return n
}

func TestConditionNode(t *testing.T) {
	tests := []struct {
		name string
		test string
		env  env.Value
		want string
	}{
		{"matched", "name != null", objEnv("name", "x"), "and name = x"},
		{"not matched", "name != null", objEnv(), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := NewConditionNode(tt.test, NodeGroup{mustTextNode(t, "and name = ${name}")})
			if err != nil {
				t.Fatal(err)
			}
			got, err := cond.Eval(newTestContext(tt.env))
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("Eval() = %q, want %q", got, tt.want)
			}
		})
	}
}

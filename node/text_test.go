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
)

func TestTextNodeLiteralOnly(t *testing.T) {
	n := mustTextNode(t, "select * from users")
	got, err := n.Eval(newTestContext(objEnv()))
	if err != nil {
		t.Fatal(err)
	}
	if got != "select * from users" {
		t.Fatalf("Eval() = %q", got)
	}
}

func TestTextNodeParameterizedPlaceholder(t *testing.T) {
	n := mustTextNode(t, "id = #{id}")
	ctx := newTestContext(objEnv("id", 7))
	got, err := n.Eval(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got != "id = ?" {
		t.Fatalf("Eval() = %q, want %q", got, "id = ?")
	}
	if len(ctx.Bindings) != 1 {
		t.Fatalf("Bindings = %v, want 1 entry", ctx.Bindings)
	}
}

func TestTextNodeInlinePlaceholder(t *testing.T) {
	n := mustTextNode(t, "order by ${column}")
	ctx := newTestContext(objEnv("column", "created_at"))
	got, err := n.Eval(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got != "order by created_at" {
		t.Fatalf("Eval() = %q", got)
	}
	if len(ctx.Bindings) != 0 {
		t.Fatalf("inline placeholder must not add a binding, got %v", ctx.Bindings)
	}
}

func TestTextNodeMixedPlaceholders(t *testing.T) {
	n := mustTextNode(t, "select ${cols} from t where id = #{id} and name = #{name}")
	ctx := newTestContext(objEnv("cols", "id, name", "id", 1, "name", "a"))
	got, err := n.Eval(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := "select id, name from t where id = ? and name = ?"
	if got != want {
		t.Fatalf("Eval() = %q, want %q", got, want)
	}
	if len(ctx.Bindings) != 2 {
		t.Fatalf("Bindings = %v, want 2 entries", ctx.Bindings)
	}
}

func TestTextNodeDottedPath(t *testing.T) {
	n := mustTextNode(t, "#{user.id}")
	ctx := newTestContext(objEnv("user", map[string]any{"id": 42}))
	got, err := n.Eval(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got != "?" {
		t.Fatalf("Eval() = %q", got)
	}
	if ctx.Bindings[0] != float64(42) {
		t.Fatalf("binding = %v, want 42", ctx.Bindings[0])
	}
}

func TestTextNodeMarkerIncrementsAcrossBindings(t *testing.T) {
	n, err := NewTextNode("#{a} and #{b}")
	if err != nil {
		t.Fatal(err)
	}
	ctx := NewContext(objEnv("a", 1, "b", 2), dialect.Postgres, nil)
	got, err := n.Eval(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got != "$1 and $2" {
		t.Fatalf("Eval() = %q", got)
	}
}

func TestTextNodeSyntaxErrorInPlaceholder(t *testing.T) {
	if _, err := NewTextNode("#{1bad}"); err == nil {
		t.Fatal("expected a compile error for a malformed placeholder path")
	}
}

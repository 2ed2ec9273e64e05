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

	"github.com/sqlmap-go/sqlmap/expr"
)

func mustForeach(t *testing.T, collection, item, index, open, close_, sep, body string) *ForeachNode {
	t.Helper()
	c, err := expr.Compile(collection)
	if err != nil {
		t.Fatal(err)
	}
	return &ForeachNode{
		Collection: c,
		Item:       item,
		Index:      index,
		Open:       open,
		Close:      close_,
		Separator:  sep,
		Nodes:      NodeGroup{mustTextNode(t, body)},
	}
}

func TestForeachNodeOverArray(t *testing.T) {
	f := mustForeach(t, "ids", "id", "", "(", ")", ",", "#{id}")
	ctx := newTestContext(objEnv("ids", []any{1, 2, 3}))
	got, err := f.Eval(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got != "(?,?,?)" {
		t.Fatalf("Eval() = %q, want %q", got, "(?,?,?)")
	}
	if len(ctx.Bindings) != 3 {
		t.Fatalf("Bindings = %v, want 3", ctx.Bindings)
	}
}

func TestForeachNodeOverObjectInsertionOrder(t *testing.T) {
	f := mustForeach(t, "cols", "val", "key", "", "", ", ", "${key} = #{val}")
	ctx := newTestContext(objEnv("cols", objEnv("name", "bob", "age", 30)))
	got, err := f.Eval(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got != "name = ?, age = ?" {
		t.Fatalf("Eval() = %q, want %q", got, "name = ?, age = ?")
	}
}

func TestForeachNodeEmptyCollectionProducesNothing(t *testing.T) {
	f := mustForeach(t, "ids", "id", "", "(", ")", ",", "#{id}")
	ctx := newTestContext(objEnv("ids", []any{}))
	got, err := f.Eval(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Fatalf("Eval() = %q, want empty", got)
	}
}

func TestForeachNodeNullCollectionProducesNothing(t *testing.T) {
	f := mustForeach(t, "ids", "id", "", "(", ")", ",", "#{id}")
	got, err := f.Eval(newTestContext(objEnv()))
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Fatalf("Eval() = %q, want empty", got)
	}
}

func TestForeachNodeShadowsAndRestoresItem(t *testing.T) {
	f := mustForeach(t, "ids", "id", "", "", "", ",", "#{id}")
	ctx := newTestContext(objEnv("id", "outer", "ids", []any{1, 2}))
	if _, err := f.Eval(ctx); err != nil {
		t.Fatal(err)
	}
	obj := ctx.rootObject()
	got, _ := obj.Get("id")
	if got.Str() != "outer" {
		t.Fatalf("id after foreach = %v, want restored to outer", got)
	}
}

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

type fakeResolver map[string]Node

func (r fakeResolver) Resolve(refid string) (Node, bool) {
	n, ok := r[refid]
	return n, ok
}

func TestIncludeNodeResolvesFragment(t *testing.T) {
	frag := &SQLFragmentNode{ID: "cols", Nodes: NodeGroup{mustTextNode(t, "id, name")}}
	resolver := fakeResolver{"cols": frag}

	inc := &IncludeNode{RefID: "cols"}
	ctx := NewContext(objEnv(), dialect.MySQL, resolver)
	got, err := inc.Eval(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got != "id, name" {
		t.Fatalf("Eval() = %q", got)
	}
}

func TestIncludeNodeUnknownRefID(t *testing.T) {
	inc := &IncludeNode{RefID: "missing"}
	ctx := NewContext(objEnv(), dialect.MySQL, fakeResolver{})
	_, err := inc.Eval(ctx)
	if err == nil {
		t.Fatal("expected an UnknownStatement error")
	}
	if _, ok := err.(*UnknownStatement); !ok {
		t.Fatalf("expected *UnknownStatement, got %T", err)
	}
}

func TestIncludeNodeCycleDetection(t *testing.T) {
	var a, b *SQLFragmentNode
	a = &SQLFragmentNode{ID: "a", Nodes: NodeGroup{&IncludeNode{RefID: "b"}}}
	b = &SQLFragmentNode{ID: "b", Nodes: NodeGroup{&IncludeNode{RefID: "a"}}}
	resolver := fakeResolver{"a": a, "b": b}

	ctx := NewContext(objEnv(), dialect.MySQL, resolver)
	inc := &IncludeNode{RefID: "a"}
	_, err := inc.Eval(ctx)
	if err == nil {
		t.Fatal("expected IncludeCycle error")
	}
	if _, ok := err.(*IncludeCycle); !ok {
		t.Fatalf("expected *IncludeCycle, got %T", err)
	}
}

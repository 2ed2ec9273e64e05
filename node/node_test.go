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
	"errors"
	"testing"

	"github.com/sqlmap-go/sqlmap/env"
)

type fakeNode struct {
	out string
	err error
}

func (f fakeNode) Eval(ctx *Context) (string, error) { return f.out, f.err }

func TestNodeGroupEval(t *testing.T) {
	tests := []struct {
		name  string
		nodes NodeGroup
		want  string
	}{
		{"empty", NodeGroup{}, ""},
		{"single", NodeGroup{fakeNode{out: "select 1"}}, "select 1"},
		{"joins with one space", NodeGroup{fakeNode{out: "select"}, fakeNode{out: "1"}}, "select 1"},
		{"skips empty fragments", NodeGroup{fakeNode{out: "select"}, fakeNode{out: ""}, fakeNode{out: "1"}}, "select 1"},
		{"no double space when fragment already trails one", NodeGroup{fakeNode{out: "select "}, fakeNode{out: "1"}}, "select 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(objEnv())
			got, err := tt.nodes.Eval(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("Eval() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNodeGroupPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	group := NodeGroup{fakeNode{out: "a"}, fakeNode{err: boom}, fakeNode{out: "b"}}
	_, err := group.Eval(newTestContext(objEnv()))
	if !errors.Is(err, boom) {
		t.Fatalf("Eval() error = %v, want %v", err, boom)
	}
}

func TestContextBindUnbindRestoresPriorValue(t *testing.T) {
	ctx := newTestContext(objEnv("id", "orig"))
	prior, existed := ctx.bind("id", env.String("shadowed"))
	if !existed || prior.Str() != "orig" {
		t.Fatalf("bind() prior = %v, existed = %v", prior, existed)
	}
	obj := ctx.rootObject()
	got, _ := obj.Get("id")
	if got.Str() != "shadowed" {
		t.Fatalf("got %v, want shadowed", got)
	}
	ctx.unbind("id", prior, existed)
	got, _ = obj.Get("id")
	if got.Str() != "orig" {
		t.Fatalf("after unbind got %v, want orig", got)
	}
}

func TestContextBindUnbindDeletesWhenAbsent(t *testing.T) {
	ctx := newTestContext(objEnv())
	prior, existed := ctx.bind("item", env.String("x"))
	if existed {
		t.Fatalf("expected no prior value")
	}
	ctx.unbind("item", prior, existed)
	obj := ctx.rootObject()
	if _, ok := obj.Get("item"); ok {
		t.Fatalf("expected item to be removed after unbind")
	}
}

func TestEnterIncludeCycleDetection(t *testing.T) {
	ctx := newTestContext(objEnv())
	leave, err := ctx.enterInclude("frag")
	if err != nil {
		t.Fatal(err)
	}
	defer leave()

	if _, err := ctx.enterInclude("frag"); err == nil {
		t.Fatal("expected IncludeCycle error")
	} else if _, ok := err.(*IncludeCycle); !ok {
		t.Fatalf("expected *IncludeCycle, got %T", err)
	}
}

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

// Package node implements the tagged union of AST nodes the compiler
// produces and the common evaluation contract they share: each node turns
// itself, the current environment, and the accumulated bindings into a SQL
// fragment.
package node

import (
	"strings"

	"github.com/sqlmap-go/sqlmap/dialect"
	"github.com/sqlmap-go/sqlmap/env"
)

// Resolver resolves an <include refid="…"/> against the long-lived table
// of mapper-local ids. Implemented by the registry package; declared here
// to avoid a node -> registry import cycle (registry already imports node
// for the Node type it stores).
type Resolver interface {
	Resolve(refid string) (Node, bool)
}

// Context is threaded through one evaluation of a statement. Env and the
// bindings slice are mutated in place as nodes are visited; chain is the
// include ancestor set used for cycle detection.
type Context struct {
	Env      env.Value
	Bindings []any
	Dialect  dialect.Dialect
	Resolver Resolver

	chain map[string]struct{}
}

// NewContext builds a fresh per-evaluation Context. root must be an object
// Value; it is the root of the dynamic parameter tree.
func NewContext(root env.Value, d dialect.Dialect, resolver Resolver) *Context {
	return &Context{Env: root, Dialect: d, Resolver: resolver, chain: make(map[string]struct{})}
}

// bind sets name on the environment's root object, returning the prior
// value (if any) so a caller can restore it on scope exit.
func (c *Context) bind(name string, value env.Value) (prior env.Value, existed bool) {
	obj := c.rootObject()
	prior, existed = obj.Get(name)
	obj.Set(name, value)
	return prior, existed
}

func (c *Context) unbind(name string, prior env.Value, existed bool) {
	obj := c.rootObject()
	if existed {
		obj.Set(name, prior)
	} else {
		obj.Delete(name)
	}
}

func (c *Context) rootObject() *env.OrderedMap {
	if c.Env.Kind() != env.KindObject {
		c.Env = env.Object(env.NewOrderedMap())
	}
	return c.Env.Object()
}

func (c *Context) addBinding(v any) {
	c.Bindings = append(c.Bindings, v)
}

func (c *Context) enterInclude(refid string) (func(), error) {
	if _, ok := c.chain[refid]; ok {
		return nil, &IncludeCycle{RefID: refid}
	}
	c.chain[refid] = struct{}{}
	return func() { delete(c.chain, refid) }, nil
}

// Node is the fundamental interface for all SQL generation components: it
// converts itself into a SQL fragment against the current Context,
// accumulating bindings as a side effect.
type Node interface {
	Eval(ctx *Context) (string, error)
}

// NodeGroup aggregates a sequence of Nodes, concatenating their rendered
// fragments in declaration order. A child error aborts the whole group.
type NodeGroup []Node

// Eval renders every node in the group and joins the non-empty fragments
// with a single separating space.
func (g NodeGroup) Eval(ctx *Context) (string, error) {
	switch len(g) {
	case 0:
		return "", nil
	case 1:
		return g[0].Eval(ctx)
	}

	builder := getStringBuilder()
	defer putStringBuilder(builder)

	wrotePrevSpace := true
	for _, n := range g {
		frag, err := n.Eval(ctx)
		if err != nil {
			return "", err
		}
		if frag == "" {
			continue
		}
		if builder.Len() > 0 && !wrotePrevSpace {
			builder.WriteString(" ")
		}
		builder.WriteString(frag)
		wrotePrevSpace = strings.HasSuffix(frag, " ")
	}
	return builder.String(), nil
}

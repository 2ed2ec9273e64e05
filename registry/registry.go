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

// Package registry is the ConfigHolder: it loads mapper documents into a
// lookup table addressed by namespace-qualified id and exposes the public
// eval_statement/register_mapper contract over the compile and node
// packages. The compiled table is read-only once a mapper finishes
// loading and may be shared across any number of concurrent evaluators;
// only RegisterMapper itself is not safe to call concurrently with other
// registry methods.
package registry

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/sqlmap-go/sqlmap/compile"
	"github.com/sqlmap-go/sqlmap/dialect"
	"github.com/sqlmap-go/sqlmap/env"
	"github.com/sqlmap-go/sqlmap/internal/container"
	"github.com/sqlmap-go/sqlmap/node"
)

type statementEntry struct {
	namespace string
	statement *node.Statement
}

// Registry is the ConfigHolder: the namespace-qualified id table backing
// register_mapper/eval_statement and <include> resolution.
type Registry struct {
	namespaces map[string]struct{}
	statements *container.Trie[*statementEntry]
	fragments  *container.Trie[*node.SQLFragmentNode]
	resultMaps *container.Trie[*node.ResultMapNode]
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		namespaces: make(map[string]struct{}),
		statements: container.NewTrie[*statementEntry](),
		fragments:  container.NewTrie[*node.SQLFragmentNode](),
		resultMaps: container.NewTrie[*node.ResultMapNode](),
	}
}

// RegisterMapper parses and compiles one mapper document under namespace,
// registering every statement, <sql> fragment, and result_map it declares
// under a "namespace.id" key. A namespace may only be registered once.
func (r *Registry) RegisterMapper(namespace string, doc io.Reader) error {
	if namespace == "" {
		return errors.New("registry: namespace must not be empty")
	}
	if _, exists := r.namespaces[namespace]; exists {
		return &DuplicateNamespace{Namespace: namespace}
	}

	elements, err := compile.ParseElements(doc)
	if err != nil {
		return errors.Wrapf(err, "registry: loading mapper %q", namespace)
	}

	holder := &registrationHolder{registry: r, namespace: namespace}
	if _, err := compile.Compile(elements, holder); err != nil {
		return errors.Wrapf(err, "registry: compiling mapper %q", namespace)
	}

	r.namespaces[namespace] = struct{}{}
	return nil
}

// registrationHolder adapts Registry to compile.Holder for one
// RegisterMapper call, prefixing every id with its mapper's namespace.
type registrationHolder struct {
	registry  *Registry
	namespace string
}

func (h *registrationHolder) RegisterStatement(s *node.Statement) {
	h.registry.statements.Insert(h.namespace+"."+s.ID, &statementEntry{namespace: h.namespace, statement: s})
}

func (h *registrationHolder) RegisterFragment(f *node.SQLFragmentNode) {
	h.registry.fragments.Insert(h.namespace+"."+f.ID, f)
}

func (h *registrationHolder) RegisterResultMap(rm *node.ResultMapNode) {
	h.registry.resultMaps.Insert(h.namespace+"."+rm.ID, rm)
}

// EvalStatement renders the statement named by id (namespace-qualified,
// e.g. "user.findByName") against root, returning the rendered SQL and
// its positional bindings in render order.
func (r *Registry) EvalStatement(id string, root env.Value, d dialect.Dialect) (string, []any, error) {
	entry, ok := r.statements.Get(id)
	if !ok {
		return "", nil, &node.UnknownStatement{ID: id}
	}
	ctx := node.NewContext(root, d, nsResolver{registry: r, namespace: entry.namespace})
	sql, err := entry.statement.Eval(ctx)
	if err != nil {
		return "", nil, errors.Wrapf(err, "registry: evaluating %q", id)
	}
	return sql, ctx.Bindings, nil
}

// ResultMap returns the declarative result_map registered under id, if
// any.
func (r *Registry) ResultMap(id string) (*node.ResultMapNode, bool) {
	return r.resultMaps.Get(id)
}

// nsResolver resolves an <include refid> relative to the namespace of the
// statement currently being evaluated: a bare refid (no '.') resolves
// within that namespace; a dotted refid is taken as already
// fully-qualified and crosses into whichever mapper namespace it names.
// A <sql> fragment with the key wins over a statement with the same key.
type nsResolver struct {
	registry  *Registry
	namespace string
}

func (nr nsResolver) Resolve(refid string) (node.Node, bool) {
	key := refid
	if !strings.Contains(refid, ".") {
		key = nr.namespace + "." + refid
	}
	if frag, ok := nr.registry.fragments.Get(key); ok {
		return frag, true
	}
	if entry, ok := nr.registry.statements.Get(key); ok {
		return entry.statement, true
	}
	return nil, false
}

var _ node.Resolver = nsResolver{}

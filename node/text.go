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
	"regexp"

	"github.com/sqlmap-go/sqlmap/expr"
)

// placeholderRegexp matches both placeholder forms in one pass so literal
// text splits into ordered pieces regardless of which form appears first:
//
//	#{path}  -> parameterized, group 1
//	${path}  -> inlined, group 2
var placeholderRegexp = regexp.MustCompile(`#{\s*(\w+(?:\.\w+)*)\s*}|\$\{\s*(\w+(?:\.\w+)*)\s*}`)

// textToken is one piece of a compiled TextNode: a literal run, or a
// placeholder with its path expression pre-compiled.
type textToken struct {
	literal       string
	path          string
	compiled      *expr.Expr
	parameterized bool // #{...} vs ${...}
}

// TextNode renders literal SQL text, splicing in the value of any
// #{…}/${…} placeholders it contains. It is the engine's leaf node: every
// run of raw text between tags compiles to one TextNode.
type TextNode struct {
	raw    string
	tokens []textToken
}

// NewTextNode compiles raw into a TextNode, pre-splitting it into literal
// and placeholder pieces so Eval does no regexp work on the hot path.
func NewTextNode(raw string) (*TextNode, error) {
	matches := placeholderRegexp.FindAllStringSubmatchIndex(raw, -1)
	tn := &TextNode{raw: raw}
	if len(matches) == 0 {
		if raw != "" {
			tn.tokens = append(tn.tokens, textToken{literal: raw})
		}
		return tn, nil
	}

	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > last {
			tn.tokens = append(tn.tokens, textToken{literal: raw[last:start]})
		}
		var path string
		parameterized := m[2] != -1
		if parameterized {
			path = raw[m[2]:m[3]]
		} else {
			path = raw[m[4]:m[5]]
		}
		compiled, err := expr.Compile(path)
		if err != nil {
			return nil, err
		}
		tn.tokens = append(tn.tokens, textToken{path: path, compiled: compiled, parameterized: parameterized})
		last = end
	}
	if last < len(raw) {
		tn.tokens = append(tn.tokens, textToken{literal: raw[last:]})
	}
	return tn, nil
}

// Eval implements Node.
func (n *TextNode) Eval(ctx *Context) (string, error) {
	if len(n.tokens) == 0 {
		return "", nil
	}
	if len(n.tokens) == 1 && n.tokens[0].compiled == nil {
		return n.tokens[0].literal, nil
	}

	builder := getStringBuilder()
	defer putStringBuilder(builder)

	for _, tok := range n.tokens {
		if tok.compiled == nil {
			builder.WriteString(tok.literal)
			continue
		}
		value, err := expr.Eval(tok.compiled, ctx.Env)
		if err != nil {
			return "", err
		}
		if tok.parameterized {
			ctx.addBinding(value.Interface())
			marker := ctx.Dialect.Marker(len(ctx.Bindings))
			builder.WriteString(ctx.Dialect.Format(tok.path, marker))
		} else {
			builder.WriteString(value.String())
		}
	}
	return builder.String(), nil
}

var _ Node = (*TextNode)(nil)

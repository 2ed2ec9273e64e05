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

package expr

import "github.com/sqlmap-go/sqlmap/env"

// node is the internal AST produced by the parser. Expr wraps the root
// node and is the only type exported to callers.
type node interface {
	isExprNode()
}

type literalNode struct{ value env.Value }

type identNode struct{ name string }

type fieldAccessNode struct {
	x    node
	name string
}

type indexAccessNode struct {
	x     node
	index node
}

type unaryNode struct {
	op string
	x  node
}

type binaryNode struct {
	op   string
	l, r node
}

func (literalNode) isExprNode()     {}
func (identNode) isExprNode()       {}
func (fieldAccessNode) isExprNode() {}
func (indexAccessNode) isExprNode() {}
func (unaryNode) isExprNode()       {}
func (binaryNode) isExprNode()      {}

// Expr is a compiled expression, ready to be evaluated against an
// environment with Eval.
type Expr struct {
	root   node
	source string
}

// Source returns the original expression text the Expr was compiled from.
func (e *Expr) Source() string { return e.source }

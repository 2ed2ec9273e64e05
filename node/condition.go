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
	"github.com/sqlmap-go/sqlmap/expr"
)

// ConditionNode evaluates a test expression and, if truthy, emits its
// children; otherwise it emits nothing. It backs both <if> and <when>,
// which differ only in how their parent drives them.
type ConditionNode struct {
	Test  *expr.Expr
	Nodes NodeGroup
}

// NewConditionNode compiles test and wraps nodes.
func NewConditionNode(test string, nodes NodeGroup) (*ConditionNode, error) {
	compiled, err := expr.Compile(test)
	if err != nil {
		return nil, err
	}
	return &ConditionNode{Test: compiled, Nodes: nodes}, nil
}

// Match reports whether Test is truthy against the current environment.
func (c *ConditionNode) Match(ctx *Context) (bool, error) {
	return expr.Test(c.Test, ctx.Env)
}

// Eval implements Node.
func (c *ConditionNode) Eval(ctx *Context) (string, error) {
	matched, err := c.Match(ctx)
	if err != nil {
		return "", err
	}
	if !matched {
		return "", nil
	}
	return c.Nodes.Eval(ctx)
}

var _ Node = (*ConditionNode)(nil)

// IfNode is an alias for ConditionNode: <if test="…"> emits its children
// when test is truthy.
type IfNode = ConditionNode

// WhenNode is an alias for ConditionNode: a <choose> evaluates its <when>
// children in order and emits the first one whose test is truthy.
type WhenNode = ConditionNode

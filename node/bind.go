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

import "github.com/sqlmap-go/sqlmap/expr"

// BindNode evaluates Value and assigns the result to Name in the
// environment. Unlike ForeachNode's loop variables, a bind is not
// restored: it persists for the remainder of the enclosing statement's
// evaluation.
type BindNode struct {
	Name  string
	Value *expr.Expr
}

// Eval implements Node. BindNode never contributes text to the rendered
// SQL; it only has a side effect on the environment.
func (b *BindNode) Eval(ctx *Context) (string, error) {
	value, err := expr.Eval(b.Value, ctx.Env)
	if err != nil {
		return "", err
	}
	ctx.bind(b.Name, value)
	return "", nil
}

var _ Node = (*BindNode)(nil)

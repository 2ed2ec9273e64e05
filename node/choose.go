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

// ChooseNode implements a switch-like conditional: it evaluates each
// <when> in declaration order and emits the first whose test is truthy,
// falling back to <otherwise> (if present) when none match.
type ChooseNode struct {
	Whens     []*WhenNode
	Otherwise *OtherwiseNode
}

// Eval implements Node.
func (c *ChooseNode) Eval(ctx *Context) (string, error) {
	for _, when := range c.Whens {
		matched, err := when.Match(ctx)
		if err != nil {
			return "", err
		}
		if matched {
			return when.Nodes.Eval(ctx)
		}
	}
	if c.Otherwise != nil {
		return c.Otherwise.Eval(ctx)
	}
	return "", nil
}

var _ Node = (*ChooseNode)(nil)

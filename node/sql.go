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

// SQLFragmentNode is a reusable SQL fragment declared with <sql id="…">,
// distinct from a statement: it has no action kind of its own and exists
// only to be pulled in by an IncludeNode referencing its id.
type SQLFragmentNode struct {
	ID    string
	Nodes NodeGroup
}

// Eval implements Node.
func (s *SQLFragmentNode) Eval(ctx *Context) (string, error) {
	return s.Nodes.Eval(ctx)
}

var _ Node = (*SQLFragmentNode)(nil)

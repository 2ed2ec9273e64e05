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

// OtherwiseNode is the default branch of a <choose>, emitted when none of
// its sibling <when> nodes match. Standalone evaluation (outside a
// <choose>) simply emits its children.
type OtherwiseNode struct {
	Nodes NodeGroup
}

// Eval implements Node.
func (o *OtherwiseNode) Eval(ctx *Context) (string, error) {
	return o.Nodes.Eval(ctx)
}

var _ Node = (*OtherwiseNode)(nil)

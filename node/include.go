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

// IncludeNode resolves RefID against the Context's Resolver at evaluation
// time and recursively evaluates the target, failing with IncludeCycle if
// RefID is already being evaluated somewhere up the current chain.
type IncludeNode struct {
	RefID string
}

// Eval implements Node.
func (i *IncludeNode) Eval(ctx *Context) (string, error) {
	leave, err := ctx.enterInclude(i.RefID)
	if err != nil {
		return "", err
	}
	defer leave()

	target, ok := ctx.Resolver.Resolve(i.RefID)
	if !ok {
		return "", &UnknownStatement{ID: i.RefID}
	}
	return target.Eval(ctx)
}

var _ Node = (*IncludeNode)(nil)

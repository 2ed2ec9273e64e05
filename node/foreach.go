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
	"fmt"

	"github.com/sqlmap-go/sqlmap/env"
	"github.com/sqlmap-go/sqlmap/expr"
)

// ForeachNode iterates a collection resolved from the environment,
// binding Item (and, if given, Index) for the duration of each pass over
// Nodes and restoring whatever those names shadowed once the loop ends.
type ForeachNode struct {
	Collection *expr.Expr
	Item       string
	Index      string
	Open       string
	Close      string
	Separator  string
	Nodes      NodeGroup
}

// Eval implements Node.
func (f *ForeachNode) Eval(ctx *Context) (string, error) {
	collection, err := expr.Eval(f.Collection, ctx.Env)
	if err != nil {
		return "", err
	}

	switch collection.Kind() {
	case env.KindNull:
		return "", nil
	case env.KindArray:
		return f.evalArray(ctx, collection.Array())
	case env.KindObject:
		return f.evalObject(ctx, collection.Object())
	default:
		return "", fmt.Errorf("node: foreach collection is not an array or object")
	}
}

func (f *ForeachNode) evalArray(ctx *Context, items []env.Value) (string, error) {
	if len(items) == 0 {
		return "", nil
	}
	builder := getStringBuilder()
	defer putStringBuilder(builder)

	builder.WriteString(f.Open)
	for i, item := range items {
		body, err := f.evalOne(ctx, env.Number(float64(i)), item)
		if err != nil {
			return "", err
		}
		builder.WriteString(body)
		if i < len(items)-1 {
			builder.WriteString(f.Separator)
		}
	}
	builder.WriteString(f.Close)
	return builder.String(), nil
}

func (f *ForeachNode) evalObject(ctx *Context, obj *env.OrderedMap) (string, error) {
	keys := obj.Keys()
	if len(keys) == 0 {
		return "", nil
	}
	builder := getStringBuilder()
	defer putStringBuilder(builder)

	builder.WriteString(f.Open)
	for i, key := range keys {
		value, _ := obj.Get(key)
		body, err := f.evalOne(ctx, env.String(key), value)
		if err != nil {
			return "", err
		}
		builder.WriteString(body)
		if i < len(keys)-1 {
			builder.WriteString(f.Separator)
		}
	}
	builder.WriteString(f.Close)
	return builder.String(), nil
}

func (f *ForeachNode) evalOne(ctx *Context, index, item env.Value) (string, error) {
	itemPrior, itemExisted := ctx.bind(f.Item, item)
	defer ctx.unbind(f.Item, itemPrior, itemExisted)

	var indexPrior env.Value
	var indexExisted bool
	if f.Index != "" {
		indexPrior, indexExisted = ctx.bind(f.Index, index)
		defer ctx.unbind(f.Index, indexPrior, indexExisted)
	}

	return f.Nodes.Eval(ctx)
}

var _ Node = (*ForeachNode)(nil)

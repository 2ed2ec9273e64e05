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

package compile

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/sqlmap-go/sqlmap/expr"
	"github.com/sqlmap-go/sqlmap/internal/stringutil"
	"github.com/sqlmap-go/sqlmap/node"
)

// Holder receives the named things Compile discovers while walking a
// mapper document: statements, reusable <sql> fragments, and result maps.
// Compile itself stays pure — Holder is supplied by the caller (the
// registry) and Compile only calls its methods, performing no I/O.
type Holder interface {
	RegisterStatement(*node.Statement)
	RegisterFragment(*node.SQLFragmentNode)
	RegisterResultMap(*node.ResultMapNode)
}

// Compile walks a mapper document's top-level elements. <mapper> is
// transparent and its children are compiled in place; <select>,
// <insert>, <update>, <delete> compile to a Statement registered with
// holder; <sql> compiles to a reusable fragment registered with holder;
// <result_map> compiles to declarative data registered with holder. The
// returned slice carries whatever top-level statements, fragments and
// non-blank text nodes were produced, in declaration order, for a caller
// that wants them directly rather than through holder; result maps are
// only passed to holder.
func Compile(elements []Element, holder Holder) ([]node.Node, error) {
	var out []node.Node
	for _, el := range elements {
		switch el.Tag {
		case "mapper":
			children, err := Compile(el.Children, holder)
			if err != nil {
				return nil, err
			}
			out = append(out, children...)
		case "select", "insert", "update", "delete":
			stmt, err := compileStatement(el)
			if err != nil {
				return nil, err
			}
			holder.RegisterStatement(stmt)
			out = append(out, stmt)
		case "sql":
			frag, err := compileFragment(el)
			if err != nil {
				return nil, err
			}
			holder.RegisterFragment(frag)
			out = append(out, frag)
		case "result_map":
			rm, err := compileResultMap(el)
			if err != nil {
				return nil, err
			}
			holder.RegisterResultMap(rm)
		case "":
			if strings.TrimSpace(el.Data) != "" {
				text, err := node.NewTextNode(el.Data)
				if err != nil {
					return nil, err
				}
				out = append(out, text)
			}
		default:
			// unknown top-level tags are permissively dropped
		}
	}
	return out, nil
}

func compileStatement(el Element) (*node.Statement, error) {
	id := el.Attr("id")
	if id == "" {
		return nil, &MissingAttribute{Tag: el.Tag, Attr: "id"}
	}
	body, err := compileBody(el.Children)
	if err != nil {
		return nil, errors.Wrapf(err, "in <%s id=%q>", el.Tag, id)
	}
	return &node.Statement{
		ID:        id,
		Action:    node.Action(el.Tag),
		ResultMap: el.Attr("result_map"),
		Nodes:     body,
	}, nil
}

func compileFragment(el Element) (*node.SQLFragmentNode, error) {
	id := el.Attr("id")
	if id == "" {
		return nil, &MissingAttribute{Tag: "sql", Attr: "id"}
	}
	body, err := compileBody(el.Children)
	if err != nil {
		return nil, errors.Wrapf(err, "in <sql id=%q>", id)
	}
	return &node.SQLFragmentNode{ID: id, Nodes: body}, nil
}

// compileBody compiles the body of a statement/fragment/control-flow tag
// into a NodeGroup, dispatching on tag name. Unknown tags are dropped.
func compileBody(elements []Element) (node.NodeGroup, error) {
	var group node.NodeGroup
	for _, el := range elements {
		n, err := compileOne(el)
		if err != nil {
			return nil, err
		}
		if n != nil {
			group = append(group, n)
		}
	}
	return group, nil
}

func compileOne(el Element) (node.Node, error) {
	switch el.Tag {
	case "":
		if strings.TrimSpace(el.Data) == "" {
			return nil, nil
		}
		return node.NewTextNode(el.Data)

	case "if":
		test := el.Attr("test")
		if test == "" {
			return nil, &MissingAttribute{Tag: "if", Attr: "test"}
		}
		body, err := compileBody(el.Children)
		if err != nil {
			return nil, errors.Wrap(err, "in <if>")
		}
		return node.NewConditionNode(test, body)

	case "choose":
		return compileChoose(el)

	case "trim":
		body, err := compileBody(el.Children)
		if err != nil {
			return nil, errors.Wrap(err, "in <trim>")
		}
		return &node.TrimNode{
			Nodes:           body,
			Prefix:          el.Attr("prefix"),
			Suffix:          el.Attr("suffix"),
			PrefixOverrides: splitOverrides(el.Attr("prefix_overrides")),
			SuffixOverrides: splitOverrides(el.Attr("suffix_overrides")),
		}, nil

	case "where":
		body, err := compileBody(el.Children)
		if err != nil {
			return nil, errors.Wrap(err, "in <where>")
		}
		return node.NewWhereNode(body), nil

	case "set":
		body, err := compileBody(el.Children)
		if err != nil {
			return nil, errors.Wrap(err, "in <set>")
		}
		return node.NewSetNode(body), nil

	case "foreach":
		return compileForeach(el)

	case "bind":
		return compileBind(el)

	case "include":
		refid := el.Attr("refid")
		if refid == "" {
			return nil, &MissingAttribute{Tag: "include", Attr: "refid"}
		}
		return &node.IncludeNode{RefID: refid}, nil

	default:
		// unknown body-level tags are permissively dropped
		return nil, nil
	}
}

func compileChoose(el Element) (node.Node, error) {
	choose := &node.ChooseNode{}
	for _, child := range el.Children {
		switch child.Tag {
		case "when":
			test := child.Attr("test")
			if test == "" {
				return nil, &MissingAttribute{Tag: "when", Attr: "test"}
			}
			body, err := compileBody(child.Children)
			if err != nil {
				return nil, errors.Wrap(err, "in <when>")
			}
			when, err := node.NewConditionNode(test, body)
			if err != nil {
				return nil, err
			}
			choose.Whens = append(choose.Whens, when)
		case "otherwise":
			if choose.Otherwise != nil {
				return nil, &CompileError{Tag: "choose", Msg: "more than one <otherwise>"}
			}
			body, err := compileBody(child.Children)
			if err != nil {
				return nil, errors.Wrap(err, "in <otherwise>")
			}
			choose.Otherwise = &node.OtherwiseNode{Nodes: body}
		}
	}
	return choose, nil
}

func compileForeach(el Element) (node.Node, error) {
	collection := el.Attr("collection")
	if collection == "" {
		return nil, &MissingAttribute{Tag: "foreach", Attr: "collection"}
	}
	item := el.Attr("item")
	if item == "" {
		return nil, &MissingAttribute{Tag: "foreach", Attr: "item"}
	}
	compiled, err := expr.Compile(collection)
	if err != nil {
		return nil, err
	}
	body, err := compileBody(el.Children)
	if err != nil {
		return nil, errors.Wrap(err, "in <foreach>")
	}
	return &node.ForeachNode{
		Collection: compiled,
		Item:       item,
		Index:      el.Attr("index"),
		Open:       el.Attr("open"),
		Close:      el.Attr("close"),
		Separator:  el.Attr("separator"),
		Nodes:      body,
	}, nil
}

func compileBind(el Element) (node.Node, error) {
	name := el.Attr("name")
	if name == "" {
		return nil, &MissingAttribute{Tag: "bind", Attr: "name"}
	}
	value := el.Attr("value")
	if value == "" {
		return nil, &MissingAttribute{Tag: "bind", Attr: "value"}
	}
	compiled, err := expr.Compile(value)
	if err != nil {
		return nil, err
	}
	return &node.BindNode{Name: name, Value: compiled}, nil
}

func compileResultMap(el Element) (*node.ResultMapNode, error) {
	id := el.Attr("id")
	if id == "" {
		return nil, &MissingAttribute{Tag: "result_map", Attr: "id"}
	}
	rm := &node.ResultMapNode{ID: id}
	for _, child := range el.Children {
		switch child.Tag {
		case "id":
			column, property := child.Attr("column"), child.Attr("property")
			if column == "" {
				return nil, &MissingAttribute{Tag: "id", Attr: "column"}
			}
			if property == "" {
				return nil, &MissingAttribute{Tag: "id", Attr: "property"}
			}
			rm.IDField = &node.ResultMapIDNode{Column: column, Property: property, LangType: child.Attr("lang_type")}
		case "result":
			column, property := child.Attr("column"), child.Attr("property")
			if column == "" {
				return nil, &MissingAttribute{Tag: "result", Attr: "column"}
			}
			if property == "" {
				return nil, &MissingAttribute{Tag: "result", Attr: "property"}
			}
			rm.Results = append(rm.Results, &node.ResultMapResultNode{
				Column:        column,
				Property:      property,
				LangType:      child.Attr("lang_type"),
				VersionEnable: child.Attr("version_enable"),
				LogicEnable:   child.Attr("logic_enable"),
				LogicUndelete: child.Attr("logic_undelete"),
				LogicDeleted:  child.Attr("logic_deleted"),
			})
		}
	}
	return rm, nil
}

// splitOverrides splits a "AND |OR " style attribute on '|'. An empty
// attribute yields no overrides at all, not one empty-string override.
func splitOverrides(attr string) []string {
	if attr == "" {
		return nil
	}
	var overrides []string
	stringutil.WalkByStep(attr, '|', func(_ int, part string) bool {
		overrides = append(overrides, part)
		return true
	})
	return overrides
}

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

// Package compile turns a parsed XML element tree into the node.Node tree
// the engine evaluates. The tokenizer (encoding/xml) is a thin external
// collaborator; Compile itself performs no I/O.
package compile

import (
	"io"
	"strings"

	"encoding/xml"

	"github.com/pkg/errors"
)

// Element is a parsed XML node: a tag name, its attributes, and an ordered
// sequence of children. A character-data run between or around child
// elements is represented as a child Element with an empty Tag and
// non-empty Data, so mixed content preserves declaration order.
type Element struct {
	Tag      string
	Attrs    map[string]string
	Data     string
	Children []Element
}

// Attr returns the named attribute, or "" if absent. Attribute names are
// looked up verbatim; a missing attribute is not itself an error here —
// individual node builders decide whether an empty value is acceptable.
func (e Element) Attr(name string) string {
	return e.Attrs[name]
}

// ParseElements reads an XML document into its Element tree. It is the
// named external tokenizer the compiler consumes; Compile never reads r
// itself.
func ParseElements(r io.Reader) ([]Element, error) {
	dec := xml.NewDecoder(r)
	var stack []*Element
	root := &Element{Tag: ""}
	stack = append(stack, root)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "compile: parsing xml")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := Element{Tag: t.Name.Local, Attrs: make(map[string]string, len(t.Attr))}
			for _, a := range t.Attr {
				el.Attrs[a.Name.Local] = a.Value
			}
			top := stack[len(stack)-1]
			top.Children = append(top.Children, el)
			stack = append(stack, &top.Children[len(top.Children)-1])
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if text := string(t); strings.TrimSpace(text) != "" {
				top := stack[len(stack)-1]
				top.Children = append(top.Children, Element{Data: text})
			}
		}
	}
	return root.Children, nil
}

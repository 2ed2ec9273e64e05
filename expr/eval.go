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

import (
	"strings"

	"github.com/sqlmap-go/sqlmap/env"
)

// Eval evaluates a compiled expression against root, the current
// environment. Path misses resolve to null; an EvalError is only returned
// for a genuine type mismatch in arithmetic.
func Eval(e *Expr, root env.Value) (env.Value, error) {
	return evalNode(e.root, root)
}

// Test evaluates e against root and applies the engine's truthiness rule,
// the contract used by <if test="…"> and <when test="…">.
func Test(e *Expr, root env.Value) (bool, error) {
	v, err := evalNode(e.root, root)
	if err != nil {
		return false, err
	}
	return v.IsTruthy(), nil
}

func evalNode(n node, root env.Value) (env.Value, error) {
	switch t := n.(type) {
	case literalNode:
		return t.value, nil
	case identNode:
		return lookupIdent(root, t.name), nil
	case fieldAccessNode:
		base, err := evalNode(t.x, root)
		if err != nil {
			return env.Null, err
		}
		return fieldOf(base, t.name), nil
	case indexAccessNode:
		base, err := evalNode(t.x, root)
		if err != nil {
			return env.Null, err
		}
		idx, err := evalNode(t.index, root)
		if err != nil {
			return env.Null, err
		}
		return indexOf(base, idx), nil
	case unaryNode:
		return evalUnary(t, root)
	case binaryNode:
		return evalBinary(t, root)
	default:
		return env.Null, nil
	}
}

func lookupIdent(root env.Value, name string) env.Value {
	if root.Kind() != env.KindObject {
		return env.Null
	}
	v, ok := root.Object().Get(name)
	if !ok {
		return env.Null
	}
	return v
}

func fieldOf(base env.Value, name string) env.Value {
	if base.Kind() != env.KindObject {
		return env.Null
	}
	v, ok := base.Object().Get(name)
	if !ok {
		return env.Null
	}
	return v
}

func indexOf(base env.Value, idx env.Value) env.Value {
	switch base.Kind() {
	case env.KindArray:
		if idx.Kind() != env.KindNumber {
			return env.Null
		}
		i := int(idx.Number())
		arr := base.Array()
		if i < 0 || i >= len(arr) {
			return env.Null
		}
		return arr[i]
	case env.KindObject:
		v, ok := base.Object().Get(idx.String())
		if !ok {
			return env.Null
		}
		return v
	default:
		return env.Null
	}
}

func evalUnary(t unaryNode, root env.Value) (env.Value, error) {
	x, err := evalNode(t.x, root)
	if err != nil {
		return env.Null, err
	}
	switch t.op {
	case "!":
		return env.Bool(!x.IsTruthy()), nil
	case "-":
		if x.Kind() != env.KindNumber {
			return env.Null, &EvalError{Msg: "unary '-' on non-numeric operand"}
		}
		return env.Number(-x.Number()), nil
	default:
		return env.Null, nil
	}
}

func evalBinary(t binaryNode, root env.Value) (env.Value, error) {
	switch t.op {
	case "||":
		l, err := evalNode(t.l, root)
		if err != nil {
			return env.Null, err
		}
		if l.IsTruthy() {
			return env.Bool(true), nil
		}
		r, err := evalNode(t.r, root)
		if err != nil {
			return env.Null, err
		}
		return env.Bool(r.IsTruthy()), nil
	case "&&":
		l, err := evalNode(t.l, root)
		if err != nil {
			return env.Null, err
		}
		if !l.IsTruthy() {
			return env.Bool(false), nil
		}
		r, err := evalNode(t.r, root)
		if err != nil {
			return env.Null, err
		}
		return env.Bool(r.IsTruthy()), nil
	}

	l, err := evalNode(t.l, root)
	if err != nil {
		return env.Null, err
	}
	r, err := evalNode(t.r, root)
	if err != nil {
		return env.Null, err
	}

	switch t.op {
	case "==", "!=", "<", "<=", ">", ">=":
		return evalCompare(t.op, l, r)
	case "+", "-", "*", "/", "%":
		return evalArith(t.op, l, r)
	case "~":
		return env.String(l.String() + r.String()), nil
	default:
		return env.Null, nil
	}
}

// evalCompare coerces numerically when both sides are numeric, textually
// otherwise.
func evalCompare(op string, l, r env.Value) (env.Value, error) {
	if l.Kind() == env.KindNumber && r.Kind() == env.KindNumber {
		return env.Bool(numericCompare(op, l.Number(), r.Number())), nil
	}
	return env.Bool(stringCompare(op, l.String(), r.String())), nil
}

func numericCompare(op string, l, r float64) bool {
	switch op {
	case "==":
		return l == r
	case "!=":
		return l != r
	case "<":
		return l < r
	case "<=":
		return l <= r
	case ">":
		return l > r
	case ">=":
		return l >= r
	default:
		return false
	}
}

func stringCompare(op string, l, r string) bool {
	switch op {
	case "==":
		return l == r
	case "!=":
		return l != r
	case "<":
		return strings.Compare(l, r) < 0
	case "<=":
		return strings.Compare(l, r) <= 0
	case ">":
		return strings.Compare(l, r) > 0
	case ">=":
		return strings.Compare(l, r) >= 0
	default:
		return false
	}
}

func evalArith(op string, l, r env.Value) (env.Value, error) {
	if l.Kind() != env.KindNumber || r.Kind() != env.KindNumber {
		return env.Null, &EvalError{Msg: "arithmetic on non-numeric operand"}
	}
	a, b := l.Number(), r.Number()
	switch op {
	case "+":
		return env.Number(a + b), nil
	case "-":
		return env.Number(a - b), nil
	case "*":
		return env.Number(a * b), nil
	case "/":
		if b == 0 {
			return env.Null, &EvalError{Msg: "division by zero"}
		}
		return env.Number(a / b), nil
	case "%":
		if b == 0 {
			return env.Null, &EvalError{Msg: "modulo by zero"}
		}
		return env.Number(float64(int64(a) % int64(b))), nil
	default:
		return env.Null, nil
	}
}

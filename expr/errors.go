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

import "fmt"

// SyntaxError is returned by Compile when the source does not match the
// expression grammar. Pos is a byte offset into the source.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expr: syntax error at %d: %s", e.Pos, e.Msg)
}

// EvalError is returned by Eval when a type mismatch occurs during
// arithmetic. Path misses are not errors; they resolve to null.
type EvalError struct {
	Msg string
}

func (e *EvalError) Error() string {
	return "expr: " + e.Msg
}

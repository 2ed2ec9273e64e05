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

import "fmt"

// CompileError reports a structural XML misuse that is not simply a
// missing attribute. Compile returns it for a <choose> with more than one
// <otherwise>; tags in places the compiler does not handle are dropped,
// not reported.
type CompileError struct {
	Tag string
	Msg string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile: <%s>: %s", e.Tag, e.Msg)
}

// MissingAttribute reports a required attribute left empty or absent.
type MissingAttribute struct {
	Tag  string
	Attr string
}

func (e *MissingAttribute) Error() string {
	return fmt.Sprintf("compile: <%s> missing required attribute %q", e.Tag, e.Attr)
}

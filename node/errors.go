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

import "fmt"

// UnknownStatement is returned when eval_statement is asked for an id that
// was never registered, or when an <include> refers to one.
type UnknownStatement struct {
	ID string
}

func (e *UnknownStatement) Error() string {
	return fmt.Sprintf("node: unknown statement %q", e.ID)
}

// IncludeCycle is returned when an <include> chain resolves back to a
// refid already being evaluated in the current chain.
type IncludeCycle struct {
	RefID string
}

func (e *IncludeCycle) Error() string {
	return fmt.Sprintf("node: include cycle detected at refid %q", e.RefID)
}

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

// Package dialect carries the one process-wide option the engine needs
// from a driver without importing one: the positional-marker style and the
// per-column inline-format templates used when splicing #{…} placeholders.
package dialect

import "strconv"

// Marker renders the nth (1-based) positional parameter marker for a
// statement.
type Marker func(n int) string

// Question renders the `?`-style marker used by MySQL/SQLite drivers. n is
// ignored; every marker is identical.
func Question(_ int) string { return "?" }

// Dollar renders the `$N`-style marker used by PostgreSQL drivers.
func Dollar(n int) string { return "$" + strconv.Itoa(n) }

// Dialect bundles a marker style with per-column inline-cast templates.
type Dialect struct {
	// Name identifies the dialect, e.g. "postgres", "mysql".
	Name string
	// Marker renders the nth positional parameter.
	Marker Marker
	// Formats maps a column name to a template containing exactly one "{}"
	// placeholder, e.g. "id" -> "{}::uuid". Columns with no entry are
	// emitted unwrapped.
	Formats map[string]string
}

// Format wraps marker according to the format template registered for
// column, if any.
func (d Dialect) Format(column, marker string) string {
	if d.Formats == nil {
		return marker
	}
	tmpl, ok := d.Formats[column]
	if !ok {
		return marker
	}
	return wrapTemplate(tmpl, marker)
}

func wrapTemplate(tmpl, marker string) string {
	const token = "{}"
	idx := indexOf(tmpl, token)
	if idx < 0 {
		return marker
	}
	return tmpl[:idx] + marker + tmpl[idx+len(token):]
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}

// MySQL is the stock `?`-marker dialect with no inline casts.
var MySQL = Dialect{Name: "mysql", Marker: Question}

// Postgres is the stock `$N`-marker dialect with no inline casts.
var Postgres = Dialect{Name: "postgres", Marker: Dollar}

// WithFormats returns a copy of d with its format table replaced.
func (d Dialect) WithFormats(formats map[string]string) Dialect {
	d.Formats = formats
	return d
}

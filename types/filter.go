/*
 * Copyright 2026 the strata authors.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import "sort"

// Filter maps a field name to the value it must equal. Entries are combined
// with AND; a nil or empty filter matches every row. A key that does not name
// a field on the bound entity type is rejected by the session, not ignored.
type Filter map[string]any

// NewFilter builds a single-entry filter.
func NewFilter(field string, value any) Filter {
	return Filter{field: value}
}

// With adds an equality entry and returns the filter for chaining.
func (f Filter) With(field string, value any) Filter {
	f[field] = value
	return f
}

// Fields returns the filter's field names sorted ascending, so predicates
// are always applied in the same order regardless of map iteration.
func (f Filter) Fields() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the filter matches all rows.
func (f Filter) Empty() bool { return len(f) == 0 }

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

// DefaultPageLimit is the row cap applied when a caller does not set one.
const DefaultPageLimit = 100

// Page describes a pagination window applied after filtering: Skip rows are
// discarded, then at most Limit rows are returned.
type Page struct {
	Skip  int
	Limit int
}

// NewPage constructs a pagination window.
func NewPage(skip, limit int) Page {
	return Page{Skip: skip, Limit: limit}
}

// DefaultPage returns the window every caller gets unless it overrides it:
// no offset, at most DefaultPageLimit rows.
func DefaultPage() Page {
	return Page{Skip: 0, Limit: DefaultPageLimit}
}

// Normalize clamps a negative offset to zero and replaces a non-positive
// limit with DefaultPageLimit.
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	return p
}

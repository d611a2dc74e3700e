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

package session

import "errors"

var (
	// ErrNotFound is returned when an id-based update or delete targets a
	// row absent from the store.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidFilterField is returned when a filter key does not name a
	// field on the bound entity type. Unknown keys fail fast; they are
	// never silently ignored.
	ErrInvalidFilterField = errors.New("invalid filter field")
)

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

package repository

import (
	"context"

	"strata/types"
)

// Repository is the generic operation set over one entity type, bound to one
// session for its lifetime. It holds no entity state of its own; every read
// goes to the store and every mutation is committed before the call returns.
// A Repository must not be used concurrently over a shared session.
type Repository[T any] interface {
	// Count returns the number of rows matching filter. A nil or empty
	// filter counts every row of T.
	Count(ctx context.Context, filter types.Filter) (int, error)

	// Create inserts entity, commits, and reloads it so the store-assigned
	// identity and any store-computed defaults are populated on the
	// returned value. Any caller-supplied identity value is ignored.
	Create(ctx context.Context, entity *T) (*T, error)

	// Read performs a direct key lookup. An absent row yields (nil, nil);
	// the error is reserved for store failures.
	Read(ctx context.Context, id any) (*T, error)

	// Update loads the row with the given id (ErrNotFound when absent) and
	// replaces every field with the corresponding field of entity — zero
	// values included. This is a full replace, not a sparse patch: a field
	// left unset on entity clears the stored field. Commits, reloads, and
	// returns the refreshed value.
	Update(ctx context.Context, id any, entity *T) (*T, error)

	// Delete removes the single row with the given id, returning
	// ErrNotFound when it does not exist.
	Delete(ctx context.Context, id any) error

	// DeleteWhere removes every row matching filter. An empty filter is a
	// destructive wildcard that removes all rows of T; callers must guard
	// accordingly. The acknowledgement is uniform — no affected-row count
	// is surfaced.
	DeleteWhere(ctx context.Context, filter types.Filter) error

	// Select returns the rows matching filter within the pagination
	// window, in store-assigned order. Zero matches yield an empty slice
	// and a nil error.
	Select(ctx context.Context, filter types.Filter, page types.Page) ([]*T, error)
}

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

// Package session defines the transactional store handle the generic
// repository operates through, plus its Bun-backed implementation. The
// repository never touches the database directly; everything goes through
// this contract, so it can be tested against a substitute session.
package session

import (
	"context"

	"strata/types"
)

// Session is the store primitive set required by the repository. Mutations
// (Add, Update, Remove, RemoveWhere) are staged inside a transaction that is
// begun lazily and applied by Commit or discarded by Rollback. A Session is
// not safe for concurrent use.
type Session interface {
	// Get loads the row whose primary key equals id into model. It returns
	// false with a nil error when no such row exists.
	Get(ctx context.Context, model any, id any) (bool, error)

	// Select scans the rows matching filter into dest (a pointer to a slice
	// of entity pointers), applying the pagination window after filtering.
	Select(ctx context.Context, dest any, filter types.Filter, page types.Page) error

	// Count returns the number of rows of model's type matching filter.
	Count(ctx context.Context, model any, filter types.Filter) (int, error)

	// Add stages an insert of model. A store-assigned identity value is
	// written back onto model.
	Add(ctx context.Context, model any) error

	// Update stages a full-column update of the row whose primary key equals
	// id, writing every field of model including zero values. The id is also
	// assigned to model's identity field.
	Update(ctx context.Context, model any, id any) error

	// Remove stages deletion of the single row identified by model's
	// primary key.
	Remove(ctx context.Context, model any) error

	// RemoveWhere stages deletion of every row matching filter and returns
	// the number of rows affected. An empty filter removes all rows of
	// model's type.
	RemoveWhere(ctx context.Context, model any, filter types.Filter) (int64, error)

	// Refresh reloads the row identified by model's primary key so
	// store-assigned values are visible on model.
	Refresh(ctx context.Context, model any) error

	// Commit durably applies staged mutations. It is a no-op when nothing
	// is staged.
	Commit(ctx context.Context) error

	// Rollback discards staged mutations. It is a no-op when nothing is
	// staged.
	Rollback(ctx context.Context) error
}

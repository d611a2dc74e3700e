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
	"fmt"

	"strata/database"
	"strata/session"
	"strata/types"
)

type baseRepositoryImpl[T any] struct {
	sess   session.Session
	logger database.Logger
}

// NewRepository returns a generic repository bound to the provided session.
// Constructing many repositories over the same session is cheap; the
// repository itself is stateless between calls.
func NewRepository[T any](sess session.Session) Repository[T] {
	return &baseRepositoryImpl[T]{sess: sess, logger: database.GetLogger()}
}

func (r *baseRepositoryImpl[T]) Count(ctx context.Context, filter types.Filter) (int, error) {
	return r.sess.Count(ctx, new(T), filter)
}

func (r *baseRepositoryImpl[T]) Create(ctx context.Context, entity *T) (*T, error) {
	if err := r.sess.Add(ctx, entity); err != nil {
		_ = r.sess.Rollback(ctx)
		return nil, err
	}
	if err := r.sess.Commit(ctx); err != nil {
		return nil, err
	}
	if err := r.sess.Refresh(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *baseRepositoryImpl[T]) Read(ctx context.Context, id any) (*T, error) {
	entity := new(T)
	found, err := r.sess.Get(ctx, entity, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return entity, nil
}

func (r *baseRepositoryImpl[T]) Update(ctx context.Context, id any, entity *T) (*T, error) {
	found, err := r.sess.Get(ctx, new(T), id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: id %v", session.ErrNotFound, id)
	}
	if err := r.sess.Update(ctx, entity, id); err != nil {
		_ = r.sess.Rollback(ctx)
		return nil, err
	}
	if err := r.sess.Commit(ctx); err != nil {
		return nil, err
	}
	if err := r.sess.Refresh(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *baseRepositoryImpl[T]) Delete(ctx context.Context, id any) error {
	entity := new(T)
	found, err := r.sess.Get(ctx, entity, id)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: id %v", session.ErrNotFound, id)
	}
	if err := r.sess.Remove(ctx, entity); err != nil {
		_ = r.sess.Rollback(ctx)
		return err
	}
	return r.sess.Commit(ctx)
}

func (r *baseRepositoryImpl[T]) DeleteWhere(ctx context.Context, filter types.Filter) error {
	n, err := r.sess.RemoveWhere(ctx, new(T), filter)
	if err != nil {
		_ = r.sess.Rollback(ctx)
		return err
	}
	if err := r.sess.Commit(ctx); err != nil {
		return err
	}
	// The count stays internal: callers get a uniform acknowledgement.
	r.logger.Debug("Bulk delete applied", "rows", n)
	return nil
}

func (r *baseRepositoryImpl[T]) Select(ctx context.Context, filter types.Filter, page types.Page) ([]*T, error) {
	var entities []*T
	if err := r.sess.Select(ctx, &entities, filter, page.Normalize()); err != nil {
		return nil, err
	}
	if entities == nil {
		entities = make([]*T, 0)
	}
	return entities, nil
}

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

// Package strata is a generic data-access layer: one parameterized
// repository gives any entity type count, create, read, update, delete, and
// filtered-select operations against a relational store, without per-entity
// boilerplate. This file is the convenience facade over the repository for
// applications using the package-level database.InitDB flow.
package strata

import (
	"context"
	"sync"

	"strata/database"
	"strata/repository"
	"strata/session"
	"strata/types"
)

// Service exposes the repository operations for one entity type, bound
// lazily to the global database connection.
type Service[T any] interface {
	// Count returns the number of entities matching filter.
	Count(ctx context.Context, filter types.Filter) (int, error)

	// Create inserts an entity and returns it with its store-assigned
	// identity populated.
	Create(ctx context.Context, entity *T) (*T, error)

	// Read returns the entity with the given id, or (nil, nil) when absent.
	Read(ctx context.Context, id any) (*T, error)

	// Update replaces every field of the stored entity with entity's
	// fields, zero values included.
	Update(ctx context.Context, id any, entity *T) (*T, error)

	// Delete removes a single entity by id.
	Delete(ctx context.Context, id any) error

	// DeleteWhere removes every entity matching filter; an empty filter
	// removes all of them.
	DeleteWhere(ctx context.Context, filter types.Filter) error

	// Select returns the entities matching filter within the page window.
	Select(ctx context.Context, filter types.Filter, page types.Page) ([]*T, error)
}

type baseServiceImpl[T any] struct {
	repo repository.Repository[T]
	once sync.Once
}

// NewService returns a Service backed by the generic repository over the
// global database connection. database.InitDB must run before first use.
func NewService[T any]() Service[T] {
	return &baseServiceImpl[T]{}
}

func (s *baseServiceImpl[T]) baseRepo() repository.Repository[T] {
	s.once.Do(func() {
		s.repo = repository.NewRepository[T](session.New(database.GetDB()))
	})
	return s.repo
}

func (s *baseServiceImpl[T]) Count(ctx context.Context, filter types.Filter) (int, error) {
	return s.baseRepo().Count(ctx, filter)
}

func (s *baseServiceImpl[T]) Create(ctx context.Context, entity *T) (*T, error) {
	return s.baseRepo().Create(ctx, entity)
}

func (s *baseServiceImpl[T]) Read(ctx context.Context, id any) (*T, error) {
	return s.baseRepo().Read(ctx, id)
}

func (s *baseServiceImpl[T]) Update(ctx context.Context, id any, entity *T) (*T, error) {
	return s.baseRepo().Update(ctx, id, entity)
}

func (s *baseServiceImpl[T]) Delete(ctx context.Context, id any) error {
	return s.baseRepo().Delete(ctx, id)
}

func (s *baseServiceImpl[T]) DeleteWhere(ctx context.Context, filter types.Filter) error {
	return s.baseRepo().DeleteWhere(ctx, filter)
}

func (s *baseServiceImpl[T]) Select(ctx context.Context, filter types.Filter, page types.Page) ([]*T, error) {
	return s.baseRepo().Select(ctx, filter, page)
}

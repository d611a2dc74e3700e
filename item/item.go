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

// Package item stores user-owned items through the generic repository.
package item

import (
	"context"

	"github.com/uptrace/bun"

	"strata/database"
	"strata/repository"
	"strata/session"
	"strata/types"
)

// Item is a record owned by a user.
type Item struct {
	bun.BaseModel `bun:"table:items,alias:i"`

	ID          int64            `bun:"id,pk,autoincrement" json:"id"`
	Title       string           `bun:"title,notnull" json:"title"`
	Description string           `bun:"description" json:"description"`
	Metadata    types.JsonObject `bun:"metadata" json:"metadata"`
	OwnerID     int64            `bun:"owner_id,notnull" json:"owner_id"`
}

// ItemCreate is the input for creating an item; ownership is supplied by the
// caller, not the input.
type ItemCreate struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Metadata    types.JsonObject `json:"metadata"`
}

// CreateItem stores a new item owned by ownerID, returning it with the
// store-assigned identity populated.
func CreateItem(ctx context.Context, sess session.Session, in ItemCreate, ownerID int64) (*Item, error) {
	it := &Item{
		Title:       in.Title,
		Description: in.Description,
		Metadata:    in.Metadata,
		OwnerID:     ownerID,
	}
	repo := repository.NewRepository[Item](sess)
	return repo.Create(ctx, it)
}

func init() {
	database.RegisterModel((*Item)(nil), 20)
}

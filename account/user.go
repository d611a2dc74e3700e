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

package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"strata/database"
)

// User is a registered account. The store assigns the numeric identity; the
// public UUID is assigned once on insert and used in outward-facing APIs.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID             int64  `bun:"id,pk,autoincrement" json:"id"`
	UUID           string `bun:"uuid,notnull,unique" json:"uuid"`
	Email          string `bun:"email,notnull,unique" json:"email"`
	HashedPassword string `bun:"hashed_password,notnull" json:"-"`
	FullName       string `bun:"full_name" json:"full_name"`
	IsActive       bool   `bun:"is_active" json:"is_active"`
	IsSuperuser    bool   `bun:"is_superuser" json:"is_superuser"`
}

var _ bun.BeforeAppendModelHook = (*User)(nil)

// BeforeAppendModel assigns the public UUID on first insert.
func (u *User) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	if _, ok := query.(*bun.InsertQuery); ok && u.UUID == "" {
		u.UUID = uuid.NewString()
	}
	return nil
}

// UserCreate is the input for registering a user. IsActive defaults to true
// when left nil.
type UserCreate struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	IsActive    *bool  `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

// UserUpdate is a sparse patch: only non-nil fields are applied.
type UserUpdate struct {
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	FullName    *string `json:"full_name"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser *bool   `json:"is_superuser"`
}

func init() {
	database.RegisterModel((*User)(nil), 10)
}

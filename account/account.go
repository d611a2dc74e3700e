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

// Package account builds user management on top of the generic repository:
// registration with password hashing, sparse profile updates, email lookup,
// and credential verification.
package account

import (
	"context"
	"errors"
	"fmt"

	"strata/database"
	"strata/repository"
	"strata/session"
	"strata/types"
)

// ErrEmailRegistered is returned when the email address is already taken.
var ErrEmailRegistered = errors.New("email address already registered")

// CreateUser hashes the password and stores a new user through the generic
// repository. The plaintext password never reaches the store.
func CreateUser(ctx context.Context, sess session.Session, in UserCreate) (*User, error) {
	hashed, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &User{
		Email:          in.Email,
		HashedPassword: hashed,
		FullName:       in.FullName,
		IsActive:       true,
		IsSuperuser:    in.IsSuperuser,
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	repo := repository.NewRepository[User](sess)
	created, err := repo.Create(ctx, user)
	if err != nil {
		return nil, classifyUserErr(err)
	}
	return created, nil
}

// UpdateUser applies the non-nil fields of in onto the stored user and
// persists the merged value. A supplied password is re-hashed.
func UpdateUser(ctx context.Context, sess session.Session, id int64, in UserUpdate) (*User, error) {
	repo := repository.NewRepository[User](sess)
	user, err := repo.Read(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: id %v", session.ErrNotFound, id)
	}

	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Password != nil {
		hashed, err := HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.HashedPassword = hashed
	}
	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.IsSuperuser != nil {
		user.IsSuperuser = *in.IsSuperuser
	}

	updated, err := repo.Update(ctx, id, user)
	if err != nil {
		return nil, classifyUserErr(err)
	}
	return updated, nil
}

// GetUserByEmail returns the user with the given email, or (nil, nil) when
// no such user exists.
func GetUserByEmail(ctx context.Context, sess session.Session, email string) (*User, error) {
	repo := repository.NewRepository[User](sess)
	users, err := repo.Select(ctx, types.NewFilter("email", email), types.NewPage(0, 1))
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return users[0], nil
}

// Authenticate returns the user when email and password match a stored
// account, and (nil, nil) for an unknown email or a wrong password.
func Authenticate(ctx context.Context, sess session.Session, email, password string) (*User, error) {
	user, err := GetUserByEmail(ctx, sess, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if !VerifyPassword(password, user.HashedPassword) {
		return nil, nil
	}
	return user, nil
}

func classifyUserErr(err error) error {
	if ok, class := database.IsSqlError(err); ok && class == database.DuplicateKeyErr {
		return fmt.Errorf("%w: %v", ErrEmailRegistered, err)
	}
	return err
}

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

package item_test

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"strata/database"
	"strata/item"
	"strata/repository"
	"strata/session"
	"strata/types"
)

func newTestSession(t *testing.T) session.Session {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	sqldb, err := sql.Open(sqliteshim.ShimName, fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)
	db := bun.NewDB(sqldb, sqlitedialect.New())
	require.NoError(t, database.CreateTables(context.Background(), db))
	t.Cleanup(func() { _ = db.Close() })
	return session.New(db)
}

func TestCreateItem(t *testing.T) {
	sess := newTestSession(t)

	created, err := item.CreateItem(context.Background(), sess, item.ItemCreate{
		Title:       "Wrench",
		Description: "adjustable",
	}, 7)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Wrench", created.Title)
	assert.Equal(t, int64(7), created.OwnerID)
}

func TestCreateItemMetadataRoundTrip(t *testing.T) {
	sess := newTestSession(t)
	ctx := context.Background()

	created, err := item.CreateItem(ctx, sess, item.ItemCreate{
		Title:    "Gauge",
		Metadata: types.JsonObject{"unit": "psi", "max": float64(120)},
	}, 3)
	require.NoError(t, err)

	repo := repository.NewRepository[item.Item](sess)
	stored, err := repo.Read(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "psi", stored.Metadata["unit"])
	assert.Equal(t, float64(120), stored.Metadata["max"])
}

func TestItemsAreOwnerScoped(t *testing.T) {
	sess := newTestSession(t)
	ctx := context.Background()
	repo := repository.NewRepository[item.Item](sess)

	_, err := item.CreateItem(ctx, sess, item.ItemCreate{Title: "a"}, 1)
	require.NoError(t, err)
	_, err = item.CreateItem(ctx, sess, item.ItemCreate{Title: "b"}, 1)
	require.NoError(t, err)
	_, err = item.CreateItem(ctx, sess, item.ItemCreate{Title: "c"}, 2)
	require.NoError(t, err)

	count, err := repo.Count(ctx, types.NewFilter("owner_id", 1))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

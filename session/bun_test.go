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

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"strata/types"
)

type widget struct {
	bun.BaseModel `bun:"table:widgets,alias:w"`

	ID      int64  `bun:"id,pk,autoincrement"`
	Title   string `bun:"title,notnull"`
	OwnerID int64  `bun:"owner_id,notnull"`
}

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	sqldb, err := sql.Open(sqliteshim.ShimName, fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)
	db := bun.NewDB(sqldb, sqlitedialect.New())
	_, err = db.NewCreateTable().Model((*widget)(nil)).IfNotExists().Exec(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func addCommitted(t *testing.T, sess Session, w *widget) *widget {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, sess.Add(ctx, w))
	require.NoError(t, sess.Commit(ctx))
	return w
}

func TestResolveFilterDeterministicOrder(t *testing.T) {
	db := newTestDB(t)
	table := db.Table(reflect.TypeOf(widget{}))

	preds, err := resolveFilter(table, types.Filter{"title": "x", "owner_id": 1, "id": 3})
	require.NoError(t, err)
	require.Len(t, preds, 3)
	assert.Equal(t, "id", preds[0].column)
	assert.Equal(t, "owner_id", preds[1].column)
	assert.Equal(t, "title", preds[2].column)
}

func TestResolveFilterAcceptsGoFieldNames(t *testing.T) {
	db := newTestDB(t)
	table := db.Table(reflect.TypeOf(widget{}))

	preds, err := resolveFilter(table, types.NewFilter("OwnerID", 1))
	require.NoError(t, err)
	require.Len(t, preds, 1)
	assert.Equal(t, "owner_id", preds[0].column)
}

func TestResolveFilterRejectsUnknownField(t *testing.T) {
	db := newTestDB(t)
	table := db.Table(reflect.TypeOf(widget{}))

	_, err := resolveFilter(table, types.NewFilter("bogus", 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFilterField)
	assert.Contains(t, err.Error(), "bogus")
}

func TestAddAssignsStoreIdentity(t *testing.T) {
	sess := New(newTestDB(t))

	w := addCommitted(t, sess, &widget{ID: 999, Title: "a", OwnerID: 1})
	assert.NotZero(t, w.ID)
	assert.NotEqual(t, int64(999), w.ID)
}

func TestGetReportsPresence(t *testing.T) {
	sess := New(newTestDB(t))
	ctx := context.Background()
	w := addCommitted(t, sess, &widget{Title: "a", OwnerID: 1})

	var loaded widget
	found, err := sess.Get(ctx, &loaded, w.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "a", loaded.Title)

	found, err = sess.Get(ctx, &widget{}, int64(424242))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpdateWritesEveryColumn(t *testing.T) {
	sess := New(newTestDB(t))
	ctx := context.Background()
	w := addCommitted(t, sess, &widget{Title: "before", OwnerID: 5})

	replacement := &widget{Title: "after", OwnerID: 5}
	require.NoError(t, sess.Update(ctx, replacement, w.ID))
	require.NoError(t, sess.Commit(ctx))
	assert.Equal(t, w.ID, replacement.ID)

	var loaded widget
	found, err := sess.Get(ctx, &loaded, w.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "after", loaded.Title)
}

func TestRemoveWhereReturnsAffectedRows(t *testing.T) {
	sess := New(newTestDB(t))
	ctx := context.Background()

	addCommitted(t, sess, &widget{Title: "x", OwnerID: 1})
	addCommitted(t, sess, &widget{Title: "y", OwnerID: 1})
	addCommitted(t, sess, &widget{Title: "z", OwnerID: 2})

	n, err := sess.RemoveWhere(ctx, (*widget)(nil), types.NewFilter("owner_id", 1))
	require.NoError(t, err)
	require.NoError(t, sess.Commit(ctx))
	assert.Equal(t, int64(2), n)

	remaining, err := sess.Count(ctx, (*widget)(nil), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
}

func TestRollbackDiscardsStagedMutations(t *testing.T) {
	sess := New(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, sess.Add(ctx, &widget{Title: "staged", OwnerID: 1}))
	require.NoError(t, sess.Rollback(ctx))

	count, err := sess.Count(ctx, (*widget)(nil), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCommitWithoutStagedMutationsIsNoop(t *testing.T) {
	sess := New(newTestDB(t))
	require.NoError(t, sess.Commit(context.Background()))
	require.NoError(t, sess.Rollback(context.Background()))
}

func TestRefreshReloadsStoreState(t *testing.T) {
	db := newTestDB(t)
	sess := New(db)
	ctx := context.Background()
	w := addCommitted(t, sess, &widget{Title: "stored", OwnerID: 1})

	w.Title = "dirty in memory"
	require.NoError(t, sess.Refresh(ctx, w))
	assert.Equal(t, "stored", w.Title)
}

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
	"errors"
	"fmt"
	"reflect"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"

	"strata/types"
)

type bunSession struct {
	db *bun.DB
	tx *bun.Tx
}

// New returns a Session backed by the given Bun database. Reads issued while
// a mutation is staged see the uncommitted state; reads outside a transaction
// go straight to the database.
func New(db *bun.DB) Session {
	return &bunSession{db: db}
}

func (s *bunSession) conn() bun.IDB {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

func (s *bunSession) begin(ctx context.Context) error {
	if s.tx != nil {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	s.tx = &tx
	return nil
}

// predicate is one resolved equality condition of a filter.
type predicate struct {
	column string
	value  any
}

// table resolves the Bun schema table for a model, a pointer to a model, or
// a (pointer to a) slice of model pointers.
func (s *bunSession) table(v any) (*schema.Table, error) {
	typ := reflect.TypeOf(v)
	for typ != nil && (typ.Kind() == reflect.Ptr || typ.Kind() == reflect.Slice) {
		typ = typ.Elem()
	}
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("session: model must be a struct type, got %T", v)
	}
	return s.db.Table(typ), nil
}

// resolveFilter maps filter keys to table columns in sorted key order.
// A key may name either the column or the Go struct field.
func resolveFilter(table *schema.Table, filter types.Filter) ([]predicate, error) {
	preds := make([]predicate, 0, len(filter))
	for _, name := range filter.Fields() {
		field, ok := table.FieldMap[name]
		if !ok {
			for _, f := range table.Fields {
				if f.GoName == name {
					field = f
					break
				}
			}
		}
		if field == nil {
			return nil, fmt.Errorf("%w: %q is not a field of %s", ErrInvalidFilterField, name, table.TypeName)
		}
		preds = append(preds, predicate{column: field.Name, value: filter[name]})
	}
	return preds, nil
}

func (s *bunSession) pk(table *schema.Table) (*schema.Field, error) {
	if len(table.PKs) != 1 {
		return nil, fmt.Errorf("session: %s must have exactly one primary key field", table.TypeName)
	}
	return table.PKs[0], nil
}

// setKey assigns id to model's identity field, converting when the static
// types differ (e.g. an untyped int against an int64 column).
func (s *bunSession) setKey(model any, id any) error {
	table, err := s.table(model)
	if err != nil {
		return err
	}
	pk, err := s.pk(table)
	if err != nil {
		return err
	}
	strct := reflect.ValueOf(model).Elem()
	dst := pk.Value(strct)
	src := reflect.ValueOf(id)
	if src.Type() != dst.Type() {
		if !src.CanConvert(dst.Type()) {
			return fmt.Errorf("session: id type %T does not match key field %s.%s", id, table.TypeName, pk.GoName)
		}
		src = src.Convert(dst.Type())
	}
	dst.Set(src)
	return nil
}

func (s *bunSession) Get(ctx context.Context, model any, id any) (bool, error) {
	table, err := s.table(model)
	if err != nil {
		return false, err
	}
	pk, err := s.pk(table)
	if err != nil {
		return false, err
	}
	err = s.conn().NewSelect().
		Model(model).
		Where("? = ?", bun.Ident(pk.Name), id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *bunSession) Select(ctx context.Context, dest any, filter types.Filter, page types.Page) error {
	table, err := s.table(dest)
	if err != nil {
		return err
	}
	preds, err := resolveFilter(table, filter)
	if err != nil {
		return err
	}
	q := s.conn().NewSelect().Model(dest)
	for _, p := range preds {
		q = q.Where("? = ?", bun.Ident(p.column), p.value)
	}
	return q.Offset(page.Skip).Limit(page.Limit).Scan(ctx)
}

func (s *bunSession) Count(ctx context.Context, model any, filter types.Filter) (int, error) {
	table, err := s.table(model)
	if err != nil {
		return 0, err
	}
	preds, err := resolveFilter(table, filter)
	if err != nil {
		return 0, err
	}
	q := s.conn().NewSelect().Model(model)
	for _, p := range preds {
		q = q.Where("? = ?", bun.Ident(p.column), p.value)
	}
	return q.Count(ctx)
}

func (s *bunSession) Add(ctx context.Context, model any) error {
	table, err := s.table(model)
	if err != nil {
		return err
	}
	pk, err := s.pk(table)
	if err != nil {
		return err
	}
	// The store owns identity assignment: a caller-supplied value on an
	// auto-increment key is ignored.
	if pk.AutoIncrement {
		pk.Value(reflect.ValueOf(model).Elem()).SetZero()
	}
	if err := s.begin(ctx); err != nil {
		return err
	}
	_, err = s.conn().NewInsert().Model(model).Exec(ctx)
	return err
}

func (s *bunSession) Update(ctx context.Context, model any, id any) error {
	if err := s.setKey(model, id); err != nil {
		return err
	}
	if err := s.begin(ctx); err != nil {
		return err
	}
	// Every column is written, zero values included. Omitted fields on the
	// incoming value therefore overwrite whatever the row held before.
	_, err := s.conn().NewUpdate().Model(model).WherePK().Exec(ctx)
	return err
}

func (s *bunSession) Remove(ctx context.Context, model any) error {
	if err := s.begin(ctx); err != nil {
		return err
	}
	_, err := s.conn().NewDelete().Model(model).WherePK().Exec(ctx)
	return err
}

func (s *bunSession) RemoveWhere(ctx context.Context, model any, filter types.Filter) (int64, error) {
	table, err := s.table(model)
	if err != nil {
		return 0, err
	}
	preds, err := resolveFilter(table, filter)
	if err != nil {
		return 0, err
	}
	if err := s.begin(ctx); err != nil {
		return 0, err
	}
	q := s.conn().NewDelete().Model(model)
	if len(preds) == 0 {
		// Bun refuses a DELETE without a WHERE; the wildcard is explicit.
		q = q.Where("1 = 1")
	}
	for _, p := range preds {
		q = q.Where("? = ?", bun.Ident(p.column), p.value)
	}
	res, err := q.Exec(ctx)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		// Drivers without affected-row support still deleted the rows.
		return 0, nil
	}
	return n, nil
}

func (s *bunSession) Refresh(ctx context.Context, model any) error {
	table, err := s.table(model)
	if err != nil {
		return err
	}
	pk, err := s.pk(table)
	if err != nil {
		return err
	}
	id := pk.Value(reflect.ValueOf(model).Elem()).Interface()
	return s.conn().NewSelect().
		Model(model).
		Where("? = ?", bun.Ident(pk.Name), id).
		Scan(ctx)
}

func (s *bunSession) Commit(ctx context.Context) error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Commit()
	s.tx = nil
	return err
}

func (s *bunSession) Rollback(ctx context.Context) error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Rollback()
	s.tx = nil
	return err
}

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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterFieldsSorted(t *testing.T) {
	f := Filter{"title": "x", "owner_id": 1, "active": true}
	assert.Equal(t, []string{"active", "owner_id", "title"}, f.Fields())
}

func TestFilterEmpty(t *testing.T) {
	assert.True(t, Filter(nil).Empty())
	assert.True(t, Filter{}.Empty())
	assert.False(t, NewFilter("title", "x").Empty())
}

func TestFilterWith(t *testing.T) {
	f := NewFilter("owner_id", 1).With("title", "x")
	assert.Equal(t, Filter{"owner_id": 1, "title": "x"}, f)
}

func TestPageNormalizeDefaults(t *testing.T) {
	p := Page{}.Normalize()
	assert.Equal(t, 0, p.Skip)
	assert.Equal(t, DefaultPageLimit, p.Limit)

	p = Page{Skip: -5, Limit: -1}.Normalize()
	assert.Equal(t, 0, p.Skip)
	assert.Equal(t, DefaultPageLimit, p.Limit)
}

func TestPageNormalizeKeepsExplicitWindow(t *testing.T) {
	p := NewPage(10, 25).Normalize()
	assert.Equal(t, 10, p.Skip)
	assert.Equal(t, 25, p.Limit)
}

func TestJsonObjectRoundTrip(t *testing.T) {
	obj := JsonObject{"color": "red", "count": float64(3)}
	val, err := obj.Value()
	require.NoError(t, err)

	var fromBytes JsonObject
	require.NoError(t, fromBytes.Scan(val))
	assert.Equal(t, obj, fromBytes)

	var fromString JsonObject
	require.NoError(t, fromString.Scan(string(val.([]byte))))
	assert.Equal(t, obj, fromString)
}

func TestJsonObjectScanNil(t *testing.T) {
	var obj JsonObject
	require.NoError(t, obj.Scan(nil))
	assert.NotNil(t, obj)
	assert.Empty(t, obj)
}

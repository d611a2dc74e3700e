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

package database

import (
	"context"
	"sort"
	"sync"

	"github.com/uptrace/bun"
)

var defaultRegistry = &modelRegistry{}

// registeredModel pairs a model instance with its creation priority; lower
// priorities bootstrap first, so referenced tables exist before referencing
// ones.
type registeredModel struct {
	instance interface{}
	priority int
}

type modelRegistry struct {
	models []registeredModel
	mutex  sync.RWMutex
}

func (r *modelRegistry) register(instance interface{}, priority int) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.models = append(r.models, registeredModel{instance: instance, priority: priority})
}

func (r *modelRegistry) instances() []interface{} {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	sorted := make([]registeredModel, len(r.models))
	copy(sorted, r.models)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].priority < sorted[j].priority
	})
	result := make([]interface{}, len(sorted))
	for i, m := range sorted {
		result[i] = m.instance
	}
	return result
}

// RegisterModel adds a model to the default registry. Domain packages call
// this from init so table bootstrap knows about them.
func RegisterModel(instance interface{}, priority int) {
	defaultRegistry.register(instance, priority)
}

// RegisteredModelInstances returns the registered model instances sorted by
// ascending priority.
func RegisteredModelInstances() []interface{} {
	return defaultRegistry.instances()
}

// CreateTables creates a table for every registered model if it does not
// already exist. Intended for tests and embedded (SQLite) deployments;
// anything resembling migration of existing schemas is out of scope.
func CreateTables(ctx context.Context, db *bun.DB) error {
	for _, model := range RegisteredModelInstances() {
		_, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}

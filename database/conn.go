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
	"fmt"

	"github.com/uptrace/bun"
)

var globalManager Manager

// GetDB returns the global Bun database instance, or nil before InitDB.
func GetDB() *bun.DB {
	if globalManager != nil {
		return globalManager.GetDB()
	}
	return nil
}

// GetManager returns the global database manager.
func GetManager() Manager {
	return globalManager
}

// InitDB connects the global database using the provided configuration and
// optionally bootstraps tables for the registered models.
func InitDB(cfg *Config) (*bun.DB, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database configuration cannot be empty")
	}
	manager := NewManager(&cfg.ConnectionConfig)
	manager.SetLogger(GetLogger())

	ctx := context.Background()
	if err := manager.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	globalManager = manager

	db := manager.GetDB()
	if cfg.CreateTables {
		if err := CreateTables(ctx, db); err != nil {
			return nil, fmt.Errorf("failed to create tables: %w", err)
		}
	}
	return db, nil
}

// CloseDB closes the global database connection.
func CloseDB() error {
	if globalManager == nil {
		return nil
	}
	err := globalManager.Disconnect()
	globalManager = nil
	return err
}

// GetHealthStatus returns the current database health status.
func GetHealthStatus(ctx context.Context) *HealthStatus {
	if globalManager != nil {
		return globalManager.HealthCheck(ctx)
	}
	return &HealthStatus{LastError: "database not initialized"}
}

// GetDatabaseStats returns global database pool statistics.
func GetDatabaseStats() *DBStats {
	if globalManager != nil {
		return globalManager.GetStats()
	}
	return &DBStats{}
}

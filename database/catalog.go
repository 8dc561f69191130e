/*
 * Copyright 2025 tomoncle.
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
	"sort"

	"github.com/tomoncle/smartenum"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/feature"
)

// CatalogEntry is one declared member mirrored into the reference table.
type CatalogEntry struct {
	bun.BaseModel `bun:"table:enum_catalog,alias:ec"`

	SetName     string `bun:"set_name,pk" json:"set_name"`
	Value       int    `bun:"value,pk" json:"value"`
	DisplayName string `bun:"display_name,notnull" json:"display_name"`
}

// CatalogManager mirrors every registered set into the enum_catalog reference
// table and verifies live columns against their declared member sets.
type CatalogManager struct {
	db     *bun.DB
	logger Logger
}

// NewCatalogManager creates a catalog manager; a nil logger selects the
// package default.
func NewCatalogManager(db *bun.DB, logger Logger) *CatalogManager {
	if logger == nil {
		logger = GetLogger()
	}
	return &CatalogManager{db: db, logger: logger}
}

// Sync creates the enum_catalog table if missing and upserts one row per
// declared member of every registered set. Running it again is a no-op for
// unchanged sets; renamed display names are updated in place.
func (cm *CatalogManager) Sync(ctx context.Context) error {
	if _, err := cm.db.NewCreateTable().
		Model((*CatalogEntry)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create enum catalog table: %w", err)
	}

	sets := smartenum.RegisteredSets()
	for _, desc := range sets {
		entries := make([]*CatalogEntry, 0, len(desc.Members))
		for _, m := range desc.Members {
			entries = append(entries, &CatalogEntry{
				SetName:     desc.Name,
				Value:       m.Value,
				DisplayName: m.DisplayName,
			})
		}
		if len(entries) == 0 {
			continue
		}
		if err := cm.upsert(ctx, desc.Name, entries); err != nil {
			return fmt.Errorf("failed to sync enum set %s: %w", desc.Name, err)
		}
		cm.logger.Debug("Synced enum set", "set", desc.Name, "members", len(entries))
	}

	cm.logger.Info("Enum catalog synchronized", "sets", len(sets))
	return nil
}

func (cm *CatalogManager) upsert(ctx context.Context, setName string, entries []*CatalogEntry) error {
	insertQuery := cm.db.NewInsert().Model(&entries)

	switch {
	case cm.db.HasFeature(feature.InsertOnConflict):
		_, err := insertQuery.
			On("CONFLICT (set_name, value) DO UPDATE").
			Set("display_name = EXCLUDED.display_name").
			Exec(ctx)
		return err
	case cm.db.HasFeature(feature.InsertOnDuplicateKey):
		_, err := insertQuery.
			On("DUPLICATE KEY UPDATE display_name = VALUES(display_name)").
			Exec(ctx)
		return err
	default:
		// Fallback: replace the whole set.
		if _, err := cm.db.NewDelete().
			Model((*CatalogEntry)(nil)).
			Where("set_name = ?", setName).
			Exec(ctx); err != nil {
			return err
		}
		_, err := cm.db.NewInsert().Model(&entries).Exec(ctx)
		return err
	}
}

// Entries returns the catalog rows stored for one set, ordered by value.
func (cm *CatalogManager) Entries(ctx context.Context, setName string) ([]*CatalogEntry, error) {
	var entries []*CatalogEntry
	err := cm.db.NewSelect().
		Model(&entries).
		Where("set_name = ?", setName).
		Order("value ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Verify reads the distinct values stored in table.column and returns, in
// ascending order, those not declared by the set. An empty result means the
// column holds only declared values.
func (cm *CatalogManager) Verify(ctx context.Context, table, column string, desc smartenum.SetDescriptor) ([]int, error) {
	var stored []int
	err := cm.db.NewSelect().
		Table(table).
		ColumnExpr("DISTINCT ?", bun.Ident(column)).
		Scan(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s.%s: %w", table, column, err)
	}

	declared := make(map[int]struct{}, len(desc.Members))
	for _, m := range desc.Members {
		declared[m.Value] = struct{}{}
	}

	var drift []int
	for _, v := range stored {
		if _, ok := declared[v]; !ok {
			drift = append(drift, v)
		}
	}
	sort.Ints(drift)

	if len(drift) > 0 {
		cm.logger.Warn("Enum column holds undeclared values",
			"table", table, "column", column, "set", desc.Name, "values", drift)
	}
	return drift, nil
}

package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo describes one column of a store table.
type ColumnInfo struct {
	Field   string
	Type    string
	NotNull bool
	Default *string // Pointer because NULL default is possible
	PK      bool
}

// TableStat holds the row count for a single table.
type TableStat struct {
	Table string
	Rows  int64
}

// GetTableColumns retrieves the column definitions for a given table
// using PRAGMA table_info.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	type sqliteColumn struct {
		Cid        int
		Name       string
		Type       string
		Notnull    int
		DfltValue  *string
		Pk         int
	}
	var cols []sqliteColumn
	if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&cols).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}

	columns := make([]ColumnInfo, 0, len(cols))
	for _, col := range cols {
		columns = append(columns, ColumnInfo{
			Field:   strings.ToLower(col.Name),
			Type:    strings.ToLower(col.Type),
			NotNull: col.Notnull == 1,
			Default: col.DfltValue,
			PK:      col.Pk > 0,
		})
	}
	return columns, nil
}

// CollectStats returns the row count for each of the given tables.
// Tables that do not exist yet report zero rows rather than an error,
// so stats can run against a store the engine has not populated.
func CollectStats(db *gorm.DB, tables []string) ([]TableStat, error) {
	stats := make([]TableStat, 0, len(tables))
	for _, table := range tables {
		if !db.Migrator().HasTable(table) {
			stats = append(stats, TableStat{Table: table})
			continue
		}
		var count int64
		if err := db.Table(table).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count rows in %s: %w", table, err)
		}
		stats = append(stats, TableStat{Table: table, Rows: count})
	}
	return stats, nil
}

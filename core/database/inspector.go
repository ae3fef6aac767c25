package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Columns returns the lower-cased column names of a table.
func Columns(db *gorm.DB, table string) ([]string, error) {
	types, err := db.Migrator().ColumnTypes(table)
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", table, err)
	}
	names := make([]string, 0, len(types))
	for _, col := range types {
		names = append(names, strings.ToLower(col.Name()))
	}
	return names, nil
}

// RequireColumns fails when the table is missing any of the named columns.
func RequireColumns(db *gorm.DB, table string, required ...string) error {
	names, err := Columns(db, table)
	if err != nil {
		return err
	}
	have := make(map[string]struct{}, len(names))
	for _, n := range names {
		have[n] = struct{}{}
	}
	var missing []string
	for _, r := range required {
		if _, ok := have[strings.ToLower(r)]; !ok {
			missing = append(missing, r)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s is missing columns: %s", table, strings.Join(missing, ", "))
	}
	return nil
}

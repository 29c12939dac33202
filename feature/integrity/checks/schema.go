package checks

import (
	"context"
	"fmt"

	"foodfunk/core/database"
	"foodfunk/core/source"

	"gorm.io/gorm"
)

// RequiredColumns are the property_overrides columns DB sources read.
var RequiredColumns = []string{"section", "prop_key", "prop_value"}

// SchemaReport strictly types the result of a schema check.
type SchemaReport struct {
	Table          string   `json:"table"`
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckSchema verifies that the override table has the columns DB sources read.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	table := source.PropertyOverride{}.TableName()
	missing, err := database.MissingColumns(db, table, RequiredColumns...)
	if err != nil {
		return nil, err
	}

	report := &SchemaReport{Table: table, MissingColumns: []string{}, Status: "ok"}
	if len(missing) > 0 {
		report.MissingColumns = missing
		report.Status = "error"
	}
	return report, nil
}

// FixSchema creates or migrates the override table.
func FixSchema(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	return source.EnsureSchema(ctx, db)
}

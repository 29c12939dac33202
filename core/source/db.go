package source

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"foodfunk/core/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PropertyOverride is one stored property. Values are kept as text and decoded
// by the table's Decoder.
type PropertyOverride struct {
	ID      uint   `gorm:"primaryKey;column:id"`
	Section string `gorm:"column:section;type:varchar(64);not null;uniqueIndex:idx_section_key"`
	Key     string `gorm:"column:prop_key;type:varchar(255);not null;uniqueIndex:idx_section_key"`
	Value   string `gorm:"column:prop_value;type:varchar(1024);not null"`
}

func (PropertyOverride) TableName() string {
	return "property_overrides"
}

// DBSource reads a section from the property_overrides table.
type DBSource struct {
	db      *gorm.DB
	section string
}

// NewDBSource creates a database source for section.
func NewDBSource(db *gorm.DB, section string) *DBSource {
	return &DBSource{db: db, section: section}
}

// Name implements Source.
func (s *DBSource) Name() string {
	return "database:" + PropertyOverride{}.TableName()
}

// Load implements Source.
func (s *DBSource) Load(ctx context.Context) (map[string]any, error) {
	var rows []PropertyOverride
	err := s.db.WithContext(ctx).
		Select("prop_key", "prop_value").
		Where("section = ?", s.section).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load %s overrides: %w", s.section, err)
	}

	entries := make(map[string]any, len(rows))
	for _, row := range rows {
		entries[row.Key] = row.Value
	}
	return entries, nil
}

// Delete removes the overrides for keys in the source's section.
func (s *DBSource) Delete(ctx context.Context, keys []string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}
	res := s.db.WithContext(ctx).
		Where("section = ? AND prop_key IN ?", s.section, keys).
		Delete(&PropertyOverride{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete %s overrides: %w", s.section, res.Error)
	}
	return res.RowsAffected, nil
}

// EnsureSchema creates or migrates the property_overrides table and verifies
// its columns.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&PropertyOverride{}); err != nil {
		return fmt.Errorf("failed to migrate property_overrides: %w", err)
	}

	missing, err := database.MissingColumns(db, PropertyOverride{}.TableName(), "section", "prop_key", "prop_value")
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("property_overrides is missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// SeedDefaults inserts entries into section without touching keys that are
// already stored or defined by any of the lower sources, so operator values
// always win. It returns the number of rows written.
func SeedDefaults(ctx context.Context, db *gorm.DB, section string, entries map[string]string, lower ...Source) (int64, error) {
	entries, err := Undefined(ctx, entries, lower...)
	if err != nil {
		return 0, fmt.Errorf("failed to seed %s defaults: %w", section, err)
	}
	if len(entries) == 0 {
		return 0, nil
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]PropertyOverride, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, PropertyOverride{Section: section, Key: k, Value: entries[k]})
	}

	res := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(rows, 100)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to seed %s defaults: %w", section, res.Error)
	}
	return res.RowsAffected, nil
}

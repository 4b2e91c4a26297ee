package storage

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"syllabus-tracker/backend/models"
)

// GormKV keeps one kv_entries row per key.
type GormKV struct {
	db *gorm.DB
}

// NewGormKV wraps an open database. Run Migrate first.
func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

// Migrate creates or updates the kv_entries table.
func Migrate(db *gorm.DB) error {
	return errors.Wrap(db.AutoMigrate(&models.KVEntry{}), "migrate kv_entries")
}

// Get reads the row for key; a missing row reports ok=false.
func (g *GormKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry models.KVEntry
	err := g.db.WithContext(ctx).Where("kv_key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "kv get %s", key)
	}
	return []byte(entry.Value), true, nil
}

// Set inserts the row for key or overwrites its value.
func (g *GormKV) Set(ctx context.Context, key string, value []byte) error {
	entry := models.KVEntry{Key: key, Value: datatypes.JSON(value)}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kv_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	return errors.Wrapf(err, "kv set %s", key)
}

// Delete removes the row for key, if any.
func (g *GormKV) Delete(ctx context.Context, key string) error {
	err := g.db.WithContext(ctx).Where("kv_key = ?", key).Delete(&models.KVEntry{}).Error
	return errors.Wrapf(err, "kv delete %s", key)
}

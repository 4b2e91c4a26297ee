package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"syllabus-tracker/backend/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "kv.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestGormKV(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	kv := NewGormKV(db)

	_, ok, err := kv.Get(ctx, SubjectsKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, SubjectsKey, []byte(`[{"id":"math"}]`)))
	v, ok, err := kv.Get(ctx, SubjectsKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"math"}]`, string(v))

	// a second Set on the same key updates the row in place
	require.NoError(t, kv.Set(ctx, SubjectsKey, []byte(`[]`)))
	v, ok, err = kv.Get(ctx, SubjectsKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[]`, string(v))

	var rows int64
	require.NoError(t, db.Model(&models.KVEntry{}).Where("kv_key = ?", SubjectsKey).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	require.NoError(t, kv.Delete(ctx, SubjectsKey))
	_, ok, err = kv.Get(ctx, SubjectsKey)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, kv.Delete(ctx, "nope"))
}

func TestGormKVKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	kv := NewGormKV(openTestDB(t))

	require.NoError(t, kv.Set(ctx, SubjectsKey, []byte(`[]`)))
	require.NoError(t, kv.Set(ctx, SettingsKey, []byte(`{"preferences":{"theme":"dark"}}`)))
	require.NoError(t, kv.Delete(ctx, SubjectsKey))

	v, ok, err := kv.Get(ctx, SettingsKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"preferences":{"theme":"dark"}}`, string(v))
}

func TestMigrateIsRepeatable(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable(&models.KVEntry{}))
}

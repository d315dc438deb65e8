package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dentalcare_backend/internals/features/settings/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.SettingModel{}))
	return db
}

func TestUpsertKeepsSingleRowPerKey(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingRepository(db)

	require.NoError(t, repo.Upsert(context.Background(), "clinic_phone", "+91 98765 43210"))
	require.NoError(t, repo.Upsert(context.Background(), "clinic_phone", "+91 90000 00000"))

	value, found, err := repo.Get(context.Background(), "clinic_phone")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "+91 90000 00000", value)

	var count int64
	require.NoError(t, db.Model(&model.SettingModel{}).Where("key = ?", "clinic_phone").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestGetMissingKeyIsNotAnError(t *testing.T) {
	repo := NewSettingRepository(newTestDB(t))

	value, found, err := repo.Get(context.Background(), "nonexistent")
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, "", value)
}

func TestUpsertManyWritesEveryEntry(t *testing.T) {
	repo := NewSettingRepository(newTestDB(t))

	require.NoError(t, repo.Upsert(context.Background(), "clinic_name", "Dental Clinic"))

	batch := map[string]string{
		"clinic_phone":   "+91 90000 00000",
		"clinic_address": "456 Smile Avenue, Mumbai",
	}
	require.NoError(t, repo.UpsertMany(context.Background(), batch))

	all, err := repo.All(context.Background())
	require.NoError(t, err)
	for k, v := range batch {
		require.Equal(t, v, all[k])
	}
	// Untouched keys keep their values.
	require.Equal(t, "Dental Clinic", all["clinic_name"])
}

func TestUpsertManyRollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingRepository(db)

	require.NoError(t, repo.Upsert(context.Background(), "clinic_name", "Dental Clinic"))
	require.NoError(t, repo.Upsert(context.Background(), "clinic_phone", "+91 98765 43210"))

	// Make the insert of one key fail mid-transaction.
	err := db.Callback().Create().Before("gorm:create").Register("fail_on_boom", func(tx *gorm.DB) {
		if m, ok := tx.Statement.Dest.(*model.SettingModel); ok && m.Key == "boom" {
			tx.AddError(errors.New("simulated write failure"))
		}
	})
	require.NoError(t, err)

	batch := map[string]string{
		"clinic_name":  "New Name",
		"clinic_phone": "+91 91111 11111",
		"boom":         "never lands",
	}
	require.Error(t, repo.UpsertMany(context.Background(), batch))

	// All-or-nothing: the prior state is fully intact.
	all, errAll := repo.All(context.Background())
	require.NoError(t, errAll)
	require.Equal(t, "Dental Clinic", all["clinic_name"])
	require.Equal(t, "+91 98765 43210", all["clinic_phone"])
	_, hasBoom := all["boom"]
	require.False(t, hasBoom)
}

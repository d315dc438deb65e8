package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dentalcare_backend/internals/features/settings/model"
)

// SettingRepository is the persistence contract for clinic settings, keyed by
// the unique setting key. There is no delete; keys only accumulate.
type SettingRepository interface {
	All(ctx context.Context) (map[string]string, error)
	Get(ctx context.Context, key string) (string, bool, error)
	Upsert(ctx context.Context, key, value string) error
	UpsertMany(ctx context.Context, settings map[string]string) error
}

type settingRepository struct {
	DB *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{DB: db}
}

// All folds every row into a key→value map.
func (r *settingRepository) All(ctx context.Context) (map[string]string, error) {
	var rows []model.SettingModel
	if err := r.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}

// Get returns the value for key; absence is reported via the bool, not an error.
func (r *settingRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var row model.SettingModel
	err := r.DB.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return row.Value, true, nil
}

// Upsert writes key=value as a single conflict-resolving insert so concurrent
// writers to the same key cannot race a read-then-write.
func (r *settingRepository) Upsert(ctx context.Context, key, value string) error {
	return upsertTx(r.DB.WithContext(ctx), key, value)
}

// UpsertMany applies every entry in one transaction: all keys are written or,
// on any failure, none are.
func (r *settingRepository) UpsertMany(ctx context.Context, settings map[string]string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, value := range settings {
			if err := upsertTx(tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsertTx(tx *gorm.DB, key, value string) error {
	row := model.SettingModel{Key: key, Value: value}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}

package database

import (
	"gorm.io/gorm"

	appointmentModel "dentalcare_backend/internals/features/appointments/model"
	serviceModel "dentalcare_backend/internals/features/services/model"
	settingModel "dentalcare_backend/internals/features/settings/model"
)

// Migrate ensures the three clinic tables exist. Safe to run on every startup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&appointmentModel.AppointmentModel{},
		&settingModel.SettingModel{},
		&serviceModel.ServiceModel{},
	)
}

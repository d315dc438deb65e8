package settings

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dentalcare_backend/internals/features/settings/model"
)

var defaultSettings = []model.SettingModel{
	{Key: "clinic_name", Value: "Dental Clinic"},
	{Key: "clinic_phone", Value: "+91 98765 43210"},
	{Key: "clinic_email", Value: "info@dentalclinic.com"},
	{Key: "clinic_address", Value: "123 Dental Street, Medical District, Mumbai - 400001"},
	{Key: "opening_hours_weekday", Value: "9:00 AM - 8:00 PM"},
	{Key: "opening_hours_saturday", Value: "9:00 AM - 6:00 PM"},
	{Key: "opening_hours_sunday", Value: "10:00 AM - 4:00 PM"},
}

// SeedDefaultSettings inserts each default key only when absent. The conflict
// clause rides on the unique key index, so an existing value is never touched.
func SeedDefaultSettings(db *gorm.DB) error {
	for _, s := range defaultSettings {
		row := s
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).Create(&row).Error; err != nil {
			return err
		}
	}
	log.Println("✅ Default settings seeded.")
	return nil
}

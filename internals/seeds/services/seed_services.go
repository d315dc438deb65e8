package services

import (
	"log"

	"gorm.io/gorm"

	"dentalcare_backend/internals/features/services/model"
)

var defaultServices = []model.ServiceModel{
	{Name: "Root Canal", Description: "Save your natural tooth with our painless root canal treatment.", IsActive: true},
	{Name: "Dental Implants", Description: "Permanent solution for missing teeth with natural look and feel.", IsActive: true},
	{Name: "Cosmetic Dentistry", Description: "Enhance your smile with veneers, bonding, and more.", IsActive: true},
	{Name: "Teeth Whitening", Description: "Brighten your smile with our safe and effective whitening.", IsActive: true},
	{Name: "Orthodontics", Description: "Straighten your teeth with braces or clear aligners.", IsActive: true},
	{Name: "General Checkup", Description: "Comprehensive dental examination and cleaning.", IsActive: true},
	{Name: "Emergency Care", Description: "24/7 emergency dental services.", IsActive: true},
}

// SeedDefaultServices inserts each default treatment only when no row with the
// same name exists. Service names have no unique index (admins may create
// duplicates later), so deduplication applies at seed time only.
func SeedDefaultServices(db *gorm.DB) error {
	for _, s := range defaultServices {
		var count int64
		if err := db.Model(&model.ServiceModel{}).
			Where("name = ?", s.Name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		row := s
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}
	log.Println("✅ Default services seeded.")
	return nil
}

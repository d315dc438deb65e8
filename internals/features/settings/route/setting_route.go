package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dentalcare_backend/internals/features/settings/controller"
	"dentalcare_backend/internals/features/settings/repository"
)

func SettingRoutes(api fiber.Router, db *gorm.DB) {
	settingCtrl := controller.NewSettingController(repository.NewSettingRepository(db))

	settings := api.Group("/settings")
	settings.Get("/", settingCtrl.GetAllSettings)          // 📄 Full map
	settings.Get("/:key", settingCtrl.GetSettingByKey)     // 🔍 Single key
	settings.Put("/:key", settingCtrl.UpdateSetting)       // ✏️ Upsert one
	settings.Post("/", settingCtrl.UpdateMultipleSettings) // 💾 Bulk upsert (transactional)
}

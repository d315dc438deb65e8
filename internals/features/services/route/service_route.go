package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dentalcare_backend/internals/features/services/controller"
	"dentalcare_backend/internals/features/services/repository"
)

func ServiceRoutes(api fiber.Router, db *gorm.DB) {
	serviceCtrl := controller.NewServiceController(repository.NewServiceRepository(db))

	services := api.Group("/services")
	services.Get("/", serviceCtrl.GetAllServices)      // 📄 Admin list
	services.Get("/active", serviceCtrl.GetActiveServices) // 📄 Public site list
	services.Get("/:id", serviceCtrl.GetServiceByID)   // 🔍 Detail
	services.Post("/", serviceCtrl.CreateService)      // ➕ Create
	services.Put("/:id", serviceCtrl.UpdateService)    // ✏️ Update
	services.Delete("/:id", serviceCtrl.DeleteService) // 🗑️ Remove
}

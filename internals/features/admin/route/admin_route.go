package route

import (
	"github.com/gofiber/fiber/v2"

	"dentalcare_backend/internals/features/admin/controller"
	"dentalcare_backend/internals/middlewares"
)

func AdminRoutes(api fiber.Router) {
	authCtrl := controller.NewAuthController()

	admin := api.Group("/admin")
	admin.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login) // 🔑 Fixed-credential login
}

package routes

import (
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoutes "dentalcare_backend/internals/features/admin/route"
	appointmentRoutes "dentalcare_backend/internals/features/appointments/route"
	serviceRoutes "dentalcare_backend/internals/features/services/route"
	settingRoutes "dentalcare_backend/internals/features/settings/route"
)

// SetupRoutes mounts the JSON API under /api and, when a built frontend is
// present, serves it with an SPA fallback.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	log.Println("[INFO] Setting up AppointmentRoutes...")
	appointmentRoutes.AppointmentRoutes(api, db)

	log.Println("[INFO] Setting up SettingRoutes...")
	settingRoutes.SettingRoutes(api, db)

	log.Println("[INFO] Setting up ServiceRoutes...")
	serviceRoutes.ServiceRoutes(api, db)

	log.Println("[INFO] Setting up AdminRoutes...")
	adminRoutes.AdminRoutes(api)

	setupStatic(app)
}

// setupStatic serves the compiled admin/marketing SPA from ./dist when it
// exists. Client-side routes fall back to index.html; /api is never shadowed.
func setupStatic(app *fiber.App) {
	if _, err := os.Stat("./dist"); err != nil {
		return
	}

	app.Static("/", "./dist")
	app.Get("/*", func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api") {
			return fiber.ErrNotFound
		}
		return c.SendFile("./dist/index.html")
	})
}

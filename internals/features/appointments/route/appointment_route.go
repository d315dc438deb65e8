package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dentalcare_backend/internals/features/appointments/controller"
	"dentalcare_backend/internals/features/appointments/repository"
)

func AppointmentRoutes(api fiber.Router, db *gorm.DB) {
	appointmentCtrl := controller.NewAppointmentController(repository.NewAppointmentRepository(db))

	appointments := api.Group("/appointments")
	appointments.Get("/", appointmentCtrl.GetAllAppointments)            // 📄 Admin list
	appointments.Get("/:id", appointmentCtrl.GetAppointmentByID)         // 🔍 Detail
	appointments.Post("/", appointmentCtrl.CreateAppointment)            // ➕ Public booking
	appointments.Put("/:id", appointmentCtrl.UpdateAppointment)          // ✏️ Admin edit
	appointments.Patch("/:id/status", appointmentCtrl.UpdateAppointmentStatus) // 🔄 Status change
	appointments.Delete("/:id", appointmentCtrl.DeleteAppointment)       // 🗑️ Remove
}

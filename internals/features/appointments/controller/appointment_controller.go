package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dentalcare_backend/internals/features/appointments/dto"
	"dentalcare_backend/internals/features/appointments/repository"
	helper "dentalcare_backend/internals/helpers"
)

var validateAppointment = validator.New()

type AppointmentController struct {
	Repo repository.AppointmentRepository
}

func NewAppointmentController(repo repository.AppointmentRepository) *AppointmentController {
	return &AppointmentController{Repo: repo}
}

// =======================
// 📄 Get All Appointments
// =======================
func (ctrl *AppointmentController) GetAllAppointments(c *fiber.Ctx) error {
	appointments, err := ctrl.Repo.List(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(appointments)
}

// =======================
// 🔍 Get Appointment by ID
// =======================
func (ctrl *AppointmentController) GetAppointmentByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid appointment id")
	}

	appointment, err := ctrl.Repo.GetByID(c.UserContext(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Appointment not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(appointment)
}

// =======================
// ➕ Create Appointment (public booking)
// =======================
func (ctrl *AppointmentController) CreateAppointment(c *fiber.Ctx) error {
	var body dto.AppointmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAppointment.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing required fields")
	}

	id, err := ctrl.Repo.Create(c.UserContext(), body)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Re-read so the response carries server-side defaults (status, created_at).
	appointment, err := ctrl.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// =======================
// ✏️ Update Appointment
// =======================
func (ctrl *AppointmentController) UpdateAppointment(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid appointment id")
	}

	var body dto.AppointmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAppointment.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing required fields")
	}

	if err := ctrl.Repo.Update(c.UserContext(), id, body); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Appointment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	appointment, err := ctrl.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(appointment)
}

// =======================
// 🔄 Update Appointment Status
// =======================
func (ctrl *AppointmentController) UpdateAppointmentStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid appointment id")
	}

	var body dto.UpdateStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAppointment.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Status is required and must be one of Pending, Confirmed, Completed, Cancelled")
	}

	if err := ctrl.Repo.UpdateStatus(c.UserContext(), id, body.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Appointment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	appointment, err := ctrl.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(appointment)
}

// =======================
// 🗑️ Delete Appointment
// =======================
func (ctrl *AppointmentController) DeleteAppointment(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid appointment id")
	}

	if err := ctrl.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonMessage(c, "Appointment deleted successfully")
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

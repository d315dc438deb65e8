package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dentalcare_backend/internals/features/services/dto"
	"dentalcare_backend/internals/features/services/repository"
	helper "dentalcare_backend/internals/helpers"
)

var validateService = validator.New()

type ServiceController struct {
	Repo repository.ServiceRepository
}

func NewServiceController(repo repository.ServiceRepository) *ServiceController {
	return &ServiceController{Repo: repo}
}

// =======================
// 📄 Get All Services
// =======================
func (ctrl *ServiceController) GetAllServices(c *fiber.Ctx) error {
	services, err := ctrl.Repo.List(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(services)
}

// =======================
// 📄 Get Active Services (public site)
// =======================
func (ctrl *ServiceController) GetActiveServices(c *fiber.Ctx) error {
	services, err := ctrl.Repo.ListActive(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(services)
}

// =======================
// 🔍 Get Service by ID
// =======================
func (ctrl *ServiceController) GetServiceByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid service id")
	}

	service, err := ctrl.Repo.GetByID(c.UserContext(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Service not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(service)
}

// =======================
// ➕ Create Service
// =======================
func (ctrl *ServiceController) CreateService(c *fiber.Ctx) error {
	var body dto.ServiceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateService.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Service name is required")
	}

	id, err := ctrl.Repo.Create(c.UserContext(), body)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	service, err := ctrl.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// =======================
// ✏️ Update Service
// =======================
func (ctrl *ServiceController) UpdateService(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid service id")
	}

	var body dto.ServiceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateService.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Service name is required")
	}

	if err := ctrl.Repo.Update(c.UserContext(), id, body); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Service not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	service, err := ctrl.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(service)
}

// =======================
// 🗑️ Delete Service
// =======================
func (ctrl *ServiceController) DeleteService(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid service id")
	}

	if err := ctrl.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonMessage(c, "Service deleted successfully")
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

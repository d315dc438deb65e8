package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"dentalcare_backend/internals/features/settings/dto"
	"dentalcare_backend/internals/features/settings/repository"
	helper "dentalcare_backend/internals/helpers"
)

var validateSetting = validator.New()

type SettingController struct {
	Repo repository.SettingRepository
}

func NewSettingController(repo repository.SettingRepository) *SettingController {
	return &SettingController{Repo: repo}
}

// =======================
// 📄 Get All Settings (key→value map)
// =======================
func (ctrl *SettingController) GetAllSettings(c *fiber.Ctx) error {
	settings, err := ctrl.Repo.All(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(settings)
}

// =======================
// 🔍 Get Setting by Key
// =======================
func (ctrl *SettingController) GetSettingByKey(c *fiber.Ctx) error {
	key := c.Params("key")

	value, found, err := ctrl.Repo.Get(c.UserContext(), key)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !found {
		return helper.JsonError(c, fiber.StatusNotFound, "Setting not found")
	}
	return c.JSON(dto.SettingResponse{Key: key, Value: value})
}

// =======================
// ✏️ Upsert Single Setting
// =======================
func (ctrl *SettingController) UpdateSetting(c *fiber.Ctx) error {
	key := c.Params("key")

	var body dto.UpdateSettingRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSetting.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Value is required")
	}

	if err := ctrl.Repo.Upsert(c.UserContext(), key, *body.Value); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	value, _, err := ctrl.Repo.Get(c.UserContext(), key)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(dto.SettingResponse{Key: key, Value: value})
}

// =======================
// 💾 Upsert Multiple Settings (all-or-nothing)
// =======================
func (ctrl *SettingController) UpdateMultipleSettings(c *fiber.Ctx) error {
	var body map[string]string
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := ctrl.Repo.UpsertMany(c.UserContext(), body); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	settings, err := ctrl.Repo.All(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(settings)
}

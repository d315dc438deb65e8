package controller

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"dentalcare_backend/internals/configs"
	"dentalcare_backend/internals/features/admin/dto"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// =======================
// 🔑 Admin Login
// =======================
// Compares against the single fixed admin credential. No token or session is
// issued; the admin panel keeps its own client-side flag.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.LoginResponse{
			Success: false,
			Message: "Invalid request body",
		})
	}

	userOK := subtle.ConstantTimeCompare([]byte(body.Username), []byte(configs.AdminUsername)) == 1
	passOK := bcrypt.CompareHashAndPassword(configs.AdminPasswordHash, []byte(body.Password)) == nil

	if !userOK || !passOK {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.LoginResponse{
			Success: false,
			Message: "Invalid credentials",
		})
	}

	return c.JSON(dto.LoginResponse{
		Success: true,
		Message: "Login successful",
	})
}

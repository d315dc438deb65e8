package dto

// ============================
// Login Request DTO
// ============================

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ============================
// Login Response DTO
// ============================

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

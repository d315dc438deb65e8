package dto

// ============================
// Create / Update Request DTO
// ============================

type ServiceRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"` // optional
	IsActive    *bool  `json:"is_active"`   // nil → default true; explicit false respected
}

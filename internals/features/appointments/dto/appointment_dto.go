package dto

// ============================
// Create / Update Request DTO
// ============================

type AppointmentRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Service        string `json:"service" validate:"required"`
	Date           string `json:"date" validate:"required"`
	Time           string `json:"time" validate:"required"`
	SpecialRequest string `json:"special_request"` // optional
}

// ============================
// Status Update Request DTO
// ============================

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Confirmed Completed Cancelled"`
}

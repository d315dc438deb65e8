package dto

// ============================
// Update Request DTO (PUT /settings/:key)
// ============================

type UpdateSettingRequest struct {
	Value *string `json:"value" validate:"required"` // pointer so "" is a valid value
}

// ============================
// Response DTO
// ============================

type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

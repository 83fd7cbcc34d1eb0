package dto

// ConfirmRequest guards destructive admin operations
type ConfirmRequest struct {
	Confirm bool `json:"confirm"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Driver   string `json:"driver,omitempty"`
	Pool     any    `json:"pool,omitempty"`
}

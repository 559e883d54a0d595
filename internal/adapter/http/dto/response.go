package dto

// Success envelopes. Failures use apierrors.JsonErr.

type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Status  bool   `json:"status"`
}

type TaskResponse struct {
	Data    TaskItem `json:"data"`
	Status  bool     `json:"status"`
	Message string   `json:"message,omitempty"`
}

type TaskListResponse struct {
	Data   []TaskItem `json:"data"`
	Status bool       `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
	Status  bool   `json:"status"`
}

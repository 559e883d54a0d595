package dto

type UserItem struct {
	ID          uint64  `json:"id"`
	Email       string  `json:"email"`
	Username    string  `json:"username"`
	PhoneNumber *string `json:"phone_number"`
	Designation string  `json:"designation"`
	AccessLevel uint32  `json:"access_level"`
}

type TaskItem struct {
	ID            uint64     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	CreatedAt     string     `json:"created_at"`
	UpdatedAt     string     `json:"updated_at"`
	TaskType      string     `json:"task_type"`
	Status        string     `json:"status"`
	AssignedUsers []UserItem `json:"assigned_users"`
}

type CreateTaskRequest struct {
	Name            string   `json:"name" validate:"max=255"`
	Description     string   `json:"description"`
	TaskType        *string  `json:"task_type" validate:"omitempty,oneof=BUG FEATURE IMPROVEMENT"`
	Status          *string  `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
	AssignedUserIDs []uint64 `json:"assigned_user_ids"`
}

type UpdateTaskRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	TaskType    *string `json:"task_type" validate:"omitempty,oneof=BUG FEATURE IMPROVEMENT"`
	Status      *string `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
}

package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

type TaskType string

const (
	TaskTypeBug         TaskType = "BUG"
	TaskTypeFeature     TaskType = "FEATURE"
	TaskTypeImprovement TaskType = "IMPROVEMENT"
)

type Task struct {
	ID            uint64
	Name          string
	Description   string
	TaskType      TaskType
	Status        TaskStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
	AssignedUsers []User
}

// HasAssignee reports whether userID is in the task's assignment set.
func (t Task) HasAssignee(userID uint64) bool {
	for _, user := range t.AssignedUsers {
		if user.ID == userID {
			return true
		}
	}
	return false
}

type CreateTaskInput struct {
	Name            string
	Description     string
	TaskType        TaskType
	Status          TaskStatus
	AssignedUserIDs []uint64
}

type UpdateTaskInput struct {
	Name        *string
	Description *string
	TaskType    *TaskType
	Status      *TaskStatus
}

func (in UpdateTaskInput) IsEmpty() bool {
	return in.Name == nil && in.Description == nil && in.TaskType == nil && in.Status == nil
}

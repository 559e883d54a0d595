package mapper

import (
	"time"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:            task.ID,
		Name:          task.Name,
		Description:   task.Description,
		CreatedAt:     task.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     task.UpdatedAt.UTC().Format(time.RFC3339Nano),
		TaskType:      string(task.TaskType),
		Status:        string(task.Status),
		AssignedUsers: ToUserItems(task.AssignedUsers),
	}
}

// ToUserItems never returns nil so an empty assignment set encodes as [].
func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

func ToUserItem(user domain.User) dto.UserItem {
	item := dto.UserItem{
		ID:          user.ID,
		Email:       user.Email,
		Username:    user.Username,
		Designation: user.Designation,
		AccessLevel: user.AccessLevel,
	}

	if user.PhoneNumber != nil {
		value := *user.PhoneNumber
		item.PhoneNumber = &value
	}

	return item
}

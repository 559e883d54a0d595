package ports

import (
	"context"

	"taskboard/internal/core/domain"
)

type TaskRepository interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	GetTask(ctx context.Context, taskID uint64) (domain.Task, error)
	UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	AssignUser(ctx context.Context, taskID uint64, userID uint64) (domain.Task, error)
	ListTasksForUser(ctx context.Context, userID uint64) ([]domain.Task, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	GetTask(ctx context.Context, taskID uint64) (domain.Task, error)
	UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	AssignTask(ctx context.Context, taskID uint64, email string) (domain.Task, error)
	ListUserTasks(ctx context.Context, email string) ([]domain.Task, error)
}

package service

import (
	"context"

	"go.uber.org/zap"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	users          ports.UserDirectory
}

func NewTaskService(taskRepository ports.TaskRepository, users ports.UserDirectory) *TaskService {
	return &TaskService{taskRepository: taskRepository, users: users}
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	if input.TaskType == "" {
		input.TaskType = domain.TaskTypeFeature
	}
	if input.Status == "" {
		input.Status = domain.TaskStatusPending
	}
	return s.taskRepository.CreateTask(ctx, input)
}

func (s *TaskService) GetTask(ctx context.Context, taskID uint64) (domain.Task, error) {
	return s.taskRepository.GetTask(ctx, taskID)
}

func (s *TaskService) UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	if input.IsEmpty() {
		return domain.Task{}, domain.ErrEmptyTaskUpdate
	}
	return s.taskRepository.UpdateTask(ctx, taskID, input)
}

// AssignTask resolves email to a user and adds that user to the task. The repository call is
// the only write, so a failed lookup leaves the task untouched.
func (s *TaskService) AssignTask(ctx context.Context, taskID uint64, email string) (domain.Task, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return domain.Task{}, err
	}

	task, err := s.taskRepository.AssignUser(ctx, taskID, user.ID)
	if err != nil {
		return domain.Task{}, err
	}

	zap.L().Info("task assigned", zap.Uint64("task_id", taskID), zap.Uint64("user_id", user.ID))
	return task, nil
}

func (s *TaskService) ListUserTasks(ctx context.Context, email string) ([]domain.Task, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.taskRepository.ListTasksForUser(ctx, user.ID)
}

var _ ports.TaskService = (*TaskService)(nil)

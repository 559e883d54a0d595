package tests

import (
	"context"
	"database/sql"

	"github.com/stretchr/testify/mock"

	"taskboard/internal/core/domain"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) AssignTask(ctx context.Context, taskID uint64, email string) (domain.Task, error) {
	args := m.Called(ctx, taskID, email)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ListUserTasks(ctx context.Context, email string) ([]domain.Task, error) {
	args := m.Called(ctx, email)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Authenticate(ctx context.Context, token string) (domain.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) Register(ctx context.Context, input domain.RegisterUserInput) (domain.User, string, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.String(1), args.Error(2)
}

func (m *authServiceMock) Login(ctx context.Context, credentials domain.Credentials) (string, error) {
	args := m.Called(ctx, credentials)
	return args.String(0), args.Error(1)
}

type pingerStub struct {
	err error
}

func (p pingerStub) PingContext(context.Context) error {
	return p.err
}

type statsPingerStub struct {
	pingerStub
	stats sql.DBStats
}

func (p statsPingerStub) Stats() sql.DBStats {
	return p.stats
}

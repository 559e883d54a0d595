package tests

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"taskboard/internal/core/domain"
)

// fakeStore backs the user, token and task fakes with one in-memory state.
type fakeStore struct {
	mu sync.Mutex

	nextUserID uint64
	nextTaskID uint64
	now        time.Time

	users       map[uint64]domain.User
	tokens      map[uint64]string
	tasks       map[uint64]domain.Task
	assignments map[uint64]map[uint64]struct{}
	writes      int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextUserID:  1,
		nextTaskID:  1,
		now:         time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		users:       make(map[uint64]domain.User),
		tokens:      make(map[uint64]string),
		tasks:       make(map[uint64]domain.Task),
		assignments: make(map[uint64]map[uint64]struct{}),
	}
}

func (s *fakeStore) tick() time.Time {
	s.now = s.now.Add(time.Second)
	return s.now
}

type fakeUserRepository struct{ *fakeStore }

func (r fakeUserRepository) CreateUser(_ context.Context, user domain.NewUser) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domain.User{}, domain.ErrDuplicateEmail
		}
		if existing.Username == user.Username {
			return domain.User{}, domain.ErrDuplicateUsername
		}
	}

	created := domain.User{
		ID:           r.nextUserID,
		Email:        user.Email,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		PhoneNumber:  user.PhoneNumber,
		Designation:  user.Designation,
		AccessLevel:  user.AccessLevel,
		DateJoined:   r.tick(),
	}
	r.users[created.ID] = created
	r.nextUserID++
	r.writes++
	return created, nil
}

func (r fakeUserRepository) FindByEmail(_ context.Context, email string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (r fakeUserRepository) FindByID(_ context.Context, userID uint64) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

type fakeTokenRepository struct{ *fakeStore }

func (r fakeTokenRepository) GetOrCreateToken(_ context.Context, userID uint64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userID]; !ok {
		return "", domain.ErrUserNotFound
	}
	if token, ok := r.tokens[userID]; ok {
		return token, nil
	}
	token := fmt.Sprintf("%040d", userID)
	r.tokens[userID] = token
	return token, nil
}

func (r fakeTokenRepository) FindUserByToken(_ context.Context, token string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for userID, key := range r.tokens {
		if key == token {
			return r.users[userID], nil
		}
	}
	return domain.User{}, domain.ErrInvalidToken
}

type fakeTaskRepository struct{ *fakeStore }

func (r fakeTaskRepository) CreateTask(_ context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var missing []uint64
	for _, id := range input.AssignedUserIDs {
		if _, ok := r.users[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return domain.Task{}, &domain.UnknownUsersError{IDs: missing}
	}

	now := r.tick()
	task := domain.Task{
		ID:          r.nextTaskID,
		Name:        input.Name,
		Description: input.Description,
		TaskType:    input.TaskType,
		Status:      input.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.nextTaskID++
	r.tasks[task.ID] = task
	r.assignments[task.ID] = make(map[uint64]struct{})
	for _, id := range input.AssignedUserIDs {
		r.assignments[task.ID][id] = struct{}{}
	}
	r.writes++
	return r.loadTask(task.ID), nil
}

func (r fakeTaskRepository) GetTask(_ context.Context, taskID uint64) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[taskID]; !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return r.loadTask(taskID), nil
}

func (r fakeTaskRepository) UpdateTask(_ context.Context, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[taskID]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if input.Name != nil {
		task.Name = *input.Name
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.TaskType != nil {
		task.TaskType = *input.TaskType
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	task.UpdatedAt = r.tick()
	r.tasks[taskID] = task
	r.writes++
	return r.loadTask(taskID), nil
}

func (r fakeTaskRepository) AssignUser(_ context.Context, taskID uint64, userID uint64) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[taskID]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if _, ok := r.users[userID]; !ok {
		return domain.Task{}, domain.ErrUserNotFound
	}

	r.assignments[taskID][userID] = struct{}{}
	task.UpdatedAt = r.tick()
	r.tasks[taskID] = task
	r.writes++
	return r.loadTask(taskID), nil
}

func (r fakeTaskRepository) ListTasksForUser(_ context.Context, userID uint64) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]uint64, 0)
	for taskID, assignees := range r.assignments {
		if _, ok := assignees[userID]; ok {
			ids = append(ids, taskID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	tasks := make([]domain.Task, 0, len(ids))
	for _, id := range ids {
		tasks = append(tasks, r.loadTask(id))
	}
	return tasks, nil
}

// loadTask expects the caller to hold the lock.
func (r fakeTaskRepository) loadTask(taskID uint64) domain.Task {
	task := r.tasks[taskID]
	userIDs := make([]uint64, 0, len(r.assignments[taskID]))
	for id := range r.assignments[taskID] {
		userIDs = append(userIDs, id)
	}
	sort.Slice(userIDs, func(i, j int) bool { return userIDs[i] < userIDs[j] })

	task.AssignedUsers = nil
	for _, id := range userIDs {
		task.AssignedUsers = append(task.AssignedUsers, r.users[id])
	}
	return task
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hash string, password string) bool {
	return hash == "hashed:"+password
}

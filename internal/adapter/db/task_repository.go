package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

const taskColumns = `t.id, t.name, t.description, t.task_type, t.status, t.created_at, t.updated_at`

const insertTaskQuery = `
INSERT INTO tasks (name, description, task_type, status)
VALUES (?, ?, ?, ?);
`

const insertAssigneesQuery = `INSERT INTO task_assignees (task_id, user_id) VALUES (:task_id, :user_id)`

const listTasksForUserQuery = `
SELECT ` + taskColumns + `
FROM tasks t
JOIN task_assignees ta ON ta.task_id = t.id
WHERE ta.user_id = ?
ORDER BY t.id;
`

const listAssigneesQuery = `
SELECT ta.task_id AS assignee_task_id, ` + userColumns + `
FROM task_assignees ta
JOIN users u ON u.id = ta.user_id
WHERE ta.task_id IN (?)
ORDER BY ta.task_id, u.id;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	TaskType    string    `db:"task_type"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type assigneeRow struct {
	TaskID uint64 `db:"assignee_task_id"`
	userRow
}

type assignmentRow struct {
	TaskID uint64 `db:"task_id"`
	UserID uint64 `db:"user_id"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// CreateTask inserts the task and its initial assignment set in one transaction.
// Any unknown user id aborts the create with *domain.UnknownUsersError.
func (r *TaskRepository) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	userIDs := uniqueIDs(input.AssignedUserIDs)

	var taskID uint64
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := ensureUsersExist(ctx, tx, userIDs); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, insertTaskQuery, input.Name, input.Description, input.TaskType, input.Status)
		if err != nil {
			return fmt.Errorf("insert task: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert task: %w", err)
		}
		taskID = uint64(id)

		if len(userIDs) == 0 {
			return nil
		}

		rows := make([]assignmentRow, 0, len(userIDs))
		for _, userID := range userIDs {
			rows = append(rows, assignmentRow{TaskID: taskID, UserID: userID})
		}
		if _, err := tx.NamedExecContext(ctx, insertAssigneesQuery, rows); err != nil {
			if isForeignKeyViolation(err) {
				return &domain.UnknownUsersError{IDs: userIDs}
			}
			return fmt.Errorf("insert task assignees: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}

	return r.GetTask(ctx, taskID)
}

func (r *TaskRepository) GetTask(ctx context.Context, taskID uint64) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, "SELECT "+taskColumns+" FROM tasks t WHERE t.id = ?", taskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, fmt.Errorf("get task: %w", err)
	}

	tasks, err := r.withAssignees(ctx, []taskRow{row})
	if err != nil {
		return domain.Task{}, err
	}
	return tasks[0], nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	if input.IsEmpty() {
		return domain.Task{}, domain.ErrEmptyTaskUpdate
	}

	sets := make([]string, 0, 5)
	args := make([]any, 0, 5)
	if input.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *input.Name)
	}
	if input.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *input.Description)
	}
	if input.TaskType != nil {
		sets = append(sets, "task_type = ?")
		args = append(args, *input.TaskType)
	}
	if input.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *input.Status)
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP(6)")
	args = append(args, taskID)

	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := lockTask(ctx, tx, taskID); err != nil {
			return err
		}
		query := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = ?"
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("update task: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}

	return r.GetTask(ctx, taskID)
}

// AssignUser adds userID to the task's assignment set. Assigning an already assigned
// user succeeds without a duplicate row; updated_at is refreshed either way.
func (r *TaskRepository) AssignUser(ctx context.Context, taskID uint64, userID uint64) (domain.Task, error) {
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := lockTask(ctx, tx, taskID); err != nil {
			return err
		}

		_, err := tx.ExecContext(
			ctx,
			"INSERT INTO task_assignees (task_id, user_id) VALUES (?, ?) ON DUPLICATE KEY UPDATE user_id = user_id",
			taskID,
			userID,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("insert task assignee: %w", err)
		}

		if _, err := tx.ExecContext(ctx, "UPDATE tasks SET updated_at = CURRENT_TIMESTAMP(6) WHERE id = ?", taskID); err != nil {
			return fmt.Errorf("touch task: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}

	return r.GetTask(ctx, taskID)
}

func (r *TaskRepository) ListTasksForUser(ctx context.Context, userID uint64) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksForUserQuery, userID); err != nil {
		return nil, fmt.Errorf("list tasks for user: %w", err)
	}

	return r.withAssignees(ctx, rows)
}

func (r *TaskRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *TaskRepository) withAssignees(ctx context.Context, rows []taskRow) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(rows))
	if len(rows) == 0 {
		return tasks, nil
	}

	ids := make([]uint64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	query, args, err := sqlx.In(listAssigneesQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("build assignees query: %w", err)
	}

	var assignees []assigneeRow
	if err := r.db.SelectContext(ctx, &assignees, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list task assignees: %w", err)
	}

	byTask := make(map[uint64][]domain.User, len(rows))
	for _, assignee := range assignees {
		byTask[assignee.TaskID] = append(byTask[assignee.TaskID], mapUserRowToDomainUser(assignee.userRow))
	}

	for _, row := range rows {
		task := mapTaskRowToDomainTask(row)
		task.AssignedUsers = byTask[row.ID]
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func lockTask(ctx context.Context, tx *sqlx.Tx, taskID uint64) error {
	var id uint64
	if err := tx.GetContext(ctx, &id, "SELECT id FROM tasks WHERE id = ? FOR UPDATE", taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrTaskNotFound
		}
		return fmt.Errorf("lock task: %w", err)
	}
	return nil
}

func ensureUsersExist(ctx context.Context, tx *sqlx.Tx, userIDs []uint64) error {
	if len(userIDs) == 0 {
		return nil
	}

	query, args, err := sqlx.In("SELECT id FROM users WHERE id IN (?)", userIDs)
	if err != nil {
		return fmt.Errorf("build users query: %w", err)
	}

	var found []uint64
	if err := tx.SelectContext(ctx, &found, tx.Rebind(query), args...); err != nil {
		return fmt.Errorf("check users: %w", err)
	}

	if len(found) == len(userIDs) {
		return nil
	}

	existing := make(map[uint64]struct{}, len(found))
	for _, id := range found {
		existing[id] = struct{}{}
	}
	missing := make([]uint64, 0, len(userIDs)-len(found))
	for _, id := range userIDs {
		if _, ok := existing[id]; !ok {
			missing = append(missing, id)
		}
	}
	return &domain.UnknownUsersError{IDs: missing}
}

// uniqueIDs drops duplicates and returns the ids in ascending order.
func uniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	return domain.Task{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		TaskType:    domain.TaskType(row.TaskType),
		Status:      domain.TaskStatus(row.Status),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("duplicate email")
	ErrDuplicateUsername  = errors.New("duplicate username")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrEmptyTaskUpdate    = errors.New("empty task update")
	ErrUnknownAssignees   = errors.New("unknown assignees")
	ErrMissingCredentials = errors.New("missing credentials")
)

// UnknownUsersError lists initial assignee ids that do not match any user.
type UnknownUsersError struct {
	IDs []uint64
}

func (e *UnknownUsersError) Error() string {
	return fmt.Sprintf("unknown assignees: %v", e.IDs)
}

func (e *UnknownUsersError) Unwrap() error {
	return ErrUnknownAssignees
}

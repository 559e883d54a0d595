package service

import (
	"context"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

// UserService is the user directory used by the task domain.
type UserService struct {
	userRepository ports.UserRepository
}

func NewUserService(userRepository ports.UserRepository) *UserService {
	return &UserService{userRepository: userRepository}
}

// FindByEmail matches the stored email exactly; no case folding is applied.
func (s *UserService) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.userRepository.FindByEmail(ctx, email)
}

var _ ports.UserDirectory = (*UserService)(nil)

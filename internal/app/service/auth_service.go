package service

import (
	"context"
	"errors"
	"fmt"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type AuthService struct {
	userRepository  ports.UserRepository
	tokenRepository ports.TokenRepository
	hasher          ports.PasswordHasher
}

func NewAuthService(userRepository ports.UserRepository, tokenRepository ports.TokenRepository, hasher ports.PasswordHasher) *AuthService {
	return &AuthService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		hasher:          hasher,
	}
}

func (s *AuthService) Register(ctx context.Context, input domain.RegisterUserInput) (domain.User, string, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	designation := input.Designation
	if designation == "" {
		designation = domain.DefaultDesignation
	}

	user, err := s.userRepository.CreateUser(ctx, domain.NewUser{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: hash,
		PhoneNumber:  input.PhoneNumber,
		Designation:  designation,
		AccessLevel:  input.AccessLevel,
	})
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := s.tokenRepository.GetOrCreateToken(ctx, user.ID)
	if err != nil {
		return domain.User{}, "", err
	}

	return user, token, nil
}

// Login returns the user's existing token, creating it on first login.
func (s *AuthService) Login(ctx context.Context, credentials domain.Credentials) (string, error) {
	user, err := s.userRepository.FindByEmail(ctx, credentials.Email)
	if err != nil {
		return "", err
	}

	if !s.hasher.Compare(user.PasswordHash, credentials.Password) {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokenRepository.GetOrCreateToken(ctx, user.ID)
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, domain.ErrMissingCredentials
	}

	user, err := s.tokenRepository.FindUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, domain.ErrInvalidToken
		}
		return domain.User{}, err
	}
	return user, nil
}

var _ ports.AuthService = (*AuthService)(nil)

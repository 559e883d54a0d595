package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"taskboard/internal/adapter/security"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

const findUserByTokenQuery = `
SELECT ` + userColumns + `
FROM auth_tokens t
JOIN users u ON u.id = t.user_id
WHERE t.token_key = ?;
`

type TokenRepository struct {
	db *sqlx.DB
}

var _ ports.TokenRepository = (*TokenRepository)(nil)

func NewTokenRepository(db *sqlx.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// GetOrCreateToken inserts a fresh key only when the user has none, then reads whichever key won.
// The unique user_id makes concurrent logins for one user converge on a single token.
func (r *TokenRepository) GetOrCreateToken(ctx context.Context, userID uint64) (string, error) {
	candidate, err := security.NewTokenKey()
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	_, err = r.db.ExecContext(
		ctx,
		"INSERT INTO auth_tokens (token_key, user_id) VALUES (?, ?) ON DUPLICATE KEY UPDATE token_key = token_key",
		candidate,
		userID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return "", domain.ErrUserNotFound
		}
		return "", fmt.Errorf("insert token: %w", err)
	}

	var token string
	if err := r.db.GetContext(ctx, &token, "SELECT token_key FROM auth_tokens WHERE user_id = ?", userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrUserNotFound
		}
		return "", fmt.Errorf("get token: %w", err)
	}

	return token, nil
}

func (r *TokenRepository) FindUserByToken(ctx context.Context, token string) (domain.User, error) {
	user, err := findUser(ctx, r.db, findUserByTokenQuery, token)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, domain.ErrInvalidToken
	}
	return user, err
}

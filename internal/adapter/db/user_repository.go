package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

const userColumns = `u.id, u.email, u.username, u.password, u.phone_number, u.designation, u.access_level, u.date_joined`

const insertUserQuery = `
INSERT INTO users (email, username, password, phone_number, designation, access_level)
VALUES (?, ?, ?, ?, ?, ?);
`

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID          uint64         `db:"id"`
	Email       string         `db:"email"`
	Username    string         `db:"username"`
	Password    string         `db:"password"`
	PhoneNumber sql.NullString `db:"phone_number"`
	Designation string         `db:"designation"`
	AccessLevel uint32         `db:"access_level"`
	DateJoined  time.Time      `db:"date_joined"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user domain.NewUser) (domain.User, error) {
	designation := user.Designation
	if designation == "" {
		designation = domain.DefaultDesignation
	}

	result, err := r.db.ExecContext(
		ctx,
		insertUserQuery,
		user.Email,
		user.Username,
		user.PasswordHash,
		user.PhoneNumber,
		designation,
		user.AccessLevel,
	)
	if err != nil {
		switch duplicateKey(err) {
		case "uq_users_email":
			return domain.User{}, domain.ErrDuplicateEmail
		case "uq_users_username":
			return domain.User{}, domain.ErrDuplicateUsername
		}
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}

	return r.FindByID(ctx, uint64(id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return findUser(ctx, r.db, "SELECT "+userColumns+" FROM users u WHERE u.email = ?", email)
}

func (r *UserRepository) FindByID(ctx context.Context, userID uint64) (domain.User, error) {
	return findUser(ctx, r.db, "SELECT "+userColumns+" FROM users u WHERE u.id = ?", userID)
}

func findUser(ctx context.Context, q sqlx.QueryerContext, query string, args ...any) (domain.User, error) {
	var row userRow
	if err := sqlx.GetContext(ctx, q, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return mapUserRowToDomainUser(row), nil
}

func mapUserRowToDomainUser(row userRow) domain.User {
	user := domain.User{
		ID:           row.ID,
		Email:        row.Email,
		Username:     row.Username,
		PasswordHash: row.Password,
		Designation:  row.Designation,
		AccessLevel:  row.AccessLevel,
		DateJoined:   row.DateJoined,
	}

	if row.PhoneNumber.Valid {
		value := row.PhoneNumber.String
		user.PhoneNumber = &value
	}

	return user
}

package domain

import "time"

const DefaultDesignation = "User"

type User struct {
	ID           uint64
	Email        string
	Username     string
	PasswordHash string
	PhoneNumber  *string
	Designation  string
	AccessLevel  uint32
	DateJoined   time.Time
}

type RegisterUserInput struct {
	Email       string
	Username    string
	Password    string
	PhoneNumber *string
	Designation string
	AccessLevel uint32
}

// NewUser is what the credential store persists; the password is already hashed.
type NewUser struct {
	Email        string
	Username     string
	PasswordHash string
	PhoneNumber  *string
	Designation  string
	AccessLevel  uint32
}

type Credentials struct {
	Email    string
	Password string
}

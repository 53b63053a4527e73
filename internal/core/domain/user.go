package domain

import (
	"errors"
	"time"
)

// Lengths count characters, except MaxPasswordBytes which is the bcrypt
// input limit.
const (
	MinPasswordLength = 8
	MaxPasswordBytes  = 72
	MinUsernameLength = 4
	MaxUsernameLength = 20
	MaxNameLength     = 100

	// HireDateLayout is the format of the date_hired form field.
	HireDateLayout = "2006-01-02"
)

var (
	ErrPasswordTooShort   = errors.New("password too short")
	ErrPasswordTooLong    = errors.New("password too long")
	ErrUsernameTooShort   = errors.New("username too short")
	ErrHireDateNotToday   = errors.New("hire date must be today")
	ErrFieldTooLong       = errors.New("field exceeds maximum length")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User models a registered account.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password"`
	DateHired    time.Time `json:"date_hired" db:"date_hired"`
}

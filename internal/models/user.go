package models

import (
	"time"

	"github.com/google/uuid"
)

// Роли пользователей. Хранятся строкой в БД и попадают в claims access-токена.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User — учётная запись пользователя.
// PasswordHash — bcrypt-хэш пароля; сам пароль нигде не хранится.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package model

import "time"

// Роли пользователей админ-панели.
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// User: серверная модель пользователя.
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	PublicID string `gorm:"type:uuid;uniqueIndex;not null"`
	Login    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"` // bcrypt hash
	Role     string `gorm:"not null;default:viewer"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// ValidRole reports whether role is known.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleViewer
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Email and badge number carry unique
// indexes; the database is the single authority for those constraints, so
// check-and-insert is atomic even under concurrent writers.
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name         string     `gorm:"type:varchar(100);not null"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	PasswordHash string     `gorm:"column:password;type:varchar(255);not null"`
	BadgeNumber  string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_users_badge_number"`
	Agency       string     `gorm:"type:varchar(255);not null"`
	Role         string     `gorm:"type:varchar(32);not null;default:'officer'"`
	Department   string     `gorm:"type:varchar(255)"`
	Phone        string     `gorm:"type:varchar(50)"`
	IsActive     bool       `gorm:"not null;default:true"`
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 generated by the application
// so that the same schema works on PostgreSQL and SQLite.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Responses []UserResponseModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

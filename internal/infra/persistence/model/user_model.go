package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated by the application.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:viewer"`
	Status       string    `gorm:"type:varchar(20);not null;default:active"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// All returns every persistence model, in dependency order, for migrations and code generation.
func All() []any {
	return []any{
		&UserModel{},
		&RefreshTokenModel{},
		&StoreModel{},
		&ServiceTagModel{},
		&StoreServiceModel{},
	}
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminModel is the GORM model for the admins table.
type AdminModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex"`
	Email        string    `gorm:"column:email;type:varchar(255);not null"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for AdminModel
func (AdminModel) TableName() string {
	return "admins"
}

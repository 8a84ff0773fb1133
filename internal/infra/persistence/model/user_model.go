// Package model contains GORM-specific database models.
// These structs map the domain entities onto PostgreSQL tables and stay
// private to the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM model for the users table. The API token lives
// directly on the row so a login can replace token and expiry in one write.
type UserModel struct {
	ID               uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Email            string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	Name             string     `gorm:"column:name;type:varchar(255);not null"`
	PasswordHash     string     `gorm:"column:password_hash;type:varchar(255);not null"`
	APIToken         *string    `gorm:"column:api_token;type:varchar(64);uniqueIndex"`
	TokenExpiresAt   *time.Time `gorm:"column:token_expires_at"`
	Age              *int       `gorm:"column:age"`
	Height           *float64   `gorm:"column:height;type:numeric(5,2)"`
	Weight           *float64   `gorm:"column:weight;type:numeric(5,2)"`
	Gender           *string    `gorm:"column:gender;type:varchar(16)"`
	TargetWeight     *float64   `gorm:"column:target_weight;type:numeric(5,2)"`
	DailyCalorieGoal int        `gorm:"column:daily_calorie_goal;not null;default:2000"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for UserModel
func (UserModel) TableName() string {
	return "users"
}

// WeightHistoryModel is the GORM model for the weight_history table.
// One row per user per day, overwritten on repeated saves.
type WeightHistoryModel struct {
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey"`
	Date      time.Time `gorm:"column:date;type:date;primaryKey"`
	Weight    float64   `gorm:"column:weight;type:numeric(5,2);not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for WeightHistoryModel
func (WeightHistoryModel) TableName() string {
	return "weight_history"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// ExerciseModel is the GORM model for the exercises table.
type ExerciseModel struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID          uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:idx_exercises_user_date,priority:1"`
	Date            time.Time `gorm:"column:date;type:date;not null;index:idx_exercises_user_date,priority:2"`
	Type            string    `gorm:"column:type;type:varchar(16);not null"`
	Name            string    `gorm:"column:name;type:varchar(255);not null"`
	DurationMinutes int       `gorm:"column:duration_minutes;not null"`
	CaloriesBurned  int       `gorm:"column:calories_burned;not null;default:0"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for ExerciseModel
func (ExerciseModel) TableName() string {
	return "exercises"
}

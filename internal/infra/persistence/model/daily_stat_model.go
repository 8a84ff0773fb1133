package model

import (
	"time"

	"github.com/google/uuid"
)

// DailyStatModel is the GORM model for the daily_statistics table.
// The composite primary key enforces at most one row per user per day.
type DailyStatModel struct {
	UserID          uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey"`
	Date            time.Time `gorm:"column:date;type:date;primaryKey"`
	CaloriesIn      int       `gorm:"column:calories_in;not null;default:0"`
	CaloriesOut     int       `gorm:"column:calories_out;not null;default:0"`
	WaterIntake     int       `gorm:"column:water_intake;not null;default:0"`
	ExerciseMinutes int       `gorm:"column:exercise_minutes;not null;default:0"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for DailyStatModel
func (DailyStatModel) TableName() string {
	return "daily_statistics"
}

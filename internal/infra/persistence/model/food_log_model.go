package model

import (
	"time"

	"github.com/google/uuid"
)

// FoodLogModel is the GORM model for the food_logs table.
type FoodLogModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:idx_food_logs_user_date,priority:1"`
	Date      time.Time `gorm:"column:date;type:date;not null;index:idx_food_logs_user_date,priority:2"`
	FoodName  string    `gorm:"column:food_name;type:varchar(255);not null"`
	Calories  int       `gorm:"column:calories;not null"`
	Protein   float64   `gorm:"column:protein;type:numeric(6,2);not null;default:0"`
	Carbs     float64   `gorm:"column:carbs;type:numeric(6,2);not null;default:0"`
	Fat       float64   `gorm:"column:fat;type:numeric(6,2);not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for FoodLogModel
func (FoodLogModel) TableName() string {
	return "food_logs"
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// FoodLog is one logged meal entry with its macro breakdown.
type FoodLog struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"-"`
	Date      time.Time `json:"date"`
	FoodName  string    `json:"food_name"`
	Calories  int       `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	CreatedAt time.Time `json:"created_at"`
}

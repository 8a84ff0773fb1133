package entity

import (
	"time"

	"github.com/google/uuid"
)

// DailyStat aggregates a user's day: intake, burn, water and exercise time.
// There is at most one row per (user, date); saving again overwrites it.
type DailyStat struct {
	UserID          uuid.UUID `json:"-"`
	Date            time.Time `json:"date"`
	CaloriesIn      int       `json:"calories_in"`
	CaloriesOut     int       `json:"calories_out"`
	WaterIntake     int       `json:"water_intake"`
	ExerciseMinutes int       `json:"exercise_minutes"`
	UpdatedAt       time.Time `json:"-"`
}

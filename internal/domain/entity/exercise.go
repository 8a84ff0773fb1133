package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExerciseType categorizes a logged exercise.
type ExerciseType string

const (
	// ExerciseTypeCardio marks endurance work (running, cycling, ...).
	ExerciseTypeCardio ExerciseType = "cardio"
	// ExerciseTypeWeights marks resistance training.
	ExerciseTypeWeights ExerciseType = "weights"
)

// Valid reports whether the type is one of the known exercise categories.
func (t ExerciseType) Valid() bool {
	return t == ExerciseTypeCardio || t == ExerciseTypeWeights
}

// Exercise is one logged workout entry, always owned by a user and a day.
type Exercise struct {
	ID              uuid.UUID    `json:"id"`
	UserID          uuid.UUID    `json:"-"`
	Date            time.Time    `json:"date"`
	Type            ExerciseType `json:"type"`
	Name            string       `json:"name"`
	DurationMinutes int          `json:"duration"`
	CaloriesBurned  int          `json:"calories_burned"`
	CreatedAt       time.Time    `json:"created_at"`
}

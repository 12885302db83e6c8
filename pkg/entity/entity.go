package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

// ExerciseEntry is one exercise of a completed workout
type ExerciseEntry struct {
	Name      string `json:"name" validate:"required,max=100"`
	Completed bool   `json:"completed"`
}

// WorkoutCompletion is a workout marked as done by a user. Date holds only the
// calendar day (midnight UTC), one completion per user per day.
type WorkoutCompletion struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"uid"`
	Date            time.Time       `json:"date"`
	Exercises       []ExerciseEntry `json:"exercises"`
	DurationMinutes int             `json:"duration_minutes"`
	CreatedAt       time.Time       `json:"created_at"`
}

type WorkoutStats struct {
	TotalWorkouts          int     `json:"total_workouts"`
	CurrentStreak          int     `json:"current_streak"`
	LongestStreak          int     `json:"longest_streak"`
	AverageWorkoutDuration float64 `json:"average_workout_duration"`
}

// Schedule is the set of weekdays a user plans to work out on
type Schedule struct {
	UserID    uuid.UUID      `json:"uid"`
	Days      []time.Weekday `json:"days"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type Exercise struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"uid"`
	Name        string    `json:"name"`
	MuscleGroup string    `json:"muscle_group"`
	Description string    `json:"desc"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ReminderSettings struct {
	UserID   uuid.UUID `json:"uid"`
	Enabled  bool      `json:"enabled"`
	Hour     int       `json:"hour"`
	Minute   int       `json:"minute"`
	Timezone string    `json:"timezone"`
}

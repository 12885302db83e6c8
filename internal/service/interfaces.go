package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/fitstreak/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CompleteWorkoutRequest struct {
	// Calendar day in YYYY-MM-DD, today when empty
	Date            string
	Exercises       []entity.ExerciseEntry `validate:"max=50,dive"`
	DurationMinutes int                    `validate:"min=0,max=1440"`
}

type CreateExerciseRequest struct {
	Name        string `validate:"required,min=2,max=100"`
	MuscleGroup string `validate:"max=50"`
	Description string `validate:"max=1000"`
}

type UpdateRemindersRequest struct {
	Enabled  bool
	Hour     int    `validate:"min=0,max=23"`
	Minute   int    `validate:"min=0,max=59"`
	Timezone string `validate:"required,max=64"`
}

// History is a period of completions with its resolved bounds
type History struct {
	From     time.Time
	To       time.Time
	Workouts []entity.WorkoutCompletion
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type WorkoutsServiceI interface {
	// Marks a day as completed. Future days and second completions of a day are rejected
	CompleteWorkout(ctx context.Context, uid uuid.UUID, req *CompleteWorkoutRequest) (*entity.WorkoutCompletion, error)
	// Returns completions in [from, to], newest first. Zero to means user's today,
	// zero from means DefaultHistoryDays before to
	GetHistory(ctx context.Context, uid uuid.UUID, from, to time.Time) (*History, error)
	// Computes totals and streaks over the whole history as of today
	GetStats(ctx context.Context, uid uuid.UUID) (*entity.WorkoutStats, error)
}

type ScheduleServiceI interface {
	GetSchedule(ctx context.Context, uid uuid.UUID) (*entity.Schedule, error)
	// Adds or removes a weekday. Rejected changes return ErrTooManyWorkoutDays or ErrRestDayRequired
	ToggleDay(ctx context.Context, uid uuid.UUID, day time.Weekday, adding bool) (*entity.Schedule, error)
}

type ExercisesServiceI interface {
	CreateExercise(ctx context.Context, uid uuid.UUID, req *CreateExerciseRequest) (*entity.Exercise, error)
	GetUserExercises(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Exercise, error)
	// Replaces name, muscle group and description of user's own exercise
	UpdateExercise(ctx context.Context, exerciseID, uid uuid.UUID, req *CreateExerciseRequest) (*entity.Exercise, error)
	DeleteExercise(ctx context.Context, exerciseID, uid uuid.UUID) error
}

type RemindersServiceI interface {
	GetSettings(ctx context.Context, uid uuid.UUID) (*entity.ReminderSettings, error)
	UpdateSettings(ctx context.Context, uid uuid.UUID, req *UpdateRemindersRequest) (*entity.ReminderSettings, error)
	// Lists reminder instants for the coming week
	Upcoming(ctx context.Context, uid uuid.UUID) ([]time.Time, error)
}

type StatsCacheI interface {
	Get(uid uuid.UUID, day time.Time) (entity.WorkoutStats, bool)
	// Token to take before reading the history that stats are computed from
	Generation(uid uuid.UUID) uint64
	// Stores stats unless uid was invalidated after gen was taken
	Set(uid uuid.UUID, day time.Time, gen uint64, stats entity.WorkoutStats) bool
	Invalidate(uid uuid.UUID)
}

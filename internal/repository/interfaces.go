package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/fitstreak/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type WorkoutsRepositoryI interface {
	// Stores completed workout. UserID and Date are necessary, one per user per day
	Create(ctx context.Context, workout *entity.WorkoutCompletion) (uuid.UUID, error)
	// Lists the whole workout history of the user, newest first
	ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.WorkoutCompletion, error)
	// Lists workouts of the user for a period, bounds included
	ListByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.WorkoutCompletion, error)
}

type SchedulesRepositoryI interface {
	// Returns user's schedule, empty one if it was never saved
	Get(ctx context.Context, uid uuid.UUID) (*entity.Schedule, error)
	// Replaces user's schedule
	Save(ctx context.Context, schedule *entity.Schedule) error
}

type ExercisesRepositoryI interface {
	// Creates custom exercise. Name and UserID are necessary
	Create(ctx context.Context, exercise *entity.Exercise) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Exercise, error)
	// Lists exercises owned by user with uid. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Exercise, error)
	Update(ctx context.Context, exercise *entity.Exercise) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RemindersRepositoryI interface {
	// Returns user's reminder settings, defaults if they were never saved
	Get(ctx context.Context, uid uuid.UUID) (*entity.ReminderSettings, error)
	// Replaces user's reminder settings
	Save(ctx context.Context, settings *entity.ReminderSettings) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	// Appended as sslmode query param when set
	SSLMode string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connStr += "?sslmode=" + pgcfg.SSLMode
	}
	return connStr
}

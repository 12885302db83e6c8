package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fitstreak/internal/error_values"
	"github.com/limbo/fitstreak/pkg/entity"
)

const (
	codeUniqueViolation = "23505"
	codeFKViolation     = "23503"
)

type WorkoutsRepository struct {
	conn PgConnection
}

func NewWorkoutsRepo(conn PgConnection) *WorkoutsRepository {
	return &WorkoutsRepository{
		conn: conn,
	}
}

func (wr *WorkoutsRepository) Create(ctx context.Context, workout *entity.WorkoutCompletion) (uuid.UUID, error) {
	exercises := workout.Exercises
	if exercises == nil {
		exercises = []entity.ExerciseEntry{}
	}
	payload, err := sonic.ConfigDefault.MarshalToString(exercises)
	if err != nil {
		return uuid.Nil, errors.New("encoding exercises error: " + err.Error())
	}
	var id uuid.UUID
	row := wr.conn.QueryRow(
		ctx,
		`INSERT INTO workout_completions (user_id, workout_date, exercises, duration_minutes) VALUES ($1, $2, $3, $4) RETURNING id;`,
		workout.UserID,
		workout.Date,
		payload,
		workout.DurationMinutes,
	)
	if err = row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case codeUniqueViolation:
				return uuid.Nil, errorvalues.ErrWorkoutExists
			case codeFKViolation:
				return uuid.Nil, errorvalues.ErrUserNotFound
			}
		}
		return uuid.Nil, errors.New("creating workout error: " + err.Error())
	}
	return id, nil
}

func (wr *WorkoutsRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.WorkoutCompletion, error) {
	rows, err := wr.conn.Query(
		ctx,
		`SELECT id, user_id, workout_date, exercises, duration_minutes, created_at FROM workout_completions WHERE user_id = $1 ORDER BY workout_date DESC;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("getting workouts error: " + err.Error())
	}
	return scanWorkouts(rows)
}

func (wr *WorkoutsRepository) ListByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.WorkoutCompletion, error) {
	rows, err := wr.conn.Query(
		ctx,
		`SELECT id, user_id, workout_date, exercises, duration_minutes, created_at FROM workout_completions WHERE user_id = $1 AND workout_date >= $2 AND workout_date <= $3 ORDER BY workout_date DESC;`,
		uid,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting workouts for period error: " + err.Error())
	}
	return scanWorkouts(rows)
}

func scanWorkouts(rows pgx.Rows) ([]entity.WorkoutCompletion, error) {
	defer rows.Close()
	result := make([]entity.WorkoutCompletion, 0)
	for rows.Next() {
		var (
			w       entity.WorkoutCompletion
			payload []byte
		)
		err := rows.Scan(&w.ID, &w.UserID, &w.Date, &payload, &w.DurationMinutes, &w.CreatedAt)
		if err != nil {
			return nil, errors.New("workout row parsing error: " + err.Error())
		}
		w.Exercises = make([]entity.ExerciseEntry, 0)
		if len(payload) > 0 {
			if err = sonic.Unmarshal(payload, &w.Exercises); err != nil {
				return nil, errors.New("decoding exercises error: " + err.Error())
			}
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected workout rows error: " + err.Error())
	}
	return result, nil
}

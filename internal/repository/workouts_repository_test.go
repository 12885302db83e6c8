package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fitstreak/internal/error_values"
	"github.com/limbo/fitstreak/internal/repository"
	"github.com/limbo/fitstreak/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var workoutColumns = []string{"id", "user_id", "workout_date", "exercises", "duration_minutes", "created_at"}

func TestCreateWorkout(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewWorkoutsRepo(mock)
	query := regexp.QuoteMeta(`INSERT INTO workout_completions (user_id, workout_date, exercises, duration_minutes) VALUES ($1, $2, $3, $4) RETURNING id;`)
	workout := entity.WorkoutCompletion{
		UserID: uuid.New(),
		Date:   time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
		Exercises: []entity.ExerciseEntry{
			{Name: "squat", Completed: true},
			{Name: "plank", Completed: false},
		},
		DurationMinutes: 40,
	}
	payload := `[{"name":"squat","completed":true},{"name":"plank","completed":false}]`
	workoutID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		ID           uuid.UUID
		MockPrepFunc func()
	}{
		{
			Desc: "successful",
			ID:   workoutID,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(workout.UserID, workout.Date, payload, workout.DurationMinutes).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(workoutID))
			},
		},
		{
			Desc:  "day already completed",
			Error: errorvalues.ErrWorkoutExists,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(workout.UserID, workout.Date, payload, workout.DurationMinutes).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
		},
		{
			Desc:  "unknown user",
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(workout.UserID, workout.Date, payload, workout.DurationMinutes).
					WillReturnError(&pgconn.PgError{Code: "23503"})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating workout error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(workout.UserID, workout.Date, payload, workout.DurationMinutes).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			id, err := repo.Create(ctx, &workout)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.ID, id)
			}
		})
	}
}

func TestCreateWorkoutWithoutExercises(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewWorkoutsRepo(mock)
	workout := entity.WorkoutCompletion{
		UserID: uuid.New(),
		Date:   time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
	}
	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO workout_completions`)).
		WithArgs(workout.UserID, workout.Date, "[]", 0).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
	result, err := repo.Create(context.Background(), &workout)
	require.NoError(t, err)
	assert.Equal(t, id, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListWorkouts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewWorkoutsRepo(mock)
	uid := uuid.New()
	day := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	created := day.Add(19 * time.Hour)
	expected := []entity.WorkoutCompletion{
		{
			ID:              uuid.New(),
			UserID:          uid,
			Date:            day,
			Exercises:       []entity.ExerciseEntry{{Name: "squat", Completed: true}},
			DurationMinutes: 30,
			CreatedAt:       created,
		},
		{
			ID:        uuid.New(),
			UserID:    uid,
			Date:      day.AddDate(0, 0, -1),
			Exercises: []entity.ExerciseEntry{},
			CreatedAt: created.AddDate(0, 0, -1),
		},
	}
	rows := func() *pgxmock.Rows {
		return pgxmock.NewRows(workoutColumns).
			AddRow(expected[0].ID, uid, expected[0].Date, []byte(`[{"name":"squat","completed":true}]`), 30, expected[0].CreatedAt).
			AddRow(expected[1].ID, uid, expected[1].Date, []byte(`[]`), 0, expected[1].CreatedAt)
	}
	ctx := context.Background()

	t.Run("whole history", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, workout_date, exercises, duration_minutes, created_at FROM workout_completions WHERE user_id = $1 ORDER BY workout_date DESC;`)).
			WithArgs(uid).
			WillReturnRows(rows())
		result, err := repo.ListByUser(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, expected, result)
	})
	t.Run("date range", func(t *testing.T) {
		from, to := day.AddDate(0, 0, -7), day
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, workout_date, exercises, duration_minutes, created_at FROM workout_completions WHERE user_id = $1 AND workout_date >= $2 AND workout_date <= $3 ORDER BY workout_date DESC;`)).
			WithArgs(uid, from, to).
			WillReturnRows(rows())
		result, err := repo.ListByUserAndDateRange(ctx, uid, from, to)
		require.NoError(t, err)
		assert.Equal(t, expected, result)
	})
	t.Run("corrupted exercises", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM workout_completions WHERE user_id = $1 ORDER BY`)).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows(workoutColumns).AddRow(uuid.New(), uid, day, []byte(`{`), 0, created))
		_, err := repo.ListByUser(ctx, uid)
		assert.Error(t, err)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM workout_completions WHERE user_id = $1 ORDER BY`)).
			WithArgs(uid).
			WillReturnError(errors.New("db error"))
		_, err := repo.ListByUser(ctx, uid)
		assert.EqualError(t, err, "getting workouts error: db error")
	})
}

package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/fitstreak/internal/error_values"
	"github.com/limbo/fitstreak/internal/repository"
	"github.com/limbo/fitstreak/internal/service"
	"github.com/limbo/fitstreak/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) *pgxpool.Pool {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("fitstreak"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	cfg := &testPGConfig{connStr: connStr}
	if err = repository.Migrate(cfg, "../../migrations"); err != nil {
		t.Fatal(err)
	}

	pool, err := repository.Connect(ctx, cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func TestServicesIntegrational(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	now := time.Date(2025, time.March, 12, 18, 0, 0, 0, time.UTC)
	clock := service.WithNow(func() time.Time { return now })

	usersRepo := repository.NewUsersRepo(pool)
	workoutsRepo := repository.NewWorkoutsRepo(pool)
	schedulesRepo := repository.NewSchedulesRepo(pool)
	us := service.NewUserService(usersRepo)
	ws := service.NewWorkoutsService(workoutsRepo, nil, clock, service.WithTimezones(repository.NewRemindersRepo(pool)))
	ss := service.NewScheduleService(schedulesRepo, clock)

	username := "test_user"
	password := "test_password"
	var user *entity.User
	var err error

	t.Run("users", func(t *testing.T) {
		t.Run("registered user", func(t *testing.T) {
			user, err = us.Register(ctx, &service.RegisterRequest{
				Name:     username,
				Password: password,
			})
			require.NoError(t, err)
			assert.Equal(t, username, user.Name)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)))
		})
		t.Run("error registering already existed user", func(t *testing.T) {
			_, err = us.Register(ctx, &service.RegisterRequest{
				Name:     username,
				Password: password,
			})
			assert.ErrorIs(t, err, errorvalues.ErrUserExists)
		})
		t.Run("login", func(t *testing.T) {
			res, err := us.Login(ctx, username, password)
			assert.NoError(t, err)
			assert.Equal(t, *user, *res)
		})
		t.Run("error login with wrong password", func(t *testing.T) {
			_, err := us.Login(ctx, username, "wrong_password")
			assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
		})
		t.Run("not found by id", func(t *testing.T) {
			_, err := us.GetByID(ctx, uuid.New())
			assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
		})
	})
	require.NotNil(t, user)

	t.Run("workouts", func(t *testing.T) {
		for _, date := range []string{"2025-03-01", "2025-03-02", "2025-03-03", "2025-03-10", "2025-03-11", ""} {
			_, err := ws.CompleteWorkout(ctx, user.ID, &service.CompleteWorkoutRequest{
				Date:            date,
				DurationMinutes: 30,
				Exercises:       []entity.ExerciseEntry{{Name: "squat", Completed: true}},
			})
			require.NoError(t, err, date)
		}
		t.Run("second completion of a day", func(t *testing.T) {
			_, err := ws.CompleteWorkout(ctx, user.ID, &service.CompleteWorkoutRequest{Date: "2025-03-12"})
			assert.ErrorIs(t, err, errorvalues.ErrWorkoutExists)
		})
		t.Run("stats", func(t *testing.T) {
			stats, err := ws.GetStats(ctx, user.ID)
			require.NoError(t, err)
			assert.Equal(t, entity.WorkoutStats{
				TotalWorkouts:          6,
				CurrentStreak:          3,
				LongestStreak:          3,
				AverageWorkoutDuration: 30,
			}, *stats)
		})
		t.Run("history", func(t *testing.T) {
			history, err := ws.GetHistory(ctx, user.ID, now.AddDate(0, 0, -2), now)
			require.NoError(t, err)
			require.Len(t, history.Workouts, 3)
			assert.Equal(t, "2025-03-12", history.Workouts[0].Date.Format(time.DateOnly))
			assert.Equal(t, []entity.ExerciseEntry{{Name: "squat", Completed: true}}, history.Workouts[0].Exercises)
		})
	})

	t.Run("schedule", func(t *testing.T) {
		for _, day := range []time.Weekday{time.Monday, time.Wednesday, time.Friday} {
			_, err := ss.ToggleDay(ctx, user.ID, day, true)
			require.NoError(t, err)
		}
		_, err := ss.ToggleDay(ctx, user.ID, time.Thursday, true)
		assert.ErrorIs(t, err, errorvalues.ErrRestDayRequired)
		schedule, err := ss.GetSchedule(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, schedule.Days)
	})

	t.Run("account deletion", func(t *testing.T) {
		assert.ErrorIs(t, us.DeleteAccount(ctx, user.ID, "dasdasd"), errorvalues.ErrWrongCredentials)
		assert.NoError(t, us.DeleteAccount(ctx, user.ID, password))
		history, err := ws.GetHistory(ctx, user.ID, now.AddDate(-1, 0, 0), now)
		require.NoError(t, err)
		assert.Empty(t, history.Workouts)
		assert.ErrorIs(t, us.DeleteAccount(ctx, user.ID, password), errorvalues.ErrUserNotFound)
	})
}

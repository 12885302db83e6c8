package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/limbo/fitstreak/internal/repository"
	"github.com/limbo/fitstreak/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderSettings(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewRemindersRepo(mock)
	get := regexp.QuoteMeta(`SELECT enabled, hour, minute, timezone FROM reminder_settings WHERE user_id = $1;`)
	save := regexp.QuoteMeta(`INSERT INTO reminder_settings (user_id, enabled, hour, minute, timezone) VALUES ($1, $2, $3, $4, $5)`)
	uid := uuid.New()
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		mock.ExpectQuery(get).WithArgs(uid).WillReturnError(pgx.ErrNoRows)
		settings, err := repo.Get(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, &entity.ReminderSettings{
			UserID:   uid,
			Hour:     repository.DefaultReminderHour,
			Minute:   repository.DefaultReminderMinute,
			Timezone: repository.DefaultReminderTimezone,
		}, settings)
	})
	t.Run("saved", func(t *testing.T) {
		mock.ExpectQuery(get).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows([]string{"enabled", "hour", "minute", "timezone"}).AddRow(true, 7, 30, "Europe/Berlin"))
		settings, err := repo.Get(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, &entity.ReminderSettings{
			UserID:   uid,
			Enabled:  true,
			Hour:     7,
			Minute:   30,
			Timezone: "Europe/Berlin",
		}, settings)
	})
	t.Run("save", func(t *testing.T) {
		settings := &entity.ReminderSettings{UserID: uid, Enabled: true, Hour: 6, Minute: 15, Timezone: "UTC"}
		mock.ExpectExec(save).WithArgs(uid, true, 6, 15, "UTC").WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.Save(ctx, settings))

		mock.ExpectExec(save).WithArgs(uid, true, 6, 15, "UTC").WillReturnError(errors.New("db error"))
		assert.EqualError(t, repo.Save(ctx, settings), "saving reminder settings error: db error")
	})
}

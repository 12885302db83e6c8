package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fitstreak/internal/error_values"
	"github.com/limbo/fitstreak/pkg/entity"
)

// Defaults for users who never touched their reminder settings
const (
	DefaultReminderHour     = 18
	DefaultReminderMinute   = 0
	DefaultReminderTimezone = "UTC"
)

type RemindersRepository struct {
	conn PgConnection
}

func NewRemindersRepo(conn PgConnection) *RemindersRepository {
	return &RemindersRepository{
		conn: conn,
	}
}

func (rr *RemindersRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.ReminderSettings, error) {
	settings := entity.ReminderSettings{UserID: uid}
	row := rr.conn.QueryRow(ctx, `SELECT enabled, hour, minute, timezone FROM reminder_settings WHERE user_id = $1;`, uid)
	if err := row.Scan(&settings.Enabled, &settings.Hour, &settings.Minute, &settings.Timezone); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.ReminderSettings{
				UserID:   uid,
				Enabled:  false,
				Hour:     DefaultReminderHour,
				Minute:   DefaultReminderMinute,
				Timezone: DefaultReminderTimezone,
			}, nil
		}
		return nil, errors.New("getting reminder settings error: " + err.Error())
	}
	return &settings, nil
}

func (rr *RemindersRepository) Save(ctx context.Context, settings *entity.ReminderSettings) error {
	_, err := rr.conn.Exec(
		ctx,
		`INSERT INTO reminder_settings (user_id, enabled, hour, minute, timezone) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET enabled = EXCLUDED.enabled, hour = EXCLUDED.hour, minute = EXCLUDED.minute, timezone = EXCLUDED.timezone;`,
		settings.UserID,
		settings.Enabled,
		settings.Hour,
		settings.Minute,
		settings.Timezone,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == codeFKViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("saving reminder settings error: " + err.Error())
	}
	return nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fitstreak/internal/error_values"
	"github.com/limbo/fitstreak/pkg/entity"
)

type SchedulesRepository struct {
	conn PgConnection
}

func NewSchedulesRepo(conn PgConnection) *SchedulesRepository {
	return &SchedulesRepository{
		conn: conn,
	}
}

func (sr *SchedulesRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.Schedule, error) {
	var (
		days      []int16
		updatedAt time.Time
	)
	row := sr.conn.QueryRow(ctx, `SELECT days, updated_at FROM workout_schedules WHERE user_id = $1;`, uid)
	if err := row.Scan(&days, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Schedule{UserID: uid, Days: []time.Weekday{}}, nil
		}
		return nil, errors.New("getting schedule error: " + err.Error())
	}
	schedule := &entity.Schedule{
		UserID:    uid,
		Days:      make([]time.Weekday, 0, len(days)),
		UpdatedAt: updatedAt,
	}
	for _, d := range days {
		schedule.Days = append(schedule.Days, time.Weekday(d))
	}
	return schedule, nil
}

func (sr *SchedulesRepository) Save(ctx context.Context, schedule *entity.Schedule) error {
	days := make([]int16, 0, len(schedule.Days))
	for _, d := range schedule.Days {
		days = append(days, int16(d))
	}
	_, err := sr.conn.Exec(
		ctx,
		`INSERT INTO workout_schedules (user_id, days) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET days = EXCLUDED.days, updated_at = NOW();`,
		schedule.UserID,
		days,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == codeFKViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("saving schedule error: " + err.Error())
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fitstreak/internal/error_values"
	"github.com/limbo/fitstreak/internal/repository"
	"github.com/limbo/fitstreak/internal/streak"
	"github.com/limbo/fitstreak/pkg/entity"
)

type ScheduleService struct {
	repo repository.SchedulesRepositoryI
	opts options
}

func NewScheduleService(schedulesRepo repository.SchedulesRepositoryI, opts ...Option) *ScheduleService {
	if schedulesRepo == nil {
		log.Fatal("provided nil schedulesRepo")
	}
	return &ScheduleService{
		repo: schedulesRepo,
		opts: buildOptions(opts),
	}
}

func (ss *ScheduleService) GetSchedule(ctx context.Context, uid uuid.UUID) (*entity.Schedule, error) {
	schedule, err := ss.repo.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("schedules repository error: " + err.Error())
	}
	return schedule, nil
}

func (ss *ScheduleService) ToggleDay(ctx context.Context, uid uuid.UUID, day time.Weekday, adding bool) (*entity.Schedule, error) {
	if day < time.Sunday || day > time.Saturday {
		return nil, errorvalues.ErrInvalidWeekday
	}
	schedule, err := ss.repo.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("schedules repository error: " + err.Error())
	}
	verdict := streak.ValidateToggle(schedule.Days, day, adding)
	if !verdict.Valid {
		if ss.opts.metrics != nil {
			ss.opts.metrics.CounterScheduleRejected.WithLabelValues(verdict.Reason).Inc()
		}
		return nil, verdict.Err()
	}
	updated := &entity.Schedule{
		UserID:    uid,
		Days:      streak.ApplyToggle(schedule.Days, day, adding),
		UpdatedAt: ss.opts.now(),
	}
	if err = ss.repo.Save(ctx, updated); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("schedules repository error: " + err.Error())
	}
	return updated, nil
}

package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fitstreak/internal/error_values"
	"github.com/limbo/fitstreak/internal/reminders"
	"github.com/limbo/fitstreak/internal/repository"
	"github.com/limbo/fitstreak/internal/streak"
	"github.com/limbo/fitstreak/pkg/entity"
)

type RemindersService struct {
	remindersRepo repository.RemindersRepositoryI
	schedulesRepo repository.SchedulesRepositoryI
	workoutsRepo  repository.WorkoutsRepositoryI
	opts          options
}

func NewRemindersService(
	remindersRepo repository.RemindersRepositoryI,
	schedulesRepo repository.SchedulesRepositoryI,
	workoutsRepo repository.WorkoutsRepositoryI,
	opts ...Option,
) *RemindersService {
	if remindersRepo == nil || schedulesRepo == nil || workoutsRepo == nil {
		log.Fatal("on reminders service provided nil repos")
	}
	return &RemindersService{
		remindersRepo: remindersRepo,
		schedulesRepo: schedulesRepo,
		workoutsRepo:  workoutsRepo,
		opts:          buildOptions(opts),
	}
}

func (rs *RemindersService) GetSettings(ctx context.Context, uid uuid.UUID) (*entity.ReminderSettings, error) {
	settings, err := rs.remindersRepo.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("reminders repository error: " + err.Error())
	}
	return settings, nil
}

func (rs *RemindersService) UpdateSettings(ctx context.Context, uid uuid.UUID, req *UpdateRemindersRequest) (*entity.ReminderSettings, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if _, err := time.LoadLocation(req.Timezone); err != nil {
		return nil, errors.Join(errorvalues.ErrInvalidTimezone, err)
	}
	settings := &entity.ReminderSettings{
		UserID:   uid,
		Enabled:  req.Enabled,
		Hour:     req.Hour,
		Minute:   req.Minute,
		Timezone: req.Timezone,
	}
	if err := rs.remindersRepo.Save(ctx, settings); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("reminders repository error: " + err.Error())
	}
	return settings, nil
}

func (rs *RemindersService) Upcoming(ctx context.Context, uid uuid.UUID) ([]time.Time, error) {
	settings, err := rs.remindersRepo.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("reminders repository error: " + err.Error())
	}
	if !settings.Enabled {
		return []time.Time{}, nil
	}
	// same day boundary as workouts service WithTimezones
	loc := userLocation(settings.Timezone)
	schedule, err := rs.schedulesRepo.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("schedules repository error: " + err.Error())
	}
	now := rs.opts.now()
	today := streak.DayOf(now.In(loc))
	done, err := rs.workoutsRepo.ListByUserAndDateRange(ctx, uid, today, today)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return reminders.Upcoming(reminders.Plan{
		Enabled:        settings.Enabled,
		Days:           schedule.Days,
		Hour:           settings.Hour,
		Minute:         settings.Minute,
		Location:       loc,
		CompletedToday: len(done) > 0,
	}, now), nil
}

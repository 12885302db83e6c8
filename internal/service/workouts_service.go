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

// DefaultHistoryDays is the length of the history period when its start isn't given
const DefaultHistoryDays = 30

type WorkoutsService struct {
	repo  repository.WorkoutsRepositoryI
	cache StatsCacheI
	opts  options
}

// NewWorkoutsService creates the service. cache may be nil, then stats are computed on every call
func NewWorkoutsService(workoutsRepo repository.WorkoutsRepositoryI, cache StatsCacheI, opts ...Option) *WorkoutsService {
	if workoutsRepo == nil {
		log.Fatal("provided nil workoutsRepo")
	}
	return &WorkoutsService{
		repo:  workoutsRepo,
		cache: cache,
		opts:  buildOptions(opts),
	}
}

func (ws *WorkoutsService) CompleteWorkout(ctx context.Context, uid uuid.UUID, req *CompleteWorkoutRequest) (*entity.WorkoutCompletion, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	today, err := ws.opts.today(ctx, uid)
	if err != nil {
		return nil, err
	}
	day := today
	if req.Date != "" {
		parsed, err := streak.ParseDay(req.Date)
		if err != nil {
			return nil, errors.Join(errorvalues.ErrInvalidDate, err)
		}
		day = parsed
	}
	if day.After(today) {
		return nil, errorvalues.ErrWorkoutDateInFuture
	}
	workout := entity.WorkoutCompletion{
		UserID:          uid,
		Date:            day,
		Exercises:       req.Exercises,
		DurationMinutes: req.DurationMinutes,
	}
	if workout.Exercises == nil {
		workout.Exercises = []entity.ExerciseEntry{}
	}
	id, err := ws.repo.Create(ctx, &workout)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutExists) || errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	workout.ID = id
	if ws.cache != nil {
		ws.cache.Invalidate(uid)
	}
	if ws.opts.metrics != nil {
		ws.opts.metrics.CounterWorkoutsCompleted.Inc()
	}
	return &workout, nil
}

func (ws *WorkoutsService) GetHistory(ctx context.Context, uid uuid.UUID, from, to time.Time) (*History, error) {
	if to.IsZero() {
		today, err := ws.opts.today(ctx, uid)
		if err != nil {
			return nil, err
		}
		to = today
	}
	to = streak.DayOf(to)
	if from.IsZero() {
		from = to.AddDate(0, 0, -DefaultHistoryDays)
	}
	from = streak.DayOf(from)
	if from.After(to) {
		return nil, errors.Join(errorvalues.ErrInvalidDate, errors.New("period start is after its end"))
	}
	workouts, err := ws.repo.ListByUserAndDateRange(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return &History{From: from, To: to, Workouts: workouts}, nil
}

func (ws *WorkoutsService) GetStats(ctx context.Context, uid uuid.UUID) (*entity.WorkoutStats, error) {
	today, err := ws.opts.today(ctx, uid)
	if err != nil {
		return nil, err
	}
	var gen uint64
	if ws.cache != nil {
		if stats, ok := ws.cache.Get(uid, today); ok {
			ws.countCache("hit")
			return &stats, nil
		}
		ws.countCache("miss")
		// taken before the read, a completion after this point makes Set a no-op
		gen = ws.cache.Generation(uid)
	}
	history, err := ws.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	stats := streak.Summarize(history, today)
	if ws.cache != nil {
		ws.cache.Set(uid, today, gen, stats)
	}
	return &stats, nil
}

func (ws *WorkoutsService) countCache(result string) {
	if ws.opts.metrics != nil {
		ws.opts.metrics.CounterStatsCache.WithLabelValues(result).Inc()
	}
}

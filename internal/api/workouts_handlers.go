package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fitstreak/internal/error_values"
	"github.com/limbo/fitstreak/internal/service"
	"github.com/limbo/fitstreak/internal/streak"
	"github.com/limbo/fitstreak/pkg/entity"
	"github.com/limbo/fitstreak/pkg/httputil"
)

type CompleteWorkoutRequest struct {
	Date            string                 `json:"date"`
	Exercises       []entity.ExerciseEntry `json:"exercises"`
	DurationMinutes int                    `json:"duration_minutes"`
}

type WorkoutsResponse struct {
	From     string                     `json:"from"`
	To       string                     `json:"to"`
	Workouts []entity.WorkoutCompletion `json:"workouts"`
}

type StatsRequest struct {
	UserID string `json:"user_id"`
}

type ToggleDayRequest struct {
	Day    string `json:"day"`
	Adding bool   `json:"adding"`
}

type ScheduleResponse struct {
	Days      []string  `json:"days"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReminderSettingsRequest struct {
	Enabled  bool   `json:"enabled"`
	Hour     int    `json:"hour"`
	Minute   int    `json:"minute"`
	Timezone string `json:"timezone"`
}

type UpcomingRemindersResponse struct {
	Reminders []time.Time `json:"reminders"`
}

func (s *Server) CompleteWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("complete workout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CompleteWorkoutRequest
	if err = httputil.ReadJSON(r, &req); err != nil {
		logger.Error("complete workout error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	workout, err := s.workoutsService.CompleteWorkout(ctx, uid, &service.CompleteWorkoutRequest{
		Date:            req.Date,
		Exercises:       req.Exercises,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation), errors.Is(err, errorvalues.ErrInvalidDate):
			logger.Error("complete workout error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout fields", err)
		case errors.Is(err, errorvalues.ErrWorkoutDateInFuture):
			logger.Error("complete workout error: date in future")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "workout can't be completed in the future", nil)
		case errors.Is(err, errorvalues.ErrWorkoutExists):
			logger.Error("complete workout error: day already completed")
			httputil.WriteErrorResponse(w, http.StatusConflict, "workout for this day already completed", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("complete workout error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("complete workout error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while completing workout", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, workout)
	logger.Info("workout completed", slog.String("date", streak.FormatDay(workout.Date)))
}

// GetWorkouts lists completions between from and to query params (YYYY-MM-DD).
// Missing bounds are resolved by the service, the last 30 days by default
func (s *Server) GetWorkouts(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get workouts error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var from, to time.Time
	if v := r.URL.Query().Get("to"); v != "" {
		if to, err = streak.ParseDay(v); err != nil {
			logger.Error("get workouts error: invalid period end")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid 'to' date", err)
			return
		}
	}
	if v := r.URL.Query().Get("from"); v != "" {
		if from, err = streak.ParseDay(v); err != nil {
			logger.Error("get workouts error: invalid period start")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid 'from' date", err)
			return
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	history, err := s.workoutsService.GetHistory(ctx, uid, from, to)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidDate) {
			logger.Error("get workouts error: invalid period")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid period", err)
			return
		}
		logger.Error("getting workouts error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting workouts", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, WorkoutsResponse{
		From:     streak.FormatDay(history.From),
		To:       streak.FormatDay(history.To),
		Workouts: history.Workouts,
	})
	logger.Info("workouts provided")
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	s.writeStats(w, r, uid)
}

// GetUserStats answers {"user_id": ...} with the statistics of that user. Only own statistics are readable
func (s *Server) GetUserStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req StatsRequest
	if err = httputil.ReadJSON(r, &req); err != nil {
		logger.Error("get stats error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	requested, err := uuid.Parse(req.UserID)
	if err != nil {
		logger.Error("get stats error: invalid user_id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "user_id must be a valid uuid", nil)
		return
	}
	if requested != uid {
		logger.Error("get stats error: foreign user requested", slog.String("requested", requested.String()))
		httputil.WriteErrorResponse(w, http.StatusForbidden, "statistics of another user are not available", nil)
		return
	}
	s.writeStats(w, r, uid)
}

func (s *Server) writeStats(w http.ResponseWriter, r *http.Request, uid uuid.UUID) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	stats, err := s.workoutsService.GetStats(ctx, uid)
	if err != nil {
		logger.Error("getting stats error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while computing statistics", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("stats provided")
}

func (s *Server) GetSchedule(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get schedule error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	schedule, err := s.scheduleService.GetSchedule(ctx, uid)
	if err != nil {
		logger.Error("getting schedule error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting schedule", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, toScheduleResponse(schedule))
}

func (s *Server) ToggleScheduleDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("toggle schedule day error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ToggleDayRequest
	if err = httputil.ReadJSON(r, &req); err != nil {
		logger.Error("toggle schedule day error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	day, err := streak.ParseWeekday(req.Day)
	if err != nil {
		logger.Error("toggle schedule day error: invalid weekday", slog.String("day", req.Day))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid weekday", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	schedule, err := s.scheduleService.ToggleDay(ctx, uid, day, req.Adding)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrTooManyWorkoutDays), errors.Is(err, errorvalues.ErrRestDayRequired):
			logger.Info("schedule change rejected", slog.String("reason", err.Error()))
			httputil.WriteJSONResponse(w, http.StatusUnprocessableEntity, streak.Verdict{Valid: false, Reason: err.Error()})
		case errors.Is(err, errorvalues.ErrInvalidWeekday):
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid weekday", nil)
		default:
			logger.Error("toggle schedule day error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating schedule", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, toScheduleResponse(schedule))
	logger.Info("schedule updated")
}

func (s *Server) GetReminderSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get reminder settings error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	settings, err := s.remindersService.GetSettings(ctx, uid)
	if err != nil {
		logger.Error("getting reminder settings error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting reminder settings", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
}

func (s *Server) UpdateReminderSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update reminder settings error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ReminderSettingsRequest
	if err = httputil.ReadJSON(r, &req); err != nil {
		logger.Error("update reminder settings error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	settings, err := s.remindersService.UpdateSettings(ctx, uid, &service.UpdateRemindersRequest{
		Enabled:  req.Enabled,
		Hour:     req.Hour,
		Minute:   req.Minute,
		Timezone: req.Timezone,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation), errors.Is(err, errorvalues.ErrInvalidTimezone):
			logger.Error("update reminder settings error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid reminder settings", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("update reminder settings error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving reminder settings", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
	logger.Info("reminder settings updated")
}

func (s *Server) GetUpcomingReminders(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get upcoming reminders error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	upcoming, err := s.remindersService.Upcoming(ctx, uid)
	if err != nil {
		logger.Error("planning reminders error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while planning reminders", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, UpcomingRemindersResponse{Reminders: upcoming})
}

func toScheduleResponse(schedule *entity.Schedule) ScheduleResponse {
	days := make([]string, 0, len(schedule.Days))
	for _, d := range schedule.Days {
		days = append(days, strings.ToLower(d.String()))
	}
	return ScheduleResponse{
		Days:      days,
		UpdatedAt: schedule.UpdatedAt,
	}
}

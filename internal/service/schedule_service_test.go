package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/fitstreak/internal/error_values"
	repomocks "github.com/limbo/fitstreak/internal/repository/mocks"
	"github.com/limbo/fitstreak/internal/service"
	"github.com/limbo/fitstreak/internal/streak"
	"github.com/limbo/fitstreak/pkg/entity"
	"github.com/limbo/fitstreak/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockSchedulesRepositoryI(ctrl)
	m := metrics.NewTestManager()
	ss := service.NewScheduleService(repo, fixedClock(), service.WithMetrics(m))
	uid := uuid.New()
	saved := func(days ...time.Weekday) *entity.Schedule {
		return &entity.Schedule{UserID: uid, Days: days}
	}

	testCases := []struct {
		Desc         string
		Day          time.Weekday
		Adding       bool
		Error        error
		Result       []time.Weekday
		MockPrepFunc func()
	}{
		{
			Desc:   "first day",
			Day:    time.Monday,
			Adding: true,
			Result: []time.Weekday{time.Monday},
			MockPrepFunc: func() {
				repo.EXPECT().Get(gomock.Any(), uid).Return(saved(), nil)
				repo.EXPECT().Save(gomock.Any(), &entity.Schedule{
					UserID:    uid,
					Days:      []time.Weekday{time.Monday},
					UpdatedAt: testNow,
				}).Return(nil)
			},
		},
		{
			Desc:   "day between selected ones",
			Day:    time.Wednesday,
			Adding: true,
			Result: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
			MockPrepFunc: func() {
				repo.EXPECT().Get(gomock.Any(), uid).Return(saved(time.Monday, time.Friday), nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			Desc:   "neighbour of selected day",
			Day:    time.Tuesday,
			Adding: true,
			Error:  errorvalues.ErrRestDayRequired,
			MockPrepFunc: func() {
				repo.EXPECT().Get(gomock.Any(), uid).Return(saved(time.Monday), nil)
			},
		},
		{
			Desc:   "fifth day",
			Day:    time.Friday,
			Adding: true,
			Error:  errorvalues.ErrTooManyWorkoutDays,
			MockPrepFunc: func() {
				repo.EXPECT().Get(gomock.Any(), uid).Return(saved(time.Sunday, time.Tuesday, time.Thursday, time.Saturday), nil)
			},
		},
		{
			Desc:   "removing is always allowed",
			Day:    time.Tuesday,
			Adding: false,
			Result: []time.Weekday{time.Sunday, time.Thursday, time.Saturday},
			MockPrepFunc: func() {
				repo.EXPECT().Get(gomock.Any(), uid).Return(saved(time.Sunday, time.Tuesday, time.Thursday, time.Saturday), nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			Desc:         "out of range weekday",
			Day:          time.Weekday(9),
			Adding:       true,
			Error:        errorvalues.ErrInvalidWeekday,
			MockPrepFunc: func() {},
		},
		{
			Desc:   "repository failure",
			Day:    time.Monday,
			Adding: true,
			Error:  errors.New("schedules repository error: db error"),
			MockPrepFunc: func() {
				repo.EXPECT().Get(gomock.Any(), uid).Return(nil, errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			schedule, err := ss.ToggleDay(context.Background(), uid, tc.Day, tc.Adding)
			if tc.Error != nil {
				if errors.Is(tc.Error, errorvalues.ErrRestDayRequired) ||
					errors.Is(tc.Error, errorvalues.ErrTooManyWorkoutDays) ||
					errors.Is(tc.Error, errorvalues.ErrInvalidWeekday) {
					assert.ErrorIs(t, err, tc.Error)
				} else {
					assert.EqualError(t, err, tc.Error.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Result, schedule.Days)
		})
	}
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterScheduleRejected.WithLabelValues(streak.ReasonRestDayRequired)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterScheduleRejected.WithLabelValues(streak.ReasonTooManyDays)))
}

func TestGetSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockSchedulesRepositoryI(ctrl)
	ss := service.NewScheduleService(repo)
	uid := uuid.New()
	schedule := &entity.Schedule{UserID: uid, Days: []time.Weekday{time.Tuesday, time.Saturday}}

	repo.EXPECT().Get(gomock.Any(), uid).Return(schedule, nil)
	result, err := ss.GetSchedule(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, schedule, result)
}

package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/fitstreak/internal/repository"
	"github.com/limbo/fitstreak/internal/streak"
	"github.com/limbo/fitstreak/pkg/metrics"
)

type options struct {
	now       func() time.Time
	metrics   *metrics.Manager
	timezones repository.RemindersRepositoryI
}

type Option func(*options)

// WithNow replaces the clock. Day boundaries are taken from the returned time
func WithNow(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func WithMetrics(m *metrics.Manager) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithTimezones makes "today" the calendar day in the timezone from user's
// reminder settings. Without it days are counted in UTC.
func WithTimezones(repo repository.RemindersRepositoryI) Option {
	return func(o *options) {
		o.timezones = repo
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// today is the current calendar day of the user
func (o options) today(ctx context.Context, uid uuid.UUID) (time.Time, error) {
	loc := time.UTC
	if o.timezones != nil {
		settings, err := o.timezones.Get(ctx, uid)
		if err != nil {
			return time.Time{}, errors.New("reminders repository error: " + err.Error())
		}
		loc = userLocation(settings.Timezone)
	}
	return streak.DayOf(o.now().In(loc)), nil
}

// userLocation falls back to UTC for names the tz database doesn't know
func userLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("unknown user timezone, using UTC", slog.String("timezone", name), slog.String("error", err.Error()))
		return time.UTC
	}
	return loc
}

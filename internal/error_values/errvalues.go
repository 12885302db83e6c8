package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrWrongOwner       = errors.New("resource belongs to another user")
	ErrValidation       = errors.New("validation error")

	ErrWorkoutExists       = errors.New("workout for this day already completed")
	ErrInvalidDate         = errors.New("invalid date")
	ErrWorkoutDateInFuture = errors.New("workout can't be completed in the future")

	ErrTooManyWorkoutDays = errors.New("maximum workout days exceeded")
	ErrRestDayRequired    = errors.New("rest day required between workouts")
	ErrInvalidWeekday     = errors.New("invalid weekday")

	ErrExerciseExists   = errors.New("exercise with such name already exists")
	ErrExerciseNotFound = errors.New("exercise doesn't exist")

	ErrInvalidTimezone = errors.New("invalid timezone")
)

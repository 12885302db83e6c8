package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fitstreak/internal/error_values"
	"github.com/limbo/fitstreak/internal/repository"
	"github.com/limbo/fitstreak/pkg/entity"
)

type ExercisesService struct {
	repo repository.ExercisesRepositoryI
}

func NewExercisesService(exercisesRepo repository.ExercisesRepositoryI) *ExercisesService {
	if exercisesRepo == nil {
		log.Fatal("provided nil exercisesRepo")
	}
	return &ExercisesService{
		repo: exercisesRepo,
	}
}

func (es *ExercisesService) CreateExercise(ctx context.Context, uid uuid.UUID, req *CreateExerciseRequest) (*entity.Exercise, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	e := entity.Exercise{
		UserID:      uid,
		Name:        req.Name,
		MuscleGroup: req.MuscleGroup,
		Description: req.Description,
	}
	id, err := es.repo.Create(ctx, &e)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) || errors.Is(err, errorvalues.ErrExerciseExists) {
			return nil, err
		}
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	exercise, err := es.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return nil, err
		}
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return exercise, nil
}

func (es *ExercisesService) GetUserExercises(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Exercise, error) {
	exercises, err := es.repo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return exercises, nil
}

func (es *ExercisesService) UpdateExercise(ctx context.Context, exerciseID, uid uuid.UUID, req *CreateExerciseRequest) (*entity.Exercise, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	exercise, err := es.repo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return nil, err
		}
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	if exercise.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	exercise.Name = req.Name
	exercise.MuscleGroup = req.MuscleGroup
	exercise.Description = req.Description
	if err = es.repo.Update(ctx, exercise); err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) || errors.Is(err, errorvalues.ErrExerciseExists) {
			return nil, err
		}
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	updated, err := es.repo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return nil, err
		}
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return updated, nil
}

func (es *ExercisesService) DeleteExercise(ctx context.Context, exerciseID, uid uuid.UUID) error {
	exercise, err := es.repo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return err
		}
		return errors.New("exercises repository error: " + err.Error())
	}
	if exercise.UserID != uid {
		return errorvalues.ErrWrongOwner
	}
	if err = es.repo.Delete(ctx, exerciseID); err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return err
		}
		return errors.New("exercises repository error: " + err.Error())
	}
	return nil
}

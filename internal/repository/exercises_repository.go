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

type ExercisesRepository struct {
	conn PgConnection
}

func NewExercisesRepo(conn PgConnection) *ExercisesRepository {
	return &ExercisesRepository{
		conn: conn,
	}
}

func (er *ExercisesRepository) Create(ctx context.Context, exercise *entity.Exercise) (uuid.UUID, error) {
	var id uuid.UUID
	row := er.conn.QueryRow(ctx, `INSERT INTO exercises (user_id, name, muscle_group, description) VALUES ($1, $2, $3, $4) RETURNING id;`,
		exercise.UserID,
		exercise.Name,
		exercise.MuscleGroup,
		exercise.Description,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case codeUniqueViolation:
				return uuid.Nil, errorvalues.ErrExerciseExists
			case codeFKViolation:
				return uuid.Nil, errorvalues.ErrUserNotFound
			}
		}
		return uuid.Nil, errors.New("creating exercise db error: " + err.Error())
	}
	return id, nil
}

func (er *ExercisesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Exercise, error) {
	exercise := entity.Exercise{ID: id}
	row := er.conn.QueryRow(ctx, `SELECT user_id, name, muscle_group, description, created_at, updated_at FROM exercises WHERE id = $1;`, id)
	err := row.Scan(&exercise.UserID, &exercise.Name, &exercise.MuscleGroup, &exercise.Description, &exercise.CreatedAt, &exercise.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrExerciseNotFound
		}
		return nil, errors.New("getting exercise by id error: " + err.Error())
	}
	return &exercise, nil
}

func (er *ExercisesRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Exercise, error) {
	exercises := make([]*entity.Exercise, 0)
	rows, err := er.conn.Query(ctx, `SELECT id, user_id, name, muscle_group, description, created_at, updated_at
		FROM exercises WHERE user_id = $1 ORDER BY name LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting exercises by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		e := entity.Exercise{}
		err = rows.Scan(&e.ID, &e.UserID, &e.Name, &e.MuscleGroup, &e.Description, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling exercise error: " + err.Error())
		}
		exercises = append(exercises, &e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return exercises, nil
}

func (er *ExercisesRepository) Update(ctx context.Context, exercise *entity.Exercise) error {
	ct, err := er.conn.Exec(ctx, `UPDATE exercises SET name = $1, muscle_group = $2, description = $3, updated_at = NOW() WHERE id = $4;`,
		exercise.Name, exercise.MuscleGroup, exercise.Description, exercise.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
			return errorvalues.ErrExerciseExists
		}
		return errors.New("error updating exercise: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrExerciseNotFound
	}
	return nil
}

func (er *ExercisesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := er.conn.Exec(ctx, `DELETE FROM exercises WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting exercise: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrExerciseNotFound
	}
	return nil
}

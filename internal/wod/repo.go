package wod

import (
	"context"
	"errors"
	"time"

	"github.com/wodboard/wodboard/internal/telemetry/tracing"
	"github.com/wodboard/wodboard/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrWorkoutExists   = errors.New("workout for that date already exists")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.wod.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout
				(date, description_text, discipline_override, is_team, team_size, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		pkg.DateOnly(workout.Date), workout.DescriptionText, workout.DisciplineOverride,
		workout.IsTeam, workout.TeamSize, workout.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrWorkoutExists
		}
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("workout.id", id))

	workout.ID = id
	workout.Date = pkg.DateOnly(workout.Date)
	return &workout, nil
}

func (r *Repo) Update(ctx context.Context, workout *Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.wod.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", workout.ID))

	now := time.Now()
	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout
			SET description_text = $1, discipline_override = $2, is_team = $3, team_size = $4, updated_at = $5
			WHERE id = $6;`,
		workout.DescriptionText, workout.DisciplineOverride,
		workout.IsTeam, workout.TeamSize, now, workout.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}

	workout.UpdatedAt = &now
	return nil
}

func (r *Repo) GetByDate(ctx context.Context, date time.Time) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.wod.getbydate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", pkg.DateOnly(date).Format(time.DateOnly)))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, date, description_text, discipline_override, is_team, team_size, created_at, updated_at
			FROM workout
			WHERE date = $1;`,
		pkg.DateOnly(date),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	workouts, err := r.rows2workouts(rows)
	if err != nil {
		return nil, err
	}

	if len(workouts) != 1 {
		return nil, ErrWorkoutNotFound
	}

	return &workouts[0], nil
}

// ListRange returns the workouts published between from and to, inclusive.
func (r *Repo) ListRange(ctx context.Context, from, to time.Time) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.wod.listrange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("from", pkg.DateOnly(from).Format(time.DateOnly)))
	span.SetAttributes(attribute.String("to", pkg.DateOnly(to).Format(time.DateOnly)))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, date, description_text, discipline_override, is_team, team_size, created_at, updated_at
			FROM workout
			WHERE date >= $1 AND date <= $2
			ORDER BY date;`,
		pkg.DateOnly(from), pkg.DateOnly(to),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.rows2workouts(rows)
}

func (r *Repo) rows2workouts(rows pgx.Rows) ([]Workout, error) {
	var workouts []Workout
	for rows.Next() {
		var w Workout
		var overrideStr *string
		if err := rows.Scan(
			&w.ID, &w.Date, &w.DescriptionText, &overrideStr,
			&w.IsTeam, &w.TeamSize, &w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, err
		}

		if overrideStr != nil {
			override := Discipline(*overrideStr)
			w.DisciplineOverride = &override
		}

		w.Date = pkg.DateOnly(w.Date)
		workouts = append(workouts, w)
	}

	if workouts == nil {
		workouts = make([]Workout, 0)
	}

	return workouts, nil
}

package scores

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wodboard/wodboard/internal/telemetry/tracing"
	"github.com/wodboard/wodboard/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrScoreNotFound = errors.New("score not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, score Score) (_ *Score, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.scores.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO score
				(athlete_id, date, is_rx, team_id, guest_partner_names,
				 elapsed_seconds, rounds, reps, submitted_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id;`,
		score.AthleteID, pkg.DateOnly(score.Date), score.IsRx, score.TeamID, score.GuestPartnerNames,
		score.ElapsedSeconds, score.Rounds, score.Reps, score.SubmittedAt,
	)
	if err != nil {
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
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("score.id", id))

	score.ID = id
	score.Date = pkg.DateOnly(score.Date)
	return &score, nil
}

func (r *Repo) Update(ctx context.Context, score *Score) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.scores.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", score.ID))

	now := time.Now()
	tag, err := r.db.Exec(
		ctx,
		`UPDATE score SET
				is_rx = $1, guest_partner_names = $2, elapsed_seconds = $3,
				rounds = $4, reps = $5, last_edited_at = $6
			WHERE id = $7;`,
		score.IsRx, score.GuestPartnerNames, score.ElapsedSeconds,
		score.Rounds, score.Reps, now, score.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrScoreNotFound
	}

	score.LastEditedAt = &now
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.scores.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM score WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrScoreNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Score, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.scores.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, athlete_id, date, is_rx, team_id, guest_partner_names,
				elapsed_seconds, rounds, reps, submitted_at, last_edited_at
			FROM score
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}

	scoresList, err := rows2scores(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2scores: %w", err)
	}
	if len(scoresList) == 0 {
		return nil, ErrScoreNotFound
	}

	return &scoresList[0], nil
}

// ListForDate returns every submission for one day, guests included,
// ordered by submission time.
func (r *Repo) ListForDate(ctx context.Context, date time.Time) (_ []Score, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.scores.listForDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, athlete_id, date, is_rx, team_id, guest_partner_names,
				elapsed_seconds, rounds, reps, submitted_at, last_edited_at
			FROM score
			WHERE date = $1
			ORDER BY submitted_at;`,
		pkg.DateOnly(date),
	)
	if err != nil {
		return nil, err
	}

	return rows2scores(rows)
}

// ListForDates returns all submissions with date in [from, to], both inclusive.
func (r *Repo) ListForDates(ctx context.Context, from, to time.Time) (_ []Score, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.scores.listForDates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, athlete_id, date, is_rx, team_id, guest_partner_names,
				elapsed_seconds, rounds, reps, submitted_at, last_edited_at
			FROM score
			WHERE date >= $1 AND date <= $2
			ORDER BY date, submitted_at;`,
		pkg.DateOnly(from), pkg.DateOnly(to),
	)
	if err != nil {
		return nil, err
	}

	return rows2scores(rows)
}

// ListAthleteDates returns the distinct dates on which an athlete has
// any submission, oldest first.
func (r *Repo) ListAthleteDates(ctx context.Context, athleteID string) (_ []time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.scores.listAthleteDates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	rows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT date FROM score WHERE athlete_id = $1 ORDER BY date;`,
		athleteID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		dates = append(dates, pkg.DateOnly(d))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dates, nil
}

func rows2scores(rows pgx.Rows) ([]Score, error) {
	defer rows.Close()

	var scoresList []Score
	for rows.Next() {
		var score Score
		if err := rows.Scan(
			&score.ID, &score.AthleteID, &score.Date, &score.IsRx, &score.TeamID,
			&score.GuestPartnerNames, &score.ElapsedSeconds, &score.Rounds, &score.Reps,
			&score.SubmittedAt, &score.LastEditedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		score.Date = pkg.DateOnly(score.Date)
		scoresList = append(scoresList, score)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return scoresList, nil
}

package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wodboard/wodboard/internal/telemetry/tracing"
	"github.com/wodboard/wodboard/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrRecordExists = errors.New("attendance record already exists")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, record Record) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.attendance.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO attendance (athlete_id, date, created_at)
			VALUES ($1, $2, $3)
		RETURNING id;`,
		record.AthleteID, pkg.DateOnly(record.Date), record.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrRecordExists
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
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("attendance.id", id))

	record.ID = id
	record.Date = pkg.DateOnly(record.Date)
	return &record, nil
}

// ListDates returns the distinct dates an athlete was marked present
// on, oldest first.
func (r *Repo) ListDates(ctx context.Context, athleteID string) (_ []time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.attendance.listDates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	rows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT date FROM attendance WHERE athlete_id = $1 ORDER BY date;`,
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

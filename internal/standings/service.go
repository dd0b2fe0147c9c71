// Package standings serves ranked day boards and weekly/monthly points
// tables. Boards are recomputed from the source records on every
// request; completed periods are immutable and therefore cacheable
// forever.
package standings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/wodboard/wodboard/internal/cache"
	"github.com/wodboard/wodboard/internal/ranking"
	"github.com/wodboard/wodboard/internal/scores"
	"github.com/wodboard/wodboard/internal/telemetry/metrics"
	"github.com/wodboard/wodboard/internal/telemetry/tracing"
	"github.com/wodboard/wodboard/internal/wod"
	"github.com/wodboard/wodboard/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=standings_test

// BoardStatus tells the UI why a board may be empty.
type BoardStatus string

const (
	// BoardStatusOK means the board has ranked results.
	BoardStatusOK BoardStatus = "ok"
	// BoardStatusNoWorkout means nothing was published for the date.
	BoardStatusNoWorkout BoardStatus = "no_workout"
	// BoardStatusNotScoreable means the workout is a no-score day.
	BoardStatusNotScoreable BoardStatus = "not_scoreable"
	// BoardStatusNoSubmissions means nobody has submitted yet.
	BoardStatusNoSubmissions BoardStatus = "no_submissions"
)

type PeriodType string

const (
	PeriodWeek  PeriodType = "week"
	PeriodMonth PeriodType = "month"
)

type workoutsRepo interface {
	GetByDate(ctx context.Context, date time.Time) (*wod.Workout, error)
	ListRange(ctx context.Context, from, to time.Time) ([]wod.Workout, error)
}

type scoresRepo interface {
	ListForDate(ctx context.Context, date time.Time) ([]scores.Score, error)
	ListForDates(ctx context.Context, from, to time.Time) ([]scores.Score, error)
}

// DayBoard is one date's ranked view plus the display-only guest rows.
type DayBoard struct {
	Date       string             `json:"date"`
	Status     BoardStatus        `json:"status"`
	Discipline wod.Discipline     `json:"discipline"`
	Bands      []ranking.RankBand `json:"bands,omitempty"`
	Guests     []scores.Score     `json:"guests,omitempty"`
}

// Standings is one period's points table.
type Standings struct {
	PeriodType PeriodType            `json:"periodType"`
	From       string                `json:"from"`
	To         string                `json:"to"`
	Completed  bool                  `json:"completed"`
	Rows       []ranking.StandingRow `json:"rows"`
}

type Service struct {
	workouts       workoutsRepo
	scores         scoresRepo
	rdb            *redis.Client
	boardCache     cache.Cache
	clock          ranking.Clock
	metricsManager *metrics.Manager
}

func NewService(
	workouts workoutsRepo,
	scoresRepo scoresRepo,
	rdb *redis.Client,
	boardCache cache.Cache,
	clock ranking.Clock,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		workouts:       workouts,
		scores:         scoresRepo,
		rdb:            rdb,
		boardCache:     boardCache,
		clock:          clock,
		metricsManager: metricsManager,
	}
}

// DayBoard ranks one date's submissions. The three empty conditions
// stay distinguishable through Status: no workout published, workout
// not scoreable, or simply nobody submitted yet.
func (s *Service) DayBoard(ctx context.Context, date time.Time) (_ *DayBoard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "standings.dayBoard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	date = pkg.DateOnly(date)
	cacheKey := fmt.Sprintf("board::%s", date.Format(time.DateOnly))
	if cachedBoard, ok := s.boardCache.Get(cacheKey); ok {
		var board DayBoard
		if err := json.Unmarshal(cachedBoard, &board); err == nil {
			s.metricsManager.CounterStandingsCacheHits.Inc()
			return &board, nil
		}
		log.Errorf("failed to unmarshal cached board for %s, recomputing", cacheKey)
	}

	board := &DayBoard{
		Date:       date.Format(time.DateOnly),
		Discipline: wod.DisciplineUnknown,
	}

	workout, err := s.workouts.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, wod.ErrWorkoutNotFound) {
			board.Status = BoardStatusNoWorkout
			return board, nil
		}
		return nil, fmt.Errorf("get workout: %w", err)
	}

	board.Discipline = workout.Discipline()
	if !board.Discipline.IsScoreable() {
		board.Status = BoardStatusNotScoreable
		return board, nil
	}

	dayScores, err := s.scores.ListForDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	if len(dayScores) == 0 {
		board.Status = BoardStatusNoSubmissions
		return board, nil
	}

	board.Status = BoardStatusOK
	board.Bands = ranking.Rank(board.Discipline, dayScores)
	for _, sc := range dayScores {
		if sc.IsGuest() && sc.TeamID == nil {
			board.Guests = append(board.Guests, sc)
		}
	}

	if boardJson, err := json.Marshal(board); err == nil {
		s.boardCache.Set(cacheKey, boardJson)
	}

	return board, nil
}

// GetStandings aggregates the points table for the week or month
// containing the given date. Completed periods never change, so they
// are served from redis after the first computation.
func (s *Service) GetStandings(ctx context.Context, periodType PeriodType, date time.Time) (_ *Standings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "standings.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	today := pkg.DateOnly(s.clock.Now())

	var period ranking.Period
	var completed bool
	switch periodType {
	case PeriodWeek:
		period = ranking.WeekOf(date)
		completed = ranking.IsWeekCompleted(today, date)
	case PeriodMonth:
		period = ranking.MonthOf(date)
		completed = ranking.IsMonthCompleted(today, date)
	default:
		return nil, fmt.Errorf("unknown period type: %s", periodType)
	}

	standings := &Standings{
		PeriodType: periodType,
		From:       period.From.Format(time.DateOnly),
		To:         period.To.Format(time.DateOnly),
		Completed:  completed,
	}

	cacheKey := fmt.Sprintf("standings::%s::%s", periodType, standings.From)
	if completed {
		if rows, ok := s.cachedRows(ctx, cacheKey); ok {
			s.metricsManager.CounterStandingsCacheHits.Inc()
			standings.Rows = rows
			return standings, nil
		}
	}

	workouts, err := s.workouts.ListRange(ctx, period.From, period.To)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	periodScores, err := s.scores.ListForDates(ctx, period.From, period.To)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}

	scoresByDate := make(map[time.Time][]scores.Score)
	for _, sc := range periodScores {
		d := pkg.DateOnly(sc.Date)
		scoresByDate[d] = append(scoresByDate[d], sc)
	}

	standings.Rows = ranking.SortStandings(ranking.Aggregate(workouts, scoresByDate))
	s.metricsManager.CounterStandingsComputed.WithLabelValues(string(periodType)).Inc()

	if completed {
		s.cacheRows(ctx, cacheKey, standings.Rows)
	}

	return standings, nil
}

// cachedRows loads a completed period's table from its redis sorted
// set. Members hold the full marshaled rows, scored by position so the
// read comes back already ordered.
func (s *Service) cachedRows(ctx context.Context, key string) ([]ranking.StandingRow, bool) {
	members, err := s.rdb.ZRange(ctx, key, 0, -1).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Errorf("failed to read standings cache %s: %s", key, err)
		}
		return nil, false
	}
	if len(members) == 0 {
		return nil, false
	}

	rows := make([]ranking.StandingRow, 0, len(members))
	for _, member := range members {
		var row ranking.StandingRow
		if err := json.Unmarshal([]byte(member), &row); err != nil {
			log.Errorf("failed to unmarshal standings cache %s: %s", key, err)
			return nil, false
		}
		rows = append(rows, row)
	}
	return rows, true
}

func (s *Service) cacheRows(ctx context.Context, key string, rows []ranking.StandingRow) {
	for position, row := range rows {
		rowJson, err := json.Marshal(row)
		if err != nil {
			log.Errorf("failed to marshal standings row for cache %s: %s", key, err)
			return
		}
		if err := s.rdb.ZAdd(ctx, key, &redis.Z{
			Score:  float64(position),
			Member: string(rowJson),
		}).Err(); err != nil {
			log.Errorf("failed to write standings cache %s: %s", key, err)
			return
		}
	}
}

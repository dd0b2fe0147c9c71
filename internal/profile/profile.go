// Package profile derives one athlete's lifetime view from the ranking
// primitives: medal counts, placement trend, averages, podium counts
// and the attendance streak.
package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/wodboard/wodboard/internal/ranking"
	"github.com/wodboard/wodboard/internal/scores"
	"github.com/wodboard/wodboard/internal/telemetry/tracing"
	"github.com/wodboard/wodboard/internal/wod"
	"github.com/wodboard/wodboard/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=profile_mocks_test.go -package=profile_test

// trendRankCap bounds the charted placement: everything worse than
// 10th shows as 10.
const trendRankCap = 10

// streakLookbackDays bounds the backward walk of the attendance streak.
const streakLookbackDays = 365

type workoutsRepo interface {
	ListRange(ctx context.Context, from, to time.Time) ([]wod.Workout, error)
}

type scoresRepo interface {
	ListForDates(ctx context.Context, from, to time.Time) ([]scores.Score, error)
	ListAthleteDates(ctx context.Context, athleteID string) ([]time.Time, error)
}

type attendanceRepo interface {
	ListDates(ctx context.Context, athleteID string) ([]time.Time, error)
}

// TrendPoint is one charted placement: the date and the athlete's rank
// that day, capped at 10.
type TrendPoint struct {
	Date time.Time `json:"date"`
	Rank int       `json:"rank"`
}

// MedalCounts tallies daily medals alongside the dates they were won
// on, for UI drill-down.
type MedalCounts struct {
	Gold        int         `json:"gold"`
	Silver      int         `json:"silver"`
	Bronze      int         `json:"bronze"`
	GoldDates   []time.Time `json:"goldDates,omitempty"`
	SilverDates []time.Time `json:"silverDates,omitempty"`
	BronzeDates []time.Time `json:"bronzeDates,omitempty"`
}

// PodiumCounts tallies first/second/third standings finishes over
// completed weeks or months.
type PodiumCounts struct {
	First  int `json:"first"`
	Second int `json:"second"`
	Third  int `json:"third"`
}

// Stats is the complete profile bundle. Average placements are nil
// when there is nothing to average, never zero.
type Stats struct {
	AthleteID            string       `json:"athleteId"`
	Medals               MedalCounts  `json:"medals"`
	PlacementTrend       []TrendPoint `json:"placementTrend,omitempty"`
	AvgPlacementMonth    *float64     `json:"avgPlacementMonth,omitempty"`
	AvgPlacementLifetime *float64     `json:"avgPlacementLifetime,omitempty"`
	WeeklyPodiums        PodiumCounts `json:"weeklyPodiums"`
	MonthlyPodiums       PodiumCounts `json:"monthlyPodiums"`
	AttendanceStreak     int          `json:"attendanceStreak"`
}

type Service struct {
	workouts   workoutsRepo
	scores     scoresRepo
	attendance attendanceRepo
	clock      ranking.Clock
}

func NewService(
	workouts workoutsRepo,
	scoresRepo scoresRepo,
	attendance attendanceRepo,
	clock ranking.Clock,
) *Service {
	return &Service{
		workouts:   workouts,
		scores:     scoresRepo,
		attendance: attendance,
		clock:      clock,
	}
}

// ComputeStats rebuilds the whole bundle from the athlete's history.
// Only completed periods contribute to medals, trend and podium counts;
// today stays out until everyone has submitted.
func (s *Service) ComputeStats(ctx context.Context, athleteID string) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "profile.computeStats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	today := pkg.DateOnly(s.clock.Now())

	activeDates, err := s.scores.ListAthleteDates(ctx, athleteID)
	if err != nil {
		return nil, fmt.Errorf("list athlete dates: %w", err)
	}

	attendanceDates, err := s.attendance.ListDates(ctx, athleteID)
	if err != nil {
		return nil, fmt.Errorf("list attendance dates: %w", err)
	}

	stats := &Stats{AthleteID: athleteID}
	stats.AttendanceStreak = streak(today, attendedSet(activeDates, attendanceDates))

	if len(activeDates) == 0 {
		return stats, nil
	}

	from := pkg.DateOnly(activeDates[0])
	for _, d := range activeDates {
		if pkg.DateOnly(d).Before(from) {
			from = pkg.DateOnly(d)
		}
	}

	workouts, err := s.workouts.ListRange(ctx, from, today)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	allScores, err := s.scores.ListForDates(ctx, from, today)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}

	workoutByDate := make(map[time.Time]wod.Workout, len(workouts))
	for _, w := range workouts {
		workoutByDate[pkg.DateOnly(w.Date)] = w
	}
	scoresByDate := make(map[time.Time][]scores.Score)
	for _, sc := range allScores {
		d := pkg.DateOnly(sc.Date)
		scoresByDate[d] = append(scoresByDate[d], sc)
	}

	s.fillDailyStats(stats, today, activeDates, workoutByDate, scoresByDate)
	s.fillPodiums(stats, today, activeDates, workouts, scoresByDate)

	return stats, nil
}

func (s *Service) fillDailyStats(
	stats *Stats,
	today time.Time,
	activeDates []time.Time,
	workoutByDate map[time.Time]wod.Workout,
	scoresByDate map[time.Time][]scores.Score,
) {
	currentMonth := ranking.MonthOf(today)
	var monthSum, monthCount, lifetimeSum, lifetimeCount int

	for _, date := range ranking.CompletedDays(today, activeDates) {
		workout, ok := workoutByDate[date]
		if !ok {
			continue
		}
		discipline := workout.Discipline()
		if !discipline.IsScoreable() {
			continue
		}

		dayScores := scoresByDate[date]
		rank, ranked := medalRank(discipline, dayScores, stats.AthleteID)
		if ranked {
			switch rank {
			case 1:
				stats.Medals.Gold++
				stats.Medals.GoldDates = append(stats.Medals.GoldDates, date)
			case 2:
				stats.Medals.Silver++
				stats.Medals.SilverDates = append(stats.Medals.SilverDates, date)
			case 3:
				stats.Medals.Bronze++
				stats.Medals.BronzeDates = append(stats.Medals.BronzeDates, date)
			}
		} else {
			ordinal, ok := ranking.OrdinalRank(discipline, dayScores, stats.AthleteID)
			if !ok {
				continue
			}
			rank = ordinal
			if rank > trendRankCap {
				rank = trendRankCap
			}
		}

		stats.PlacementTrend = append(stats.PlacementTrend, TrendPoint{Date: date, Rank: rank})
		lifetimeSum += rank
		lifetimeCount++
		if currentMonth.Contains(date) {
			monthSum += rank
			monthCount++
		}
	}

	if monthCount > 0 {
		avg := float64(monthSum) / float64(monthCount)
		stats.AvgPlacementMonth = &avg
	}
	if lifetimeCount > 0 {
		avg := float64(lifetimeSum) / float64(lifetimeCount)
		stats.AvgPlacementLifetime = &avg
	}
}

func (s *Service) fillPodiums(
	stats *Stats,
	today time.Time,
	activeDates []time.Time,
	workouts []wod.Workout,
	scoresByDate map[time.Time][]scores.Score,
) {
	for _, week := range ranking.CompletedWeeks(today, activeDates) {
		addPodium(&stats.WeeklyPodiums, stats.AthleteID, week, workouts, scoresByDate)
	}
	for _, month := range ranking.CompletedMonths(today, activeDates) {
		addPodium(&stats.MonthlyPodiums, stats.AthleteID, month, workouts, scoresByDate)
	}
}

func addPodium(
	counts *PodiumCounts,
	athleteID string,
	period ranking.Period,
	workouts []wod.Workout,
	scoresByDate map[time.Time][]scores.Score,
) {
	var periodWorkouts []wod.Workout
	for _, w := range workouts {
		if period.Contains(w.Date) {
			periodWorkouts = append(periodWorkouts, w)
		}
	}
	if len(periodWorkouts) == 0 {
		return
	}

	periodScores := make(map[time.Time][]scores.Score)
	for date, dayScores := range scoresByDate {
		if period.Contains(date) {
			periodScores[date] = dayScores
		}
	}

	sorted := ranking.SortStandings(ranking.Aggregate(periodWorkouts, periodScores))
	for idx, row := range sorted {
		if row.AthleteID != athleteID {
			continue
		}
		if row.TotalPoints <= 0 {
			return
		}
		switch idx {
		case 0:
			counts.First++
		case 1:
			counts.Second++
		case 2:
			counts.Third++
		}
		return
	}
}

// medalRank reports the athlete's band position if they are in one of
// the day's three rank bands.
func medalRank(discipline wod.Discipline, dayScores []scores.Score, athleteID string) (int, bool) {
	for _, band := range ranking.Rank(discipline, dayScores) {
		for _, id := range band.AthleteIDs {
			if id == athleteID {
				return band.Position, true
			}
		}
	}
	return 0, false
}

func attendedSet(scoreDates, attendanceDates []time.Time) map[time.Time]struct{} {
	attended := make(map[time.Time]struct{}, len(scoreDates)+len(attendanceDates))
	for _, d := range scoreDates {
		attended[pkg.DateOnly(d)] = struct{}{}
	}
	for _, d := range attendanceDates {
		attended[pkg.DateOnly(d)] = struct{}{}
	}
	return attended
}

// streak walks backward from today counting consecutive attended
// weekdays. Weekends neither break nor extend the streak, and a
// missing "today" is tolerated since the session may not have happened
// yet. The walk stops after a year regardless.
func streak(today time.Time, attended map[time.Time]struct{}) int {
	count := 0
	day := today
	for i := 0; i < streakLookbackDays; i++ {
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			day = day.AddDate(0, 0, -1)
			continue
		}
		if _, ok := attended[day]; ok {
			count++
		} else if !day.Equal(today) {
			break
		}
		day = day.AddDate(0, 0, -1)
	}
	return count
}

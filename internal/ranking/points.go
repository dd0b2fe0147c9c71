package ranking

import (
	"sort"
	"time"

	"github.com/wodboard/wodboard/internal/scores"
	"github.com/wodboard/wodboard/internal/wod"
	"github.com/wodboard/wodboard/pkg"
)

const rxBonus = 0.5

// StandingRow is one athlete's tally over a window. Rows are rebuilt
// from scratch on every query and never mutated in place.
type StandingRow struct {
	AthleteID   string  `json:"athleteId"`
	Gold        int     `json:"gold"`
	Silver      int     `json:"silver"`
	Bronze      int     `json:"bronze"`
	TotalPoints float64 `json:"totalPoints"`
}

// Aggregate folds a window of workouts and their day scores into
// per-athlete standings. For each day the board is ranked and positions
// 1/2/3 earn 3/2/1 points; teams share the band's medal undivided.
// Athletes with an Rx record on a scoreable day earn an extra half
// point, once per date. The returned map is fresh on every call.
func Aggregate(workouts []wod.Workout, scoresByDate map[time.Time][]scores.Score) map[string]StandingRow {
	rows := make(map[string]StandingRow)

	for _, workout := range workouts {
		discipline := workout.Discipline()
		if !discipline.IsScoreable() {
			continue
		}

		date := pkg.DateOnly(workout.Date)
		dayScores := scoresByDate[date]

		for _, band := range Rank(discipline, dayScores) {
			if band.Position > 3 {
				break
			}
			for _, athleteID := range band.AthleteIDs {
				row := rows[athleteID]
				row.AthleteID = athleteID
				switch band.Position {
				case 1:
					row.Gold++
					row.TotalPoints += 3
				case 2:
					row.Silver++
					row.TotalPoints += 2
				case 3:
					row.Bronze++
					row.TotalPoints += 1
				}
				rows[athleteID] = row
			}
		}

		rxSeen := make(map[string]struct{})
		for _, s := range dayScores {
			if !s.IsRx || s.AthleteID == nil {
				continue
			}
			if _, ok := rxSeen[*s.AthleteID]; ok {
				continue
			}
			rxSeen[*s.AthleteID] = struct{}{}
			row := rows[*s.AthleteID]
			row.AthleteID = *s.AthleteID
			row.TotalPoints += rxBonus
			rows[*s.AthleteID] = row
		}
	}

	return rows
}

// SortStandings orders rows into the presentable table: total points
// descending, then gold, silver, bronze descending, athlete id
// ascending as the final deterministic tiebreak.
func SortStandings(rows map[string]StandingRow) []StandingRow {
	sorted := make([]StandingRow, 0, len(rows))
	for _, row := range rows {
		sorted = append(sorted, row)
	}

	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		if a.Gold != b.Gold {
			return a.Gold > b.Gold
		}
		if a.Silver != b.Silver {
			return a.Silver > b.Silver
		}
		if a.Bronze != b.Bronze {
			return a.Bronze > b.Bronze
		}
		return a.AthleteID < b.AthleteID
	})

	return sorted
}

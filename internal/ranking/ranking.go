// Package ranking holds the day ranker, the points aggregator and the
// period calendar. Everything here is a pure function over in-memory
// collections; repos fetch the data, this package never does I/O.
package ranking

import (
	"math"
	"sort"

	"github.com/wodboard/wodboard/internal/scores"
	"github.com/wodboard/wodboard/internal/wod"
)

// maxBands is how many rank bands a day board retains. Placements
// beyond the medals are recomputed on demand via OrdinalRank.
const maxBands = 3

// RankBand is one ordinal position on a day's board together with every
// athlete occupying it. Size > 1 only on an exact score tie.
type RankBand struct {
	Position   int      `json:"position"`
	AthleteIDs []string `json:"athleteIds"`
}

// entry is one ranked competitor: a solo athlete or a whole team,
// collapsed to a single comparator key. Smaller key is better.
type entry struct {
	key     int64
	members []string
}

// comparatorKey normalizes a score to a single "less is better" value.
// TIME ranks ascending by elapsed seconds, a missing value sorts last.
// AMRAP and CALORIES rank descending by rounds*10000+reps, so the key is
// the negated composite; a record with neither rounds nor reps gets the
// composite of (-1, -1) and sorts below every real result.
func comparatorKey(discipline wod.Discipline, s scores.Score) int64 {
	switch discipline {
	case wod.DisciplineTime:
		if s.ElapsedSeconds == nil {
			return math.MaxInt64
		}
		return int64(*s.ElapsedSeconds)
	case wod.DisciplineAmrap, wod.DisciplineCalories:
		if s.Rounds == nil && s.Reps == nil {
			return 10001 // -(-1*10000 + -1)
		}
		var rounds, reps int64
		if s.Rounds != nil {
			rounds = int64(*s.Rounds)
		}
		if s.Reps != nil {
			reps = int64(*s.Reps)
		}
		return -(rounds*10000 + reps)
	default:
		return math.MaxInt64
	}
}

// buildEntries partitions a day's records into ranked competitors:
// one entry per distinct team (first-seen row carries the score, every
// registered member expanded), one entry per solo athlete. Guest rows
// with no team stay off the board, duplicates keep their first
// submission. Entry order follows first submission order.
func buildEntries(discipline wod.Discipline, records []scores.Score) []entry {
	var ordered []entry
	teamIdx := make(map[string]int)
	seenAthletes := make(map[string]struct{})

	for _, record := range records {
		if record.TeamID != nil {
			idx, ok := teamIdx[*record.TeamID]
			if !ok {
				teamIdx[*record.TeamID] = len(ordered)
				ordered = append(ordered, entry{key: comparatorKey(discipline, record)})
				idx = len(ordered) - 1
			}
			if record.AthleteID == nil {
				continue
			}
			if _, seen := seenAthletes[*record.AthleteID]; seen {
				continue
			}
			seenAthletes[*record.AthleteID] = struct{}{}
			ordered[idx].members = append(ordered[idx].members, *record.AthleteID)
			continue
		}

		if record.AthleteID == nil {
			// guest, display only
			continue
		}
		if _, seen := seenAthletes[*record.AthleteID]; seen {
			continue
		}
		seenAthletes[*record.AthleteID] = struct{}{}
		ordered = append(ordered, entry{
			key:     comparatorKey(discipline, record),
			members: []string{*record.AthleteID},
		})
	}

	// teams whose every row was a guest have nobody to rank
	entries := ordered[:0]
	for _, e := range ordered {
		if len(e.members) > 0 {
			entries = append(entries, e)
		}
	}
	return entries
}

// Rank produces the day's board: at most three rank bands, best first.
// Position numbering follows competition-ranking semantics, so a 2-way
// tie for first is followed by position 3. NO_SCORE and UNKNOWN days
// have no board, as does an empty day.
func Rank(discipline wod.Discipline, records []scores.Score) []RankBand {
	if !discipline.IsScoreable() {
		return nil
	}

	entries := buildEntries(discipline, records)
	if len(entries) == 0 {
		return nil
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].key < entries[j].key
	})

	var bands []RankBand
	position := 1
	i := 0
	for i < len(entries) && len(bands) < maxBands {
		j := i
		band := RankBand{Position: position}
		for j < len(entries) && entries[j].key == entries[i].key {
			band.AthleteIDs = append(band.AthleteIDs, entries[j].members...)
			j++
		}
		bands = append(bands, band)
		position += j - i
		i = j
	}

	return bands
}

// OrdinalRank is the low-resolution placement used for the trend chart:
// the athlete's 1-based rank computed as the count of strictly better
// distinct comparator values plus one. The second return is false when
// the athlete has no ranked record that day.
func OrdinalRank(discipline wod.Discipline, records []scores.Score, athleteID string) (int, bool) {
	if !discipline.IsScoreable() {
		return 0, false
	}

	entries := buildEntries(discipline, records)

	var athleteKey int64
	found := false
	for _, e := range entries {
		for _, member := range e.members {
			if member == athleteID {
				athleteKey = e.key
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		return 0, false
	}

	better := make(map[int64]struct{})
	for _, e := range entries {
		if e.key < athleteKey {
			better[e.key] = struct{}{}
		}
	}
	return len(better) + 1, true
}

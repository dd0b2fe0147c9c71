package wod

import "time"

// Discipline is the scoring discipline of a workout:
//   - time: lower elapsed time is better
//   - amrap: higher rounds+reps is better
//   - calories: higher calorie count is better
//   - no_score: not ranked (skill/strength/EMOM days)
//   - unknown: discipline indeterminate (e.g. no workout text)
type Discipline string

const (
	DisciplineTime     Discipline = "time"
	DisciplineAmrap    Discipline = "amrap"
	DisciplineCalories Discipline = "calories"
	DisciplineNoScore  Discipline = "no_score"
	DisciplineUnknown  Discipline = "unknown"
)

func (d Discipline) String() string {
	return string(d)
}

func (d Discipline) IsValid() bool {
	switch d {
	case DisciplineTime,
		DisciplineAmrap,
		DisciplineCalories,
		DisciplineNoScore,
		DisciplineUnknown:
		return true
	default:
		return false
	}
}

// IsScoreable reports whether results of this discipline can be ranked.
func (d Discipline) IsScoreable() bool {
	switch d {
	case DisciplineTime, DisciplineAmrap, DisciplineCalories:
		return true
	default:
		return false
	}
}

// Workout is the published WOD for a given date. There is at most one
// workout per calendar date, and the ranking engine only ever reads it.
type Workout struct {
	ID              int       `json:"id"`
	Date            time.Time `json:"date"`
	DescriptionText string    `json:"descriptionText"`
	// DisciplineOverride lets the coach pin the discipline when the
	// WOD text is ambiguous. Only time, amrap and no_score can be set
	// manually, calories is detectable from text only.
	DisciplineOverride *Discipline `json:"disciplineOverride,omitempty"`
	IsTeam             bool        `json:"isTeam"`
	// TeamSize is informational only, the ranking engine does not enforce it
	TeamSize  int        `json:"teamSize"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Discipline classifies the workout, honoring the manual override.
func (w Workout) Discipline() Discipline {
	return Classify(w.DescriptionText, w.DisciplineOverride)
}

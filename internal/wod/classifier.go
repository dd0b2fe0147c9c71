package wod

import (
	"regexp"
	"strings"
)

// Cue phrases per discipline. Checked in a fixed precedence order since the
// WOD text can contain several of them, e.g. an EMOM with a time cap mention.
var (
	noScoreCues = []string{
		"emom",
		"e2mom", "e3mom", "e4mom", "e5mom",
		"e6mom", "e7mom", "e8mom", "e9mom",
		"for quality",
		"not for time",
		"skill",
		"strength",
	}
	caloriesCues = []string{
		"max cal",
		"for cal",
		"calorie challenge",
	}
	amrapCues = []string{
		"amrap",
		"as many rounds as possible",
		"as many reps as possible",
		"max rounds",
		"max reps",
		"score: rounds",
		"score: reps",
	}
	timeCues = []string{
		"for time",
		"time cap",
		"tcap",
	}

	everyNMinutesRe = regexp.MustCompile(`every \d+ minute`)
)

// Classify determines the scoring discipline of a workout from its free-text
// description and an optional manual override. Cue precedence: no_score,
// calories, amrap, time. Empty text yields unknown, non-empty text with no
// matched cue defaults to time, since most WODs without special phrasing
// are timed.
func Classify(descriptionText string, override *Discipline) Discipline {
	if override != nil {
		switch *override {
		case DisciplineTime, DisciplineAmrap, DisciplineNoScore:
			return *override
		}
		// calories (or anything else) is not a valid override, fall
		// through to the text cues
	}

	text := strings.ToLower(descriptionText)
	if strings.TrimSpace(text) == "" {
		return DisciplineUnknown
	}

	if containsAny(text, noScoreCues) || everyNMinutesRe.MatchString(text) {
		return DisciplineNoScore
	}
	if containsAny(text, caloriesCues) {
		return DisciplineCalories
	}
	if containsAny(text, amrapCues) {
		return DisciplineAmrap
	}
	if containsAny(text, timeCues) {
		return DisciplineTime
	}

	// default to time
	return DisciplineTime
}

func containsAny(text string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(text, cue) {
			return true
		}
	}
	return false
}

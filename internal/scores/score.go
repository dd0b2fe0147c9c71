package scores

import "time"

// Score is one submitted result for one date. A nil AthleteID marks a
// guest entry, shown on the board but never ranked. Team entries share
// a TeamID across one row per member.
type Score struct {
	ID                int        `json:"id"`
	AthleteID         *string    `json:"athleteId,omitempty"`
	Date              time.Time  `json:"date"`
	IsRx              bool       `json:"isRx"`
	TeamID            *string    `json:"teamId,omitempty"`
	GuestPartnerNames []string   `json:"guestPartnerNames,omitempty"`
	ElapsedSeconds    *int       `json:"elapsedSeconds,omitempty"`
	Rounds            *int       `json:"rounds,omitempty"`
	Reps              *int       `json:"reps,omitempty"`
	SubmittedAt       time.Time  `json:"submittedAt"`
	LastEditedAt      *time.Time `json:"lastEditedAt,omitempty"`
}

// IsGuest reports whether this row belongs to an unregistered athlete.
func (s Score) IsGuest() bool {
	return s.AthleteID == nil
}

func (s Score) HasValue() bool {
	return s.ElapsedSeconds != nil || s.Rounds != nil || s.Reps != nil
}

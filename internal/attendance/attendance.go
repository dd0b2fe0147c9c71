package attendance

import "time"

// Record marks an athlete as present on a date, independent of whether
// they submitted a score.
type Record struct {
	ID        int       `json:"id"`
	AthleteID string    `json:"athleteId"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

package model

import "time"

// Class represents a scheduled, capacity-limited group session.
// SpotsLeft is mutated only through the class repository's reserve and
// release operations so that 0 <= SpotsLeft <= Capacity always holds.
type Class struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Instructor  string    `json:"instructor"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	SpotsLeft   int       `json:"spotsLeft"`
}

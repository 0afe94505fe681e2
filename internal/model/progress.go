package model

import "time"

// Progress is a dated snapshot of a member's training metrics.
type Progress struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"userId"`
	Date            time.Time `json:"date"`
	Weight          int       `json:"weight"`  // kg
	BodyFat         int       `json:"bodyFat"` // percent
	ClassesAttended int       `json:"classesAttended"`
	Calories        int       `json:"calories"`
}

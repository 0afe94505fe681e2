package model

import "time"

// Booking is a user's reservation of one seat in a class.
type Booking struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	ClassID   uint      `json:"classId"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookingWithClass is a booking enriched with its class details for display.
type BookingWithClass struct {
	Booking
	Class *Class `json:"class"`
}

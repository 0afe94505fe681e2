package model

import "time"

// User represents a gym member account.
type User struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	MemberSince  time.Time `json:"memberSince"`
	Level        int       `json:"level"`
	IsPremium    bool      `json:"isPremium"`
}

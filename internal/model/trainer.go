package model

// Trainer is a gym trainer listed in the booking view.
type Trainer struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Specialty   string `json:"specialty"`
	ImageURL    string `json:"imageUrl"`
	IsAvailable bool   `json:"isAvailable"`
}

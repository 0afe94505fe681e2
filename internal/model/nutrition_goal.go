package model

// NutritionGoal holds a member's daily nutrition targets. Each user has at
// most one goal record.
type NutritionGoal struct {
	ID                uint `json:"id"`
	UserID            uint `json:"userId"`
	DailyCalories     int  `json:"dailyCalories"`
	ProteinPercentage int  `json:"proteinPercentage"`
	CarbsPercentage   int  `json:"carbsPercentage"`
	FatsPercentage    int  `json:"fatsPercentage"`
	WaterIntake       int  `json:"waterIntake"` // ml
}

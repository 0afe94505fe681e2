package model

// Routine is a workout routine shown in the routines view.
type Routine struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    int    `json:"duration"` // minutes
	Difficulty  string `json:"difficulty"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
}

// Exercise is a single exercise within a routine.
type Exercise struct {
	ID        uint   `json:"id"`
	RoutineID uint   `json:"routineId"`
	Name      string `json:"name"`
	Sets      int    `json:"sets"`
	Reps      int    `json:"reps"`
	Order     int    `json:"order"`
}

// RoutineWithExercises is a routine enriched with its exercises for the
// routine detail view.
type RoutineWithExercises struct {
	Routine
	Exercises []Exercise `json:"exercises"`
}

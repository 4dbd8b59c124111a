package roadmap

// Request is the user's roadmap questionnaire input.
type Request struct {
	Track            string `json:"track"`
	Goals            string `json:"goals" validate:"required"`
	TimeAvailability string `json:"time_availability" validate:"required"`
	CurrentLevel     string `json:"current_level" validate:"required"`
}

// DetectedTech is one technology recognized in the goals text.
type DetectedTech struct {
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Confidence string   `json:"confidence"` // high, medium
	Related    []string `json:"related,omitempty"`
}

// WeekPlan is one week's slice of the learning path.
type WeekPlan struct {
	Week  int      `json:"week"`
	Steps []string `json:"steps"`
}

// Plan is the full generated roadmap. It is pure data; rendering is the
// caller's concern.
type Plan struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Weeks        []WeekPlan     `json:"weeks"`
	TotalWeeks   int            `json:"totalWeeks"`
	FocusArea    string         `json:"focusArea"`
	Technologies []DetectedTech `json:"technologies"`
	Tips         []string       `json:"tips"`
	Problems     []Problem      `json:"problems"`
}

// Problem is one entry of the static practice catalog.
type Problem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"` // Easy, Medium, Hard
	Category    string `json:"category"`
	Platform    string `json:"platform"`
	Technology  string `json:"technology"`
	URL         string `json:"url,omitempty"`
}

// ProblemFilter narrows catalog queries. "all" or "" means unconstrained;
// Search is a case-insensitive substring match on title or description.
type ProblemFilter struct {
	Category   string
	Platform   string
	Technology string
	Search     string
}

// Skill levels accepted by the generator.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Focus areas derived from the goals text.
const (
	FocusFrontend = "frontend development"
	FocusBackend  = "backend development"
	FocusWeb      = "web development"
)

package roadmap

import (
	"regexp"
	"strings"
)

// catalog is the static practice-problem pool the generator draws from.
var catalog = []Problem{
	{
		Title:       "QR code component",
		Description: "Build a small card component matching a design spec",
		Difficulty:  "Easy",
		Category:    "UI",
		Platform:    "Frontend Mentor",
		Technology:  "React",
	},
	{
		Title:       "Product preview card",
		Description: "Responsive two-column card with image and pricing",
		Difficulty:  "Easy",
		Category:    "UI",
		Platform:    "Frontend Mentor",
		Technology:  "CSS",
	},
	{
		Title:       "Palindrome checker",
		Description: "Check whether a string reads the same backwards, ignoring punctuation",
		Difficulty:  "Easy",
		Category:    "Algorithms",
		Platform:    "FreeCodeCamp",
		Technology:  "JavaScript",
	},
	{
		Title:       "Interactive rating component",
		Description: "Stateful rating widget with a submitted state",
		Difficulty:  "Medium",
		Category:    "UI",
		Platform:    "Frontend Mentor",
		Technology:  "React",
	},
	{
		Title:       "Cash register",
		Description: "Compute change due from a drawer with limited denominations",
		Difficulty:  "Medium",
		Category:    "Algorithms",
		Platform:    "FreeCodeCamp",
		Technology:  "JavaScript",
	},
	{
		Title:       "REST API with authentication",
		Description: "Build a token-protected CRUD API with persistent storage",
		Difficulty:  "Hard",
		Category:    "API",
		Platform:    "FreeCodeCamp",
		Technology:  "Node.js",
	},
	{
		Title:       "URL shortener microservice",
		Description: "Shorten URLs and redirect visitors, with validation",
		Difficulty:  "Medium",
		Category:    "API",
		Platform:    "FreeCodeCamp",
		Technology:  "Node.js",
	},
	{
		Title:       "SQL reporting queries",
		Description: "Aggregate sales data with joins, group by and window functions",
		Difficulty:  "Medium",
		Category:    "Databases",
		Platform:    "HackerRank",
		Technology:  "SQL",
	},
	{
		Title:       "Two sum",
		Description: "Find indices of two numbers adding up to a target",
		Difficulty:  "Easy",
		Category:    "Algorithms",
		Platform:    "LeetCode",
		Technology:  "Python",
	},
	{
		Title:       "LRU cache",
		Description: "Design a fixed-capacity cache with O(1) get and put",
		Difficulty:  "Hard",
		Category:    "Data Structures",
		Platform:    "LeetCode",
		Technology:  "Python",
	},
	{
		Title:       "Typed todo app",
		Description: "Todo list with strict typing, filters and local persistence",
		Difficulty:  "Medium",
		Category:    "UI",
		Platform:    "Codewars",
		Technology:  "TypeScript",
	},
	{
		Title:       "Rate limiter",
		Description: "Implement a sliding-window rate limiter for an API gateway",
		Difficulty:  "Hard",
		Category:    "API",
		Platform:    "Exercism",
		Technology:  "Node.js",
	},
}

// Catalog returns the full static problem pool.
func Catalog() []Problem {
	return append([]Problem(nil), catalog...)
}

// Technologies compatible with each focus area. FocusWeb admits everything.
var focusTechnology = map[string]*regexp.Regexp{
	FocusFrontend: regexp.MustCompile(`(?i)react|vue|angular|javascript|typescript|html|css`),
	FocusBackend:  regexp.MustCompile(`(?i)node|express|python|java|sql|mongo|go`),
}

// FilterProblems narrows the catalog by skill level, focus area and the
// caller's explicit filters. Beginners see Easy only, intermediates Easy and
// Medium, advanced everything.
func FilterProblems(level, focus string, filter ProblemFilter) []Problem {
	var out []Problem
	for _, p := range catalog {
		if !difficultyAllowed(level, p.Difficulty) {
			continue
		}
		if re, ok := focusTechnology[focus]; ok && !re.MatchString(p.Technology) {
			continue
		}
		if constrained(filter.Category) && !strings.EqualFold(filter.Category, p.Category) {
			continue
		}
		if constrained(filter.Platform) && !strings.EqualFold(filter.Platform, p.Platform) {
			continue
		}
		if constrained(filter.Technology) && !strings.EqualFold(filter.Technology, p.Technology) {
			continue
		}
		if filter.Search != "" && !matchesSearch(p, filter.Search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func constrained(value string) bool {
	return value != "" && !strings.EqualFold(value, "all")
}

func matchesSearch(p Problem, search string) bool {
	s := strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Title), s) ||
		strings.Contains(strings.ToLower(p.Description), s)
}

func difficultyAllowed(level, difficulty string) bool {
	switch level {
	case LevelBeginner:
		return difficulty == "Easy"
	case LevelIntermediate:
		return difficulty == "Easy" || difficulty == "Medium"
	default:
		return true
	}
}

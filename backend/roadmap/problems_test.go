package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(problems []Problem) []string {
	out := make([]string, 0, len(problems))
	for _, p := range problems {
		out = append(out, p.Title)
	}
	return out
}

func TestBeginnerFrontendSeesOnlyEasyFrontendProblems(t *testing.T) {
	problems := FilterProblems(LevelBeginner, FocusFrontend, ProblemFilter{})
	require.NotEmpty(t, problems)

	for _, p := range problems {
		assert.Equal(t, "Easy", p.Difficulty)
	}
	assert.Contains(t, titles(problems), "QR code component")
	assert.NotContains(t, titles(problems), "REST API with authentication")
}

func TestAdvancedWebSeesEverything(t *testing.T) {
	problems := FilterProblems(LevelAdvanced, FocusWeb, ProblemFilter{})

	assert.Len(t, problems, len(Catalog()))
	assert.Contains(t, titles(problems), "QR code component")
	assert.Contains(t, titles(problems), "REST API with authentication")
}

func TestIntermediateExcludesHard(t *testing.T) {
	problems := FilterProblems(LevelIntermediate, FocusWeb, ProblemFilter{})
	require.NotEmpty(t, problems)

	for _, p := range problems {
		assert.NotEqual(t, "Hard", p.Difficulty)
	}
}

func TestBackendFocusExcludesPureFrontendTech(t *testing.T) {
	problems := FilterProblems(LevelAdvanced, FocusBackend, ProblemFilter{})
	require.NotEmpty(t, problems)

	for _, p := range problems {
		assert.NotEqual(t, "CSS", p.Technology)
		assert.NotEqual(t, "React", p.Technology)
	}
}

func TestPlatformFilter(t *testing.T) {
	problems := FilterProblems(LevelAdvanced, FocusWeb, ProblemFilter{Platform: "LeetCode"})
	require.NotEmpty(t, problems)

	for _, p := range problems {
		assert.Equal(t, "LeetCode", p.Platform)
	}
}

func TestAllMeansUnconstrained(t *testing.T) {
	unfiltered := FilterProblems(LevelAdvanced, FocusWeb, ProblemFilter{})
	all := FilterProblems(LevelAdvanced, FocusWeb, ProblemFilter{
		Category:   "all",
		Platform:   "All",
		Technology: "ALL",
	})

	assert.Equal(t, unfiltered, all)
}

func TestSearchMatchesTitleOrDescription(t *testing.T) {
	byTitle := FilterProblems(LevelAdvanced, FocusWeb, ProblemFilter{Search: "lru"})
	require.Len(t, byTitle, 1)
	assert.Equal(t, "LRU cache", byTitle[0].Title)

	byDescription := FilterProblems(LevelAdvanced, FocusWeb, ProblemFilter{Search: "sliding-window"})
	require.Len(t, byDescription, 1)
	assert.Equal(t, "Rate limiter", byDescription[0].Title)

	nothing := FilterProblems(LevelAdvanced, FocusWeb, ProblemFilter{Search: "quantum"})
	assert.Empty(t, nothing)
}

func TestCatalogReturnsACopy(t *testing.T) {
	first := Catalog()
	first[0].Title = "mutated"

	assert.NotEqual(t, "mutated", Catalog()[0].Title)
}

// Package content holds the static learning catalogs: per-language roadmaps
// (sections of topics) and per-section practice questions. All data is
// read-only; completion state lives in the progress package.
package content

// Topic is an atomic unit of roadmap content.
type Topic struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	Example string `json:"example,omitempty"`
}

// Section groups topics into one phase of a language roadmap.
type Section struct {
	ID         string  `json:"id"`
	Phase      string  `json:"phase"`
	Title      string  `json:"title"`
	Duration   string  `json:"duration"`
	Difficulty string  `json:"difficulty"`
	Topics     []Topic `json:"topics"`
}

// LanguageRoadmap is the full learning path for one language.
type LanguageRoadmap struct {
	Language    string    `json:"language"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Sections    []Section `json:"sections"`
}

// MCQ is a multiple-choice practice question.
type MCQ struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// CodingTask is a small hands-on exercise with a reference solution.
type CodingTask struct {
	Question string `json:"question"`
	Hint     string `json:"hint"`
	Solution string `json:"solution"`
	Language string `json:"language"`
}

// Questions bundles the practice material for one section.
type Questions struct {
	MCQs   []MCQ        `json:"mcqs"`
	Coding []CodingTask `json:"coding"`
}

// Languages lists the languages a roadmap exists for, in stable order.
func Languages() []string {
	langs := make([]string, 0, len(roadmaps))
	for _, r := range roadmapOrder {
		langs = append(langs, r)
	}
	return langs
}

// Roadmap returns the roadmap for a language, if one exists.
func Roadmap(language string) (LanguageRoadmap, bool) {
	r, ok := roadmaps[language]
	return r, ok
}

// SectionQuestions returns the practice questions for one roadmap section.
func SectionQuestions(language, sectionID string) (Questions, bool) {
	sections, ok := practiceQuestions[language]
	if !ok {
		return Questions{}, false
	}
	q, ok := sections[sectionID]
	return q, ok
}

package progress

import (
	"strconv"
	"strings"
)

// StorageKey is the well-known key the tracker record is persisted under.
// Per-user keys are derived from it (see KeyForUser).
const StorageKey = "learningProgress"

// Record is the whole persisted state of one user's learning progress.
// The JSON layout is the storage contract and must stay stable.
type Record struct {
	CompletedTopics   map[string]map[string]bool `json:"completedTopics"`
	CompletedProblems map[string]bool            `json:"completedProblems"`
	Streak            int                        `json:"streak"`
	LastActiveDate    string                     `json:"lastActiveDate,omitempty"`
	SelectedLanguage  string                     `json:"selectedLanguage,omitempty"`
	RoadmapProgress   map[string]interface{}     `json:"roadmapProgress"`
}

// NewRecord returns an empty record with all maps initialized.
func NewRecord() Record {
	return Record{
		CompletedTopics:   map[string]map[string]bool{},
		CompletedProblems: map[string]bool{},
		RoadmapProgress:   map[string]interface{}{},
	}
}

// KeyForUser derives a per-user storage key from the shared base key.
func KeyForUser(userID uint) string {
	return StorageKey + ":" + strconv.FormatUint(uint64(userID), 10)
}

// problemKey joins the three identifiers into the flat key used in the
// persisted record. The delimiter is part of the storage contract, so any
// identifier containing "-" can collide with a different logical key; callers
// always go through MarkProblemComplete, never build keys themselves.
func problemKey(language, topicID, problemID string) string {
	return language + "-" + topicID + "-" + problemID
}

// languagePrefix matches the composite keys belonging to one language.
func languagePrefix(language string) string {
	return language + "-"
}

func keyBelongsTo(key, language string) bool {
	return strings.HasPrefix(key, languagePrefix(language))
}

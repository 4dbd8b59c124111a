package progress

import (
	"encoding/json"
	"time"
)

const dateLayout = "2006-01-02"

// Storage persists serialized records under string keys. Load reports
// (payload, found, error); a missing key is not an error.
type Storage interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, data []byte) error
}

// Store owns one Record and writes it through to storage on every mutation.
// It is not safe for concurrent use; there is exactly one logical writer per
// record and concurrent writers are last-write-wins by design.
type Store struct {
	storage Storage
	key     string
	record  Record

	// Now supplies the current time for streak computation. Overridden in
	// tests to pin the calendar date.
	Now func() time.Time
}

// NewStore loads the record stored under key, falling back to an empty record
// when the key is absent or the payload does not parse. Storage read errors
// are swallowed the same way: the tracker always starts in a usable state.
func NewStore(storage Storage, key string) *Store {
	s := &Store{
		storage: storage,
		key:     key,
		record:  NewRecord(),
		Now:     time.Now,
	}
	data, found, err := storage.Load(key)
	if err != nil || !found {
		return s
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return s
	}
	if rec.CompletedTopics == nil {
		rec.CompletedTopics = map[string]map[string]bool{}
	}
	if rec.CompletedProblems == nil {
		rec.CompletedProblems = map[string]bool{}
	}
	if rec.RoadmapProgress == nil {
		rec.RoadmapProgress = map[string]interface{}{}
	}
	s.record = rec
	return s
}

// Record returns the current in-memory record. Callers must treat it as
// read-only; all mutation goes through the methods below.
func (s *Store) Record() Record {
	return s.record
}

// MarkTopicComplete records a finished topic. Marking a topic twice has no
// observable effect beyond the rewrite of the same snapshot.
func (s *Store) MarkTopicComplete(language, topicID string) error {
	topics := s.record.CompletedTopics[language]
	if topics == nil {
		topics = map[string]bool{}
		s.record.CompletedTopics[language] = topics
	}
	topics[topicID] = true
	return s.save()
}

// MarkProblemComplete records a solved problem. Identifiers are taken
// separately so no caller ever hand-assembles the composite key.
func (s *Store) MarkProblemComplete(language, topicID, problemID string) error {
	s.record.CompletedProblems[problemKey(language, topicID, problemID)] = true
	return s.save()
}

// SetSelectedLanguage remembers the most recently chosen language.
func (s *Store) SetSelectedLanguage(language string) error {
	s.record.SelectedLanguage = language
	return s.save()
}

// UpdateStreak applies the daily-activity streak rules for "today" in local
// time, date-only granularity:
//   - already ticked today: no-op, nothing persisted
//   - last activity was yesterday: streak extends by one
//   - anything else (first activity, a gap, clock skew): streak restarts at 1
func (s *Store) UpdateStreak() error {
	now := s.Now()
	today := now.Format(dateLayout)
	if s.record.LastActiveDate == today {
		return nil
	}
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	if s.record.LastActiveDate == yesterday {
		s.record.Streak++
	} else {
		s.record.Streak = 1
	}
	s.record.LastActiveDate = today
	return s.save()
}

// TopicProgress returns how many topics are completed for a language.
func (s *Store) TopicProgress(language string) int {
	return len(s.record.CompletedTopics[language])
}

// ProblemsSolved returns the total number of solved problems across all
// languages.
func (s *Store) ProblemsSolved() int {
	return len(s.record.CompletedProblems)
}

// Streak returns the current consecutive-day streak.
func (s *Store) Streak() int {
	return s.record.Streak
}

// SelectedLanguage returns the most recently chosen language, or "".
func (s *Store) SelectedLanguage() string {
	return s.record.SelectedLanguage
}

// ResetLanguageProgress clears the completed topics for one language together
// with that language's solved problems. Other languages and the streak are
// untouched.
func (s *Store) ResetLanguageProgress(language string) error {
	delete(s.record.CompletedTopics, language)
	for key := range s.record.CompletedProblems {
		if keyBelongsTo(key, language) {
			delete(s.record.CompletedProblems, key)
		}
	}
	return s.save()
}

// Summary is the aggregate view served by the dashboard endpoint.
type Summary struct {
	Streak           int            `json:"streak"`
	LastActiveDate   string         `json:"lastActiveDate,omitempty"`
	SelectedLanguage string         `json:"selectedLanguage,omitempty"`
	TopicsCompleted  map[string]int `json:"topicsCompleted"`
	ProblemsSolved   int            `json:"problemsSolved"`
}

// Summarize derives the aggregate progress view from the current record.
func (s *Store) Summarize() Summary {
	topics := make(map[string]int, len(s.record.CompletedTopics))
	for language, done := range s.record.CompletedTopics {
		topics[language] = len(done)
	}
	return Summary{
		Streak:           s.record.Streak,
		LastActiveDate:   s.record.LastActiveDate,
		SelectedLanguage: s.record.SelectedLanguage,
		TopicsCompleted:  topics,
		ProblemsSolved:   len(s.record.CompletedProblems),
	}
}

// save writes the full record through to storage. The persisted value is
// always a complete snapshot of the last successful mutation.
func (s *Store) save() error {
	data, err := json.Marshal(s.record)
	if err != nil {
		return err
	}
	return s.storage.Save(s.key, data)
}

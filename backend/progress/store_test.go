package progress

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *FileStorage) {
	t.Helper()
	storage := NewFileStorage(t.TempDir())
	return NewStore(storage, StorageKey), storage
}

func fixedDay(store *Store, day string) {
	parsed, _ := time.Parse("2006-01-02", day)
	store.Now = func() time.Time { return parsed }
}

func TestMarkTopicCompleteIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.MarkTopicComplete("python", "intro"))
	require.NoError(t, store.MarkTopicComplete("python", "intro"))

	assert.Equal(t, 1, store.TopicProgress("python"))
	assert.True(t, store.Record().CompletedTopics["python"]["intro"])
}

func TestTopicProgressPerLanguage(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.MarkTopicComplete("python", "intro"))
	require.NoError(t, store.MarkTopicComplete("python", "basics"))
	require.NoError(t, store.MarkTopicComplete("javascript", "intro"))

	assert.Equal(t, 2, store.TopicProgress("python"))
	assert.Equal(t, 1, store.TopicProgress("javascript"))
	assert.Equal(t, 0, store.TopicProgress("rust"))
}

func TestProblemsSolvedCountsAcrossLanguages(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.MarkProblemComplete("python", "intro", "p1"))
	require.NoError(t, store.MarkProblemComplete("python", "intro", "p1"))
	require.NoError(t, store.MarkProblemComplete("javascript", "dom", "p2"))

	assert.Equal(t, 2, store.ProblemsSolved())
}

func TestStreakSameDayIsNoOp(t *testing.T) {
	store, _ := newTestStore(t)
	fixedDay(store, "2025-03-10")

	require.NoError(t, store.UpdateStreak())
	require.NoError(t, store.UpdateStreak())

	assert.Equal(t, 1, store.Streak())
	assert.Equal(t, "2025-03-10", store.Record().LastActiveDate)
}

func TestStreakContinuesFromYesterday(t *testing.T) {
	store, _ := newTestStore(t)

	fixedDay(store, "2025-03-10")
	require.NoError(t, store.UpdateStreak())
	fixedDay(store, "2025-03-11")
	require.NoError(t, store.UpdateStreak())
	fixedDay(store, "2025-03-12")
	require.NoError(t, store.UpdateStreak())

	assert.Equal(t, 3, store.Streak())
	assert.Equal(t, "2025-03-12", store.Record().LastActiveDate)
}

func TestStreakResetsAfterGap(t *testing.T) {
	store, _ := newTestStore(t)

	fixedDay(store, "2025-03-10")
	require.NoError(t, store.UpdateStreak())
	fixedDay(store, "2025-03-11")
	require.NoError(t, store.UpdateStreak())
	assert.Equal(t, 2, store.Streak())

	fixedDay(store, "2025-03-14")
	require.NoError(t, store.UpdateStreak())
	assert.Equal(t, 1, store.Streak())
}

func TestStreakResetsOnClockSkew(t *testing.T) {
	store, _ := newTestStore(t)

	fixedDay(store, "2025-03-10")
	require.NoError(t, store.UpdateStreak())
	// Clock jumped backwards: last active date is now in the future.
	fixedDay(store, "2025-03-08")
	require.NoError(t, store.UpdateStreak())

	assert.Equal(t, 1, store.Streak())
	assert.Equal(t, "2025-03-08", store.Record().LastActiveDate)
}

func TestRecordRoundTripsThroughStorage(t *testing.T) {
	storage := NewFileStorage(t.TempDir())
	store := NewStore(storage, StorageKey)
	fixedDay(store, "2025-03-10")

	require.NoError(t, store.MarkTopicComplete("python", "intro"))
	require.NoError(t, store.MarkProblemComplete("python", "intro", "p1"))
	require.NoError(t, store.SetSelectedLanguage("python"))
	require.NoError(t, store.UpdateStreak())

	reloaded := NewStore(storage, StorageKey)
	assert.Equal(t, store.Record(), reloaded.Record())
}

func TestPersistedLayoutIsStable(t *testing.T) {
	storage := NewFileStorage(t.TempDir())
	store := NewStore(storage, StorageKey)

	require.NoError(t, store.MarkProblemComplete("python", "intro", "p1"))

	data, found, err := storage.Load(StorageKey)
	require.NoError(t, err)
	require.True(t, found)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	problems := raw["completedProblems"].(map[string]interface{})
	assert.Equal(t, true, problems["python-intro-p1"])
	assert.Contains(t, raw, "completedTopics")
	assert.Contains(t, raw, "roadmapProgress")
}

func TestCorruptSnapshotFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	storage := NewFileStorage(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, StorageKey+".json"), []byte("{not json"), 0o644))

	store := NewStore(storage, StorageKey)

	assert.Equal(t, 0, store.Streak())
	assert.Empty(t, store.Record().CompletedTopics)
	assert.NoError(t, store.MarkTopicComplete("python", "intro"))
}

func TestMissingSnapshotStartsEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	assert.Equal(t, 0, store.Streak())
	assert.Equal(t, 0, store.ProblemsSolved())
	assert.Equal(t, "", store.SelectedLanguage())
}

func TestResetLanguageProgressScopesToOneLanguage(t *testing.T) {
	store, _ := newTestStore(t)
	fixedDay(store, "2025-03-10")

	require.NoError(t, store.MarkTopicComplete("python", "intro"))
	require.NoError(t, store.MarkTopicComplete("javascript", "intro"))
	require.NoError(t, store.MarkProblemComplete("python", "intro", "p1"))
	require.NoError(t, store.MarkProblemComplete("javascript", "dom", "p2"))
	require.NoError(t, store.UpdateStreak())

	require.NoError(t, store.ResetLanguageProgress("python"))

	assert.Equal(t, 0, store.TopicProgress("python"))
	assert.Equal(t, 1, store.TopicProgress("javascript"))
	assert.Equal(t, 1, store.ProblemsSolved())
	assert.Equal(t, 1, store.Streak(), "reset must not touch the streak")
}

func TestSummarize(t *testing.T) {
	store, _ := newTestStore(t)
	fixedDay(store, "2025-03-10")

	require.NoError(t, store.MarkTopicComplete("python", "intro"))
	require.NoError(t, store.MarkProblemComplete("python", "intro", "p1"))
	require.NoError(t, store.SetSelectedLanguage("python"))
	require.NoError(t, store.UpdateStreak())

	summary := store.Summarize()
	assert.Equal(t, 1, summary.Streak)
	assert.Equal(t, "python", summary.SelectedLanguage)
	assert.Equal(t, map[string]int{"python": 1}, summary.TopicsCompleted)
	assert.Equal(t, 1, summary.ProblemsSolved)
}

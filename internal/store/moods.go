package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// MoodLog is a single mood entry. Immutable after creation; RecordedAt is
// assigned by the store at insert time.
type MoodLog struct {
	Mood       string    `json:"mood"`
	Energy     string    `json:"energy"`
	Notes      string    `json:"notes,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// StoredMoodLog is the public view of a persisted mood log.
type StoredMoodLog struct {
	ID string `json:"id"`
	MoodLog
}

// CreateMoodLog stamps the log with the current time and appends it to the
// mood collection. The stored record (with RecordedAt set) is returned so
// callers can echo exactly what was written.
func (db *DB) CreateMoodLog(m MoodLog) (string, MoodLog, error) {
	m.RecordedAt = time.Now().UTC()
	id, err := db.CreateDocument(MoodCollection, m)
	if err != nil {
		return "", MoodLog{}, err
	}
	return id, m, nil
}

// ListMoodLogs returns all mood logs, newest first. Records without a
// recorded_at (written by some other client) decode to the zero time and
// sort as oldest.
func (db *DB) ListMoodLogs() ([]StoredMoodLog, error) {
	docs, err := db.ListDocuments(MoodCollection, nil)
	if err != nil {
		return nil, err
	}

	moods := make([]StoredMoodLog, 0, len(docs))
	for _, d := range docs {
		var m StoredMoodLog
		if err := json.Unmarshal(d.Body, &m.MoodLog); err != nil {
			return nil, fmt.Errorf("decode mood log %s: %w", d.ID, err)
		}
		m.ID = d.ID
		moods = append(moods, m)
	}

	// Insertion order and recorded_at normally agree; re-sort to honor the
	// recorded_at contract when they do not.
	sort.SliceStable(moods, func(i, j int) bool {
		return moods[i].RecordedAt.After(moods[j].RecordedAt)
	})
	return moods, nil
}

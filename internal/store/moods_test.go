package store

import (
	"testing"
	"time"
)

func TestCreateMoodLogStampsTime(t *testing.T) {
	db := testDB(t)

	before := time.Now().UTC().Add(-time.Second)
	id, stored, err := db.CreateMoodLog(MoodLog{Mood: "focused", Energy: "high", Notes: "deep work day"})
	if err != nil {
		t.Fatalf("CreateMoodLog: %v", err)
	}
	after := time.Now().UTC().Add(time.Second)

	if id == "" {
		t.Fatal("expected non-empty id")
	}
	if stored.RecordedAt.Before(before) || stored.RecordedAt.After(after) {
		t.Errorf("RecordedAt = %v, want between %v and %v", stored.RecordedAt, before, after)
	}
	if stored.Mood != "focused" || stored.Energy != "high" {
		t.Errorf("stored = %+v, fields not preserved", stored)
	}
}

func TestListMoodLogsNewestFirst(t *testing.T) {
	db := testDB(t)

	for _, mood := range []string{"tired", "ok", "great"} {
		if _, _, err := db.CreateMoodLog(MoodLog{Mood: mood, Energy: "medium"}); err != nil {
			t.Fatalf("CreateMoodLog: %v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	moods, err := db.ListMoodLogs()
	if err != nil {
		t.Fatalf("ListMoodLogs: %v", err)
	}
	if len(moods) != 3 {
		t.Fatalf("len(moods) = %d, want 3", len(moods))
	}
	if moods[0].Mood != "great" || moods[2].Mood != "tired" {
		t.Errorf("order = [%s %s %s], want newest first", moods[0].Mood, moods[1].Mood, moods[2].Mood)
	}
	for i := 1; i < len(moods); i++ {
		if moods[i].RecordedAt.After(moods[i-1].RecordedAt) {
			t.Errorf("moods[%d] newer than moods[%d]", i, i-1)
		}
	}
}

func TestListMoodLogsMissingTimestampSortsOldest(t *testing.T) {
	db := testDB(t)

	// A record written without recorded_at, as some other client might.
	if _, err := db.CreateDocument(MoodCollection, map[string]any{"mood": "mystery", "energy": "low"}); err != nil {
		t.Fatalf("CreateDocument: %v", err)
	}
	if _, _, err := db.CreateMoodLog(MoodLog{Mood: "stamped", Energy: "low"}); err != nil {
		t.Fatalf("CreateMoodLog: %v", err)
	}

	moods, err := db.ListMoodLogs()
	if err != nil {
		t.Fatalf("ListMoodLogs: %v", err)
	}
	if len(moods) != 2 {
		t.Fatalf("len(moods) = %d, want 2", len(moods))
	}
	if moods[0].Mood != "stamped" {
		t.Errorf("moods[0] = %q, want stamped first", moods[0].Mood)
	}
	if !moods[1].RecordedAt.IsZero() {
		t.Errorf("missing timestamp should decode to zero time, got %v", moods[1].RecordedAt)
	}
}

func TestListMoodLogsEmpty(t *testing.T) {
	db := testDB(t)

	moods, err := db.ListMoodLogs()
	if err != nil {
		t.Fatalf("ListMoodLogs: %v", err)
	}
	if moods == nil || len(moods) != 0 {
		t.Errorf("moods = %v, want empty slice", moods)
	}
}

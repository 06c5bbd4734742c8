package store

import (
	"encoding/json"
	"fmt"
)

// Collection names. The document layer is generic; these are the two
// collections braindash writes.
const (
	TaskCollection = "task"
	MoodCollection = "moodlog"
)

// Task is a captured task enriched with its categorization annotation.
// Tasks are append-only here; only the completed flag is expected to change
// later, and nothing deletes them.
type Task struct {
	Text       string   `json:"text"`
	Category   string   `json:"category,omitempty"`
	Energy     string   `json:"energy,omitempty"`
	Urgency    int      `json:"urgency"`
	Priority   int      `json:"priority"`
	Due        string   `json:"due,omitempty"`
	Tips       []string `json:"tips"`
	Mood       string   `json:"mood,omitempty"`
	UserEnergy string   `json:"user_energy,omitempty"`
	Completed  bool     `json:"completed"`
}

// StoredTask is the public view of a persisted task: the record plus its
// document id. Produced at the store boundary; stored bodies never carry
// their own id field.
type StoredTask struct {
	ID string `json:"id"`
	Task
}

// CreateTask appends a task to the task collection and returns its id.
func (db *DB) CreateTask(t Task) (string, error) {
	if t.Tips == nil {
		t.Tips = []string{}
	}
	return db.CreateDocument(TaskCollection, t)
}

// ListTasks returns all tasks, optionally filtered by exact match on the
// computed energy requirement. Ordering beyond newest-first insertion order
// is the caller's concern.
func (db *DB) ListTasks(energy string) ([]StoredTask, error) {
	var filter map[string]string
	if energy != "" {
		filter = map[string]string{"energy": energy}
	}

	docs, err := db.ListDocuments(TaskCollection, filter)
	if err != nil {
		return nil, err
	}

	tasks := make([]StoredTask, 0, len(docs))
	for _, d := range docs {
		var t StoredTask
		if err := json.Unmarshal(d.Body, &t.Task); err != nil {
			return nil, fmt.Errorf("decode task %s: %w", d.ID, err)
		}
		t.ID = d.ID
		if t.Tips == nil {
			t.Tips = []string{}
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

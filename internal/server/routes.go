package server

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/braindash/braindash/internal/categorize"
	"github.com/braindash/braindash/internal/store"
)

// maxCategorizeErrLen caps the diagnostic detail surfaced to clients when
// the categorizer fails.
const maxCategorizeErrLen = 100

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text   string `json:"text"`
		Mood   string `json:"mood"`
		Energy string `json:"energy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, `{"error":"text required"}`, http.StatusBadRequest)
		return
	}
	if req.Energy != "" && !categorize.ValidEnergy(req.Energy) {
		http.Error(w, `{"error":"energy must be low, medium or high"}`, http.StatusBadRequest)
		return
	}

	ai, err := s.categorizer.Categorize(r.Context(), req.Text, req.Mood, req.Energy)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "categorize: " + truncate(err.Error(), maxCategorizeErrLen),
		})
		return
	}

	task := store.Task{
		Text:       req.Text,
		Category:   ai.Category,
		Energy:     ai.Energy,
		Urgency:    ai.Urgency,
		Priority:   ai.Priority,
		Due:        ai.Due,
		Tips:       ai.Tips,
		Mood:       req.Mood,
		UserEnergy: req.Energy,
	}
	if task.Tips == nil {
		task.Tips = []string{}
	}

	id, err := s.db.CreateTask(task)
	if err != nil {
		http.Error(w, `{"error":"store task failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"id":   id,
		"task": task,
	})
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	energy := r.URL.Query().Get("energy")

	tasks, err := s.db.ListTasks(energy)
	if err != nil {
		http.Error(w, `{"error":"list tasks failed"}`, http.StatusInternalServerError)
		return
	}

	// Priority ordering is a presentation concern; the store returns
	// insertion order. Missing priority sorts as 0.
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Priority > tasks[j].Priority
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"tasks": tasks})
}

func (s *Server) handleLogMood(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mood   string `json:"mood"`
		Energy string `json:"energy"`
		Notes  string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}
	if req.Mood == "" {
		http.Error(w, `{"error":"mood required"}`, http.StatusBadRequest)
		return
	}
	if !categorize.ValidEnergy(req.Energy) {
		http.Error(w, `{"error":"energy must be low, medium or high"}`, http.StatusBadRequest)
		return
	}

	id, stored, err := s.db.CreateMoodLog(store.MoodLog{
		Mood:   req.Mood,
		Energy: req.Energy,
		Notes:  req.Notes,
	})
	if err != nil {
		http.Error(w, `{"error":"store mood failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"id":   id,
		"mood": stored,
	})
}

func (s *Server) handleListMood(w http.ResponseWriter, r *http.Request) {
	moods, err := s.db.ListMoodLogs()
	if err != nil {
		http.Error(w, `{"error":"list moods failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"moods": moods})
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

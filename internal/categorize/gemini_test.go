package categorize

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// geminiReply wraps an annotation JSON string in the generateContent
// response envelope.
func geminiReply(annotation string) string {
	env := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{
				"parts": []map[string]string{{"text": annotation}},
			}},
		},
	}
	b, _ := json.Marshal(env)
	return string(b)
}

func TestGeminiCategorize(t *testing.T) {
	var gotPath, gotPrompt string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
			gotPrompt = req.Contents[0].Parts[0].Text
		}
		w.Write([]byte(geminiReply(`{"category":"deep","urgency":3,"energy":"high","priority":72,"tips":["a","b","c"],"due":"today"}`)))
	}))
	defer ts.Close()

	g := NewGemini("test-key", "gemini-1.5-flash", ts.URL)
	a, err := g.Categorize(context.Background(), "write the report today", "focused", "high")
	if err != nil {
		t.Fatalf("Categorize: %v", err)
	}

	if gotPath != "/models/gemini-1.5-flash:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	if !strings.Contains(gotPrompt, "write the report today") {
		t.Errorf("prompt missing task text: %q", gotPrompt)
	}
	if !strings.Contains(gotPrompt, "focused") || !strings.Contains(gotPrompt, "high") {
		t.Errorf("prompt missing mood/energy: %q", gotPrompt)
	}

	if a.Category != "deep" || a.Urgency != 3 || a.Priority != 72 || a.Due != "today" {
		t.Errorf("annotation = %+v", a)
	}
}

func TestGeminiClampsOutOfRange(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geminiReply(`{"category":"errands","urgency":7,"energy":"extreme","priority":140}`)))
	}))
	defer ts.Close()

	g := NewGemini("test-key", "", ts.URL)
	a, err := g.Categorize(context.Background(), "anything", "", "")
	if err != nil {
		t.Fatalf("Categorize: %v", err)
	}

	if a.Category != "other" {
		t.Errorf("Category = %q, want other", a.Category)
	}
	if a.Urgency != 3 {
		t.Errorf("Urgency = %d, want 3", a.Urgency)
	}
	if a.Energy != "medium" {
		t.Errorf("Energy = %q, want medium", a.Energy)
	}
	if a.Priority != 100 {
		t.Errorf("Priority = %d, want 100", a.Priority)
	}
	if a.Tips == nil {
		t.Error("Tips = nil, want empty slice")
	}
}

func TestGeminiStripsCodeFences(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geminiReply("```json\n{\"category\":\"admin\",\"urgency\":1,\"energy\":\"low\",\"priority\":50,\"tips\":[]}\n```")))
	}))
	defer ts.Close()

	g := NewGemini("test-key", "", ts.URL)
	a, err := g.Categorize(context.Background(), "email bob", "", "")
	if err != nil {
		t.Fatalf("Categorize: %v", err)
	}
	if a.Category != "admin" {
		t.Errorf("Category = %q, want admin", a.Category)
	}
}

func TestGeminiAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"API key not valid"}}`, http.StatusBadRequest)
	}))
	defer ts.Close()

	g := NewGemini("bad-key", "", ts.URL)
	if _, err := g.Categorize(context.Background(), "anything", "", ""); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestGeminiNoCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer ts.Close()

	g := NewGemini("test-key", "", ts.URL)
	if _, err := g.Categorize(context.Background(), "anything", "", ""); err == nil {
		t.Error("expected error for empty candidates")
	}
}

func TestGeminiMalformedAnnotation(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geminiReply("sure! here is your task categorized:")))
	}))
	defer ts.Close()

	g := NewGemini("test-key", "", ts.URL)
	if _, err := g.Categorize(context.Background(), "anything", "", ""); err == nil {
		t.Error("expected error for non-JSON annotation")
	}
}

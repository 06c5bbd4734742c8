package categorize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const geminiAPI = "https://generativelanguage.googleapis.com/v1beta"

// Gemini calls the Gemini generateContent API to categorize tasks. It honors
// the same contract as the heuristic: same input shape, same output shape,
// same invariants on the result.
type Gemini struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGemini creates a new Gemini API categorizer. baseURL overrides the API
// endpoint; pass "" for production.
func NewGemini(apiKey, model, baseURL string) *Gemini {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	if baseURL == "" {
		baseURL = geminiAPI
	}
	return &Gemini{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Categorize sends the task to Gemini and parses the JSON annotation from
// its reply. Out-of-range values in the reply are clamped to the annotation
// invariants rather than rejected.
func (g *Gemini) Categorize(ctx context.Context, text, mood, energy string) (*Annotation, error) {
	reqBody := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": categorizePrompt(text, mood, energy)}}},
		},
		"generationConfig": map[string]any{
			"temperature":      0.2,
			"responseMimeType": "application/json",
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini api status %d: %s", resp.StatusCode, respBody)
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	var a Annotation
	raw := stripFences(result.Candidates[0].Content.Parts[0].Text)
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return nil, fmt.Errorf("parse annotation: %w", err)
	}
	a.normalize()
	return &a, nil
}

func categorizePrompt(text, mood, energy string) string {
	var b strings.Builder
	b.WriteString(`Categorize this task. Reply with a single JSON object, no prose:
{"category": "admin|deep|creative|social|other", "urgency": 0-3, "energy": "low|medium|high", "priority": 0-100, "tips": ["...", "...", "..."], "due": "today|tomorrow or omit"}

energy is the energy the task demands. priority weighs urgency and fit with the user's current state. tips are three short, concrete nudges for starting the task.

Task: `)
	b.WriteString(text)
	if mood != "" {
		b.WriteString("\nUser mood: ")
		b.WriteString(mood)
	}
	if energy != "" {
		b.WriteString("\nUser energy: ")
		b.WriteString(energy)
	}
	return b.String()
}

// stripFences removes a markdown code fence around a JSON reply, which some
// models add despite the JSON mime type.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

// normalize forces a remote annotation back inside the contract: known
// enums, urgency in [0,3], priority in [0,100], non-nil tips.
func (a *Annotation) normalize() {
	switch a.Category {
	case CategoryAdmin, CategoryDeep, CategoryCreative, CategorySocial, CategoryOther:
	default:
		a.Category = CategoryOther
	}
	if !ValidEnergy(a.Energy) {
		a.Energy = EnergyMedium
	}
	a.Urgency = clamp(a.Urgency, 0, 3)
	a.Priority = clamp(a.Priority, 0, 100)
	if a.Tips == nil {
		a.Tips = []string{}
	}
}

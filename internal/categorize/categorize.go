package categorize

import (
	"context"

	"github.com/braindash/braindash/internal/config"
)

// Energy levels shared by task annotations and mood logs.
const (
	EnergyLow    = "low"
	EnergyMedium = "medium"
	EnergyHigh   = "high"
)

// Task categories, checked in this order by the heuristic.
const (
	CategoryAdmin    = "admin"
	CategoryDeep     = "deep"
	CategoryCreative = "creative"
	CategorySocial   = "social"
	CategoryOther    = "other"
)

// ValidEnergy reports whether s is one of the recognized energy levels.
func ValidEnergy(s string) bool {
	switch s {
	case EnergyLow, EnergyMedium, EnergyHigh:
		return true
	}
	return false
}

// Annotation is the structured enrichment produced for a task.
// Energy is the estimated requirement of the task itself, not the caller's
// self-reported level.
type Annotation struct {
	Category string   `json:"category"`
	Urgency  int      `json:"urgency"`
	Energy   string   `json:"energy"`
	Priority int      `json:"priority"`
	Tips     []string `json:"tips"`
	Due      string   `json:"due,omitempty"`
}

// Categorizer turns raw task text (plus optional mood and self-reported
// energy) into an Annotation. Implementations: Heuristic (local, pure) and
// Gemini (remote). Mock serves tests.
type Categorizer interface {
	Categorize(ctx context.Context, text, mood, energy string) (*Annotation, error)
}

// New selects the categorizer implementation from config, once at startup.
// A configured Gemini key selects the remote path; otherwise the heuristic
// is authoritative.
func New(cfg config.AIConfig) Categorizer {
	if cfg.GeminiKey != "" {
		return NewGemini(cfg.GeminiKey, cfg.Model, cfg.Endpoint)
	}
	return Heuristic{}
}

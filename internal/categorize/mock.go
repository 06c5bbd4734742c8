package categorize

import "context"

// Mock is a test double for the Categorizer interface.
type Mock struct {
	Annotation *Annotation
	Err        error
	Calls      []string // records task text sent
}

// Categorize records the call and returns the mock annotation.
func (m *Mock) Categorize(ctx context.Context, text, mood, energy string) (*Annotation, error) {
	m.Calls = append(m.Calls, text)
	return m.Annotation, m.Err
}

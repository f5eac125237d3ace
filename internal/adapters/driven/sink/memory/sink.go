// Package memory provides an in-memory artifact sink for tests and dry runs.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/smarthomej/release-tools/internal/core/ports/driven"
)

// Ensure Sink implements the interface.
var _ driven.ArtifactSink = (*Sink)(nil)

// Sink is an in-memory implementation of driven.ArtifactSink.
type Sink struct {
	mu    sync.RWMutex
	files map[string][]byte
	fail  map[string]error
}

// NewSink creates an empty in-memory sink.
func NewSink() *Sink {
	return &Sink{
		files: make(map[string][]byte),
		fail:  make(map[string]error),
	}
}

// FailOn makes writes of name return err.
func (s *Sink) FailOn(name string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[name] = err
}

// Write stores a copy of content under name.
func (s *Sink) Write(_ context.Context, name string, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail[name]; err != nil {
		return err
	}
	s.files[name] = slices.Clone(content)
	return nil
}

// Location returns the name prefixed with "memory:".
func (s *Sink) Location(name string) string {
	return "memory:" + name
}

// File returns the content written under name.
func (s *Sink) File(name string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.files[name]
	return slices.Clone(content), ok
}

// Names returns the names of all written files, sorted.
func (s *Sink) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Package file writes release artifacts into an output directory.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/smarthomej/release-tools/internal/core/domain"
	"github.com/smarthomej/release-tools/internal/core/ports/driven"
)

// Ensure Sink implements the interface.
var _ driven.ArtifactSink = (*Sink)(nil)

// Sink writes artifacts as files below a directory.
// The directory is created on the first write.
type Sink struct {
	dir string
}

// NewSink creates a sink writing into dir.
func NewSink(dir string) *Sink {
	if dir == "" {
		dir = "."
	}
	return &Sink{dir: dir}
}

// Write replaces the file name with content.
func (s *Sink) Write(ctx context.Context, name string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%w: artifact name %q", domain.ErrInvalidInput, name)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	return os.WriteFile(s.Location(name), content, 0o644)
}

// Location returns the path the artifact is written to.
func (s *Sink) Location(name string) string {
	return filepath.Join(s.dir, name)
}

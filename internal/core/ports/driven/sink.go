package driven

import "context"

// ArtifactSink persists rendered artifacts by file name.
type ArtifactSink interface {
	// Write stores content under name, replacing any previous artifact.
	Write(ctx context.Context, name string, content []byte) error

	// Location returns where an artifact named name is stored.
	Location(name string) string
}

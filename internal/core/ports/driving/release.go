package driving

import (
	"context"

	"github.com/smarthomej/release-tools/internal/core/domain"
)

// ReleaseService generates release artifacts for a release tag.
type ReleaseService interface {
	// Generate fetches pull requests once and renders the requested artifacts.
	// The returned report is non-nil whenever records were fetched, even when
	// an error is returned.
	Generate(ctx context.Context, tag domain.ReleaseTag, artifacts ...domain.Artifact) (*RunReport, error)
}

// RunReport summarises one generation run.
type RunReport struct {
	// RunID identifies the run in logs.
	RunID string

	// Tag is the release tag the run produced artifacts for.
	Tag string

	// Pages is the number of pages requested from the source.
	Pages int

	// Fetched is the number of raw records received.
	Fetched int

	// Included is the number of entries that made it into the release.
	Included int

	// Rejected counts dropped records per reason.
	Rejected map[domain.RejectReason]int

	// Written lists the location of every persisted artifact.
	Written []string

	// Warnings are non-fatal problems the operator should see.
	Warnings []string

	// Failed holds artifacts that were rendered but could not be persisted.
	Failed []ArtifactFailure
}

// ArtifactFailure describes one artifact that could not be written.
type ArtifactFailure struct {
	Name string
	Err  error
}

// RejectedTotal returns the number of dropped records.
func (r *RunReport) RejectedTotal() int {
	total := 0
	for _, n := range r.Rejected {
		total += n
	}
	return total
}

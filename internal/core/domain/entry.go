package domain

import "slices"

// ClassifiedEntry is a merged pull request that belongs to a module and a
// release version. Entries are values; the With* helpers return copies.
type ClassifiedEntry struct {
	Module      string
	Version     Version
	Description string
	Labels      []string
	IssueNumber int
	URL         string
}

// NewClassifiedEntry builds an entry, copying the label slice.
func NewClassifiedEntry(module string, version Version, description string, labels []string, issue int, url string) ClassifiedEntry {
	return ClassifiedEntry{
		Module:      module,
		Version:     version,
		Description: description,
		Labels:      slices.Clone(labels),
		IssueNumber: issue,
		URL:         url,
	}
}

// WithoutLabels returns a copy of the entry without the given labels.
func (e ClassifiedEntry) WithoutLabels(drop map[string]struct{}) ClassifiedEntry {
	kept := make([]string, 0, len(e.Labels))
	for _, l := range e.Labels {
		if _, ok := drop[l]; !ok {
			kept = append(kept, l)
		}
	}
	e.Labels = kept
	return e
}

// Candidate is the classifier's output: module and description resolved,
// version still raw.
type Candidate struct {
	Module      string
	Description string
	Milestone   string
	Labels      []string
	IssueNumber int
	URL         string
}

// RejectReason names why a record was left out of a release.
type RejectReason string

// Rejection reasons. None of them are fatal.
const (
	RejectNotMerged        RejectReason = "not-merged"
	RejectMissingTitle     RejectReason = "missing-title"
	RejectMissingMilestone RejectReason = "missing-milestone"
	RejectNoModulePrefix   RejectReason = "no-module-prefix"
	RejectUnknownModule    RejectReason = "unknown-module"
	RejectEmptyDescription RejectReason = "empty-description"
	RejectInvalidMilestone RejectReason = "invalid-milestone"
	RejectFutureRelease    RejectReason = "future-release"
)

// VersionSection groups the entries of one module released in one version.
type VersionSection struct {
	Version Version
	Entries []ClassifiedEntry
}

// ModuleSection holds every version section of one module, newest first.
type ModuleSection struct {
	Module   Module
	Versions []VersionSection
}

// IsEmpty reports whether no entries were released for the module.
func (s ModuleSection) IsEmpty() bool {
	return len(s.Versions) == 0
}

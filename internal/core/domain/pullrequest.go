package domain

import "time"

// PullRequestRecord is one closed change request as received from a source.
// Optional fields are pointers: nil means the tracker did not supply them.
type PullRequestRecord struct {
	// ID is the tracker's internal record identifier.
	ID int64

	// Number is the issue number derived from the record's API URL.
	Number int

	// Title is the pull request title, e.g. "[knx] Fix DPT parsing".
	Title *string

	// MergedAt is nil for pull requests that were closed without merging.
	MergedAt *time.Time

	// MilestoneTitle is the title of the milestone the change was merged into.
	MilestoneTitle *string

	// Labels are the label names in tracker order.
	Labels []string

	// HTMLURL links to the pull request page.
	HTMLURL string

	// APIURL is the REST resource URL of the record.
	APIURL string
}

// IsMerged reports whether the record carries a merge timestamp.
func (r *PullRequestRecord) IsMerged() bool {
	return r.MergedAt != nil
}

// TitleText returns the title or an empty string.
func (r *PullRequestRecord) TitleText() string {
	if r.Title == nil {
		return ""
	}
	return *r.Title
}

// Milestone returns the milestone title or an empty string.
func (r *PullRequestRecord) Milestone() string {
	if r.MilestoneTitle == nil {
		return ""
	}
	return *r.MilestoneTitle
}

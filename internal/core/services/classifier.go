package services

import (
	"strings"

	"github.com/smarthomej/release-tools/internal/core/domain"
)

// Classification is the outcome of classifying one record: either an
// accepted candidate or a named rejection reason.
type Classification struct {
	Candidate domain.Candidate
	Reason    domain.RejectReason
}

// Accepted reports whether the record became a candidate.
func (c Classification) Accepted() bool {
	return c.Reason == ""
}

func rejected(reason domain.RejectReason) Classification {
	return Classification{Reason: reason}
}

// Classifier extracts module and description from pull request titles.
type Classifier struct {
	registry *domain.ModuleRegistry
}

// NewClassifier creates a classifier matching titles against registry.
func NewClassifier(registry *domain.ModuleRegistry) *Classifier {
	return &Classifier{registry: registry}
}

// Classify decides whether a record takes part in a release.
// A record is accepted only when it is merged, has a title and a milestone,
// and its title reads "[<module>] <description>" for a registered module.
func (c *Classifier) Classify(record domain.PullRequestRecord) Classification {
	switch {
	case !record.IsMerged():
		return rejected(domain.RejectNotMerged)
	case record.Title == nil:
		return rejected(domain.RejectMissingTitle)
	case record.MilestoneTitle == nil:
		return rejected(domain.RejectMissingMilestone)
	}

	id, description, ok := splitTitle(*record.Title)
	if !ok {
		return rejected(domain.RejectNoModulePrefix)
	}

	module, known := c.registry.Resolve(id)
	if !known {
		return rejected(domain.RejectUnknownModule)
	}
	if description == "" {
		return rejected(domain.RejectEmptyDescription)
	}

	return Classification{
		Candidate: domain.Candidate{
			Module:      module,
			Description: description,
			Milestone:   *record.MilestoneTitle,
			Labels:      record.Labels,
			IssueNumber: record.Number,
			URL:         record.HTMLURL,
		},
	}
}

// splitTitle splits "[id] description" at the first closing bracket.
// The bracket must be followed by whitespace or end the title.
func splitTitle(title string) (id, description string, ok bool) {
	if !strings.HasPrefix(title, "[") {
		return "", "", false
	}

	end := strings.IndexByte(title, ']')
	if end <= 1 {
		return "", "", false
	}

	rest := title[end+1:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", "", false
	}

	return title[1:end], strings.TrimSpace(rest), true
}

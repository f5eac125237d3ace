package github

import (
	"regexp"
	"strconv"

	gh "github.com/google/go-github/v80/github"

	"github.com/smarthomej/release-tools/internal/core/domain"
)

// trailingNumber captures the last path segment of an API URL.
var trailingNumber = regexp.MustCompile(`/(\d+)$`)

// ToRecord converts a go-github pull request into a domain record.
// Fields GitHub left out stay nil.
func ToRecord(pr *gh.PullRequest) domain.PullRequestRecord {
	record := domain.PullRequestRecord{
		ID:      pr.GetID(),
		Number:  issueNumber(pr),
		HTMLURL: pr.GetHTMLURL(),
		APIURL:  pr.GetURL(),
	}

	if pr.Title != nil {
		title := pr.GetTitle()
		record.Title = &title
	}

	if pr.MergedAt != nil {
		merged := pr.MergedAt.Time
		record.MergedAt = &merged
	}

	if pr.Milestone != nil && pr.Milestone.Title != nil {
		title := pr.Milestone.GetTitle()
		record.MilestoneTitle = &title
	}

	labels := make([]string, 0, len(pr.Labels))
	for _, l := range pr.Labels {
		labels = append(labels, l.GetName())
	}
	record.Labels = labels

	return record
}

// issueNumber reads the number from the API URL, falling back to the
// number field.
func issueNumber(pr *gh.PullRequest) int {
	if m := trailingNumber.FindStringSubmatch(pr.GetURL()); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return pr.GetNumber()
}

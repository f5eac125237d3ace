package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"

	"github.com/smarthomej/release-tools/internal/core/domain"
	"github.com/smarthomej/release-tools/internal/core/ports/driven"
	"github.com/smarthomej/release-tools/internal/logger"
)

// PerPage is the page size requested from the API.
const PerPage = 100

// Ensure Source implements the interface.
var _ driven.PullRequestSource = (*Source)(nil)

// Source serves closed pull requests of one repository page by page.
type Source struct {
	client *Client
	owner  string
	repo   string
}

// New creates a source for the configured repository.
func New(ctx context.Context, cfg Config) (*Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !cfg.Authenticated() {
		logger.Warn("no GitHub token configured, using anonymous access (%d requests/hour)", AnonymousRateLimit)
	}
	return NewWithClient(NewClient(ctx, cfg.Token), cfg.Owner, cfg.Repo), nil
}

// NewWithClient creates a source on top of an existing client.
func NewWithClient(client *Client, owner, repo string) *Source {
	return &Source{client: client, owner: owner, repo: repo}
}

// Name returns "github:<owner>/<repo>".
func (s *Source) Name() string {
	return fmt.Sprintf("github:%s/%s", s.owner, s.repo)
}

// FetchPage returns page number page (1-based) of closed pull requests.
func (s *Source) FetchPage(ctx context.Context, page int) ([]domain.PullRequestRecord, error) {
	opts := &gh.PullRequestListOptions{
		State: "closed",
		ListOptions: gh.ListOptions{
			Page:    page,
			PerPage: PerPage,
		},
	}

	prs, err := s.client.ListPullRequests(ctx, s.owner, s.repo, opts)
	if err != nil {
		return nil, err
	}

	records := make([]domain.PullRequestRecord, 0, len(prs))
	for _, pr := range prs {
		records = append(records, ToRecord(pr))
	}
	return records, nil
}

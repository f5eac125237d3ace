package driven

import (
	"context"

	"github.com/smarthomej/release-tools/internal/core/domain"
)

// PullRequestSource supplies closed pull requests of the tracked repository.
// Each connector type (github, jsondump) implements this interface.
type PullRequestSource interface {
	// Name returns the source identifier for logging.
	Name() string

	// FetchPage returns the records of one page, 1-based.
	// A page shorter than the page size is the last one; an empty
	// page is valid. Implementations must not retry.
	FetchPage(ctx context.Context, page int) ([]domain.PullRequestRecord, error)
}

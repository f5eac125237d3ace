package services

import (
	"context"
	"fmt"
	"iter"

	"github.com/smarthomej/release-tools/internal/core/domain"
	"github.com/smarthomej/release-tools/internal/core/ports/driven"
	"github.com/smarthomej/release-tools/internal/logger"
)

// PageSize is the number of records a full page holds.
// A shorter page ends pagination.
const PageSize = 100

// FetchError reports the page at which fetching stopped.
type FetchError struct {
	Page int
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch page %d: %v", e.Page, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Pages yields the pages of src in order, starting at page 1, and stops
// after the first page holding fewer than PageSize records or after the
// first error. Pages are requested one at a time.
func Pages(ctx context.Context, src driven.PullRequestSource) iter.Seq2[[]domain.PullRequestRecord, error] {
	return func(yield func([]domain.PullRequestRecord, error) bool) {
		for page := 1; ; page++ {
			if err := ctx.Err(); err != nil {
				yield(nil, &FetchError{Page: page, Err: err})
				return
			}

			records, err := src.FetchPage(ctx, page)
			if err != nil {
				yield(nil, &FetchError{Page: page, Err: err})
				return
			}

			logger.Debug("%s: page %d returned %d records", src.Name(), page, len(records))

			if !yield(records, nil) || len(records) < PageSize {
				return
			}
		}
	}
}

// FetchAll materialises every page of src into one owned slice.
// On failure the records of the pages fetched so far are returned
// together with a *FetchError.
func FetchAll(ctx context.Context, src driven.PullRequestSource) ([]domain.PullRequestRecord, int, error) {
	if src == nil {
		return nil, 0, domain.ErrSourceUnavailable
	}

	var all []domain.PullRequestRecord
	pages := 0
	for records, err := range Pages(ctx, src) {
		pages++
		if err != nil {
			return all, pages, err
		}
		all = append(all, records...)
	}
	return all, pages, nil
}

// Package memory provides a pull request source backed by a slice.
package memory

import (
	"context"
	"sync"

	"github.com/smarthomej/release-tools/internal/core/domain"
	"github.com/smarthomej/release-tools/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.PullRequestSource = (*Source)(nil)

// Source serves records from memory in fixed-size pages.
type Source struct {
	name     string
	records  []domain.PullRequestRecord
	pageSize int

	mu       sync.Mutex
	failPage int
	failErr  error
	requests []int
}

// NewSource creates a source serving records in pages of pageSize.
func NewSource(name string, records []domain.PullRequestRecord, pageSize int) *Source {
	if pageSize <= 0 {
		pageSize = 100
	}
	return &Source{
		name:     name,
		records:  append([]domain.PullRequestRecord(nil), records...),
		pageSize: pageSize,
	}
}

// FailAt makes requests for page return err.
func (s *Source) FailAt(page int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failPage = page
	s.failErr = err
}

// Name returns the source name.
func (s *Source) Name() string {
	return s.name
}

// FetchPage returns the 1-based page of records. Pages past the end are empty.
func (s *Source) FetchPage(ctx context.Context, page int) ([]domain.PullRequestRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, page)

	if s.failErr != nil && page == s.failPage {
		return nil, s.failErr
	}
	if page < 1 {
		return nil, domain.ErrInvalidInput
	}

	start := (page - 1) * s.pageSize
	if start >= len(s.records) {
		return []domain.PullRequestRecord{}, nil
	}
	end := min(start+s.pageSize, len(s.records))
	return append([]domain.PullRequestRecord(nil), s.records[start:end]...), nil
}

// Requests returns the pages requested so far, in order.
func (s *Source) Requests() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.requests...)
}

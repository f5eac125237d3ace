// Package jsondump replays pull requests exported from the GitHub REST API.
//
// A dump is either one JSON file holding an array of pull request objects
// or a directory of such files, read in file-name order. The records are
// served in pages like the live API, so a run against a dump exercises the
// same pipeline as a run against GitHub.
package jsondump

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	gh "github.com/google/go-github/v80/github"

	"github.com/smarthomej/release-tools/internal/connectors/github"
	"github.com/smarthomej/release-tools/internal/core/domain"
	"github.com/smarthomej/release-tools/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.PullRequestSource = (*Source)(nil)

// Source serves the records of a dump in pages of github.PerPage.
type Source struct {
	path    string
	records []domain.PullRequestRecord
}

// Open reads the dump at path.
func Open(path string) (*Source, error) {
	files, err := dumpFiles(path)
	if err != nil {
		return nil, err
	}

	var records []domain.PullRequestRecord
	for _, file := range files {
		prs, err := readFile(file)
		if err != nil {
			return nil, err
		}
		for _, pr := range prs {
			records = append(records, github.ToRecord(pr))
		}
	}

	return &Source{path: path, records: records}, nil
}

// dumpFiles lists the JSON files making up the dump.
func dumpFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open dump: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	files, err := filepath.Glob(filepath.Join(path, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list dump: %w", err)
	}
	slices.Sort(files)
	return files, nil
}

func readFile(file string) ([]*gh.PullRequest, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read dump: %w", err)
	}

	var prs []*gh.PullRequest
	if err := json.Unmarshal(data, &prs); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, file, err)
	}
	return prs, nil
}

// Name returns "dump:<path>".
func (s *Source) Name() string {
	return "dump:" + s.path
}

// Len returns the number of records in the dump.
func (s *Source) Len() int {
	return len(s.records)
}

// FetchPage returns page number page (1-based). Pages past the end are empty.
func (s *Source) FetchPage(ctx context.Context, page int) ([]domain.PullRequestRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if page < 1 {
		return nil, fmt.Errorf("%w: page %d", domain.ErrInvalidInput, page)
	}

	start := (page - 1) * github.PerPage
	if start >= len(s.records) {
		return []domain.PullRequestRecord{}, nil
	}
	end := min(start+github.PerPage, len(s.records))
	return slices.Clone(s.records[start:end]), nil
}

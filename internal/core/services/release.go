package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/smarthomej/release-tools/internal/core/domain"
	"github.com/smarthomej/release-tools/internal/core/ports/driven"
	"github.com/smarthomej/release-tools/internal/core/ports/driving"
	"github.com/smarthomej/release-tools/internal/logger"
	"github.com/smarthomej/release-tools/internal/renderers/addons"
	"github.com/smarthomej/release-tools/internal/renderers/markdown"
)

// Ensure ReleaseService implements the interface.
var _ driving.ReleaseService = (*ReleaseService)(nil)

// ReleaseService runs the release pipeline:
// fetch, classify, normalise, aggregate, render and write.
type ReleaseService struct {
	cfg     *domain.ReleaseConfig
	source  driven.PullRequestSource
	sink    driven.ArtifactSink
	readmes driven.ReadmeSource

	classifier *Classifier
	normalizer *VersionNormalizer

	strictFetch bool
}

// ReleaseOption customises a ReleaseService.
type ReleaseOption func(*ReleaseService)

// WithReadmeSource sets where module READMEs are read from for the
// add-on catalogue. Without one, catalogue entries carry no title.
func WithReadmeSource(r driven.ReadmeSource) ReleaseOption {
	return func(s *ReleaseService) {
		s.readmes = r
	}
}

// WithStrictFetch makes a failed page abort the run instead of rendering
// the pages fetched so far.
func WithStrictFetch(strict bool) ReleaseOption {
	return func(s *ReleaseService) {
		s.strictFetch = strict
	}
}

// NewReleaseService creates a release service. The configuration must have
// been validated.
func NewReleaseService(
	cfg *domain.ReleaseConfig,
	source driven.PullRequestSource,
	sink driven.ArtifactSink,
	opts ...ReleaseOption,
) *ReleaseService {
	s := &ReleaseService{
		cfg:        cfg,
		source:     source,
		sink:       sink,
		classifier: NewClassifier(cfg.Registry()),
		normalizer: NewVersionNormalizer(cfg.Milestones),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// artifactFile is one rendered output awaiting persistence.
type artifactFile struct {
	name    string
	content []byte
}

// Generate renders the requested artifacts for tag; all of them when none
// are named. Records are fetched once per run. Files that fail to write do
// not stop the others; their errors are joined into the returned error.
func (s *ReleaseService) Generate(ctx context.Context, tag domain.ReleaseTag, artifacts ...domain.Artifact) (*driving.RunReport, error) {
	if tag.IsZero() {
		return nil, domain.ErrInvalidReleaseTag
	}
	if s.sink == nil {
		return nil, fmt.Errorf("generate: artifact sink not configured")
	}
	if len(artifacts) == 0 {
		artifacts = domain.AllArtifacts()
	}
	for _, a := range artifacts {
		if !slices.Contains(domain.AllArtifacts(), a) {
			return nil, fmt.Errorf("%w: unknown artifact %q", domain.ErrInvalidInput, a)
		}
	}

	report := &driving.RunReport{
		RunID:    uuid.NewString(),
		Tag:      tag.String(),
		Rejected: make(map[domain.RejectReason]int),
	}
	logger.Section(fmt.Sprintf("Release %s (run %s)", tag, report.RunID))

	var entries []domain.ClassifiedEntry
	if needsRecords(artifacts) {
		var err error
		entries, err = s.collect(ctx, tag, report)
		if err != nil {
			return report, err
		}
	}

	var files []artifactFile
	for _, a := range artifacts {
		rendered, err := s.render(ctx, a, tag, entries, report)
		if err != nil {
			return report, fmt.Errorf("render %s: %w", a, err)
		}
		files = append(files, rendered...)
	}

	var errs []error
	for _, f := range files {
		if err := s.sink.Write(ctx, f.name, f.content); err != nil {
			logger.Error("write %s: %v", f.name, err)
			report.Failed = append(report.Failed, driving.ArtifactFailure{Name: f.name, Err: err})
			errs = append(errs, fmt.Errorf("write %s: %w", f.name, err))
			continue
		}
		location := s.sink.Location(f.name)
		logger.Info("wrote %s", location)
		report.Written = append(report.Written, location)
	}

	return report, errors.Join(errs...)
}

// needsRecords reports whether any artifact is built from pull requests.
func needsRecords(artifacts []domain.Artifact) bool {
	for _, a := range artifacts {
		if a != domain.ArtifactAddons {
			return true
		}
	}
	return false
}

// collect fetches every record and turns the eligible ones into entries.
func (s *ReleaseService) collect(ctx context.Context, tag domain.ReleaseTag, report *driving.RunReport) ([]domain.ClassifiedEntry, error) {
	if s.source == nil {
		return nil, domain.ErrSourceUnavailable
	}

	records, pages, err := FetchAll(ctx, s.source)
	report.Pages = pages
	report.Fetched = len(records)
	if err != nil {
		if s.strictFetch || ctx.Err() != nil || errors.Is(err, domain.ErrSourceUnavailable) {
			return nil, err
		}
		logger.Warn("%v; continuing with %d records", err, len(records))
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("%v: output covers the %d records fetched before the failure", err, len(records)))
	}

	entries := make([]domain.ClassifiedEntry, 0, len(records))
	for _, record := range records {
		c := s.classifier.Classify(record)
		if !c.Accepted() {
			s.reject(report, record, c.Reason)
			continue
		}

		entry, reason := s.normalizer.Normalize(c.Candidate, tag)
		if reason != "" {
			s.reject(report, record, reason)
			continue
		}
		entries = append(entries, entry)
	}

	report.Included = len(entries)
	logger.Info("%d of %d records included, %d rejected", report.Included, report.Fetched, report.RejectedTotal())
	return entries, nil
}

func (s *ReleaseService) reject(report *driving.RunReport, record domain.PullRequestRecord, reason domain.RejectReason) {
	report.Rejected[reason]++
	logger.Debug("skip #%d %q: %s", record.Number, record.TitleText(), reason)
}

// render produces the files of one artifact.
func (s *ReleaseService) render(
	ctx context.Context,
	artifact domain.Artifact,
	tag domain.ReleaseTag,
	entries []domain.ClassifiedEntry,
	report *driving.RunReport,
) ([]artifactFile, error) {
	opts := markdown.OptionsFromConfig(s.cfg, tag)
	labels := s.cfg.Publish.AdministrativeLabels

	switch artifact {
	case domain.ArtifactChangelog:
		sections := GroupByModule(StripLabels(entries, labels), s.cfg.Modules)
		return []artifactFile{{name: markdown.ChangelogFileName, content: markdown.Changelog(sections, opts)}}, nil

	case domain.ArtifactMarketplace:
		sections := GroupByModule(entries, s.cfg.Modules)
		files := make([]artifactFile, 0, len(sections))
		for _, section := range sections {
			files = append(files, artifactFile{
				name:    markdown.MarketplaceFileName(section.Module),
				content: markdown.MarketplacePost(section, opts),
			})
		}
		return files, nil

	case domain.ArtifactReleaseNotes:
		rows := ReleaseTable(StripLabels(SelectVersion(entries, tag.Version()), labels))
		return []artifactFile{{name: markdown.ReleaseNotesFileName(tag), content: markdown.ReleaseNotes(rows, opts)}}, nil

	case domain.ArtifactAddons:
		content, err := s.catalogue(ctx, tag, report)
		if err != nil {
			return nil, err
		}
		return []artifactFile{{name: addons.FileName, content: content}}, nil
	}

	return nil, fmt.Errorf("%w: unknown artifact %q", domain.ErrInvalidInput, artifact)
}

// catalogue describes every configured module from its README.
func (s *ReleaseService) catalogue(ctx context.Context, tag domain.ReleaseTag, report *driving.RunReport) ([]byte, error) {
	opts := addons.OptionsFromConfig(s.cfg, tag)

	entries := make([]addons.Addon, 0, len(s.cfg.Modules))
	for _, m := range s.cfg.Modules {
		if m.Unlisted {
			continue
		}

		var readme []string
		if s.readmes != nil {
			lines, err := s.readmes.Readme(ctx, m)
			if err != nil {
				logger.Warn("readme of %s: %v", m.ID, err)
				report.Warnings = append(report.Warnings, fmt.Sprintf("readme of %s: %v", m.ID, err))
			}
			readme = lines
		}
		entries = append(entries, addons.Describe(m, readme, opts))
	}

	return addons.Catalogue(entries)
}

// Package markdown renders changelogs, marketplace posts and release notes.
package markdown

import (
	"path"

	"github.com/smarthomej/release-tools/internal/core/domain"
)

// Options carries the release tag and the publishing settings.
type Options struct {
	Tag                  domain.ReleaseTag
	Distribution         string
	BundlePrefix         string
	DocsURL              string
	DownloadURL          string
	InfrastructureModule string
}

// OptionsFromConfig builds render options for tag.
func OptionsFromConfig(cfg *domain.ReleaseConfig, tag domain.ReleaseTag) Options {
	return Options{
		Tag:                  tag,
		Distribution:         cfg.Publish.Distribution,
		BundlePrefix:         cfg.Publish.BundlePrefix,
		DocsURL:              cfg.Publish.DocsURL,
		DownloadURL:          cfg.Publish.DownloadURL,
		InfrastructureModule: cfg.Publish.InfrastructureModule,
	}
}

// bundle returns the artifact name of m.
func (o Options) bundle(m domain.Module) string {
	return m.BundleName(o.BundlePrefix)
}

// downloadName is the file name the download link points at.
func downloadName(url string) string {
	return path.Base(url)
}

// Package addons renders the add-on catalogue (addons.json) consumed by
// the marketplace.
package addons

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/smarthomej/release-tools/internal/core/domain"
	"github.com/smarthomej/release-tools/internal/renderers"
)

// FileName is the file name of the catalogue.
const FileName = "addons.json"

const (
	maturityStable = "stable"
	contentTypeKar = "application/vnd.openhab.feature;type=karfile"
)

// Addon is one catalogue entry.
type Addon struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Version     string `json:"version"`
	Author      string `json:"author"`
	Maturity    string `json:"maturity"`
	ContentType string `json:"content_type"`
	Link        string `json:"link"`
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// Options carries the tag and the catalogue settings.
type Options struct {
	Tag          domain.ReleaseTag
	Distribution string
	BundlePrefix string
	DocsURL      string
	DownloadURL  string
	IDPrefix     string
	Author       string
}

// OptionsFromConfig builds catalogue options for tag.
func OptionsFromConfig(cfg *domain.ReleaseConfig, tag domain.ReleaseTag) Options {
	return Options{
		Tag:          tag,
		Distribution: cfg.Publish.Distribution,
		BundlePrefix: cfg.Publish.BundlePrefix,
		DocsURL:      cfg.Publish.DocsURL,
		DownloadURL:  cfg.Publish.DownloadURL,
		IDPrefix:     cfg.Publish.AddonIDPrefix,
		Author:       cfg.Publish.AddonAuthor,
	}
}

// Describe builds the catalogue entry of a module. The README's first line
// ("# Title") becomes the title and the paragraph starting on its third line
// the description; a README with fewer than two lines adds neither.
func Describe(m domain.Module, readme []string, opts Options) Addon {
	bundle := m.BundleName(opts.BundlePrefix)
	addon := Addon{
		ID:          opts.IDPrefix + strings.ReplaceAll(m.ID, ".", "-"),
		Type:        m.Type(),
		Version:     opts.Tag.String(),
		Author:      opts.Author,
		Maturity:    maturityStable,
		ContentType: contentTypeKar,
		Link:        renderers.ExpandURL(opts.DocsURL, opts.Tag, bundle),
		URL:         renderers.ExpandURL(opts.DownloadURL, opts.Tag, bundle),
	}

	if len(readme) > 1 {
		title := strings.TrimSpace(strings.TrimLeft(readme[0], "#"))
		addon.Title = strings.TrimSpace(opts.Distribution + " " + title)
		addon.Description = paragraph(readme, 2)
	}
	return addon
}

// paragraph joins the non-empty lines starting at from.
func paragraph(lines []string, from int) string {
	var parts []string
	for i := from; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			break
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " ")
}

// Catalogue renders the entries as an indented JSON array sorted by id.
func Catalogue(entries []Addon) ([]byte, error) {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b Addon) int {
		return cmp.Compare(a.ID, b.ID)
	})
	if sorted == nil {
		sorted = []Addon{}
	}

	data, err := json.MarshalIndent(sorted, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal catalogue: %w", err)
	}
	return append(data, '\n'), nil
}

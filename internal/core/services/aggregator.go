package services

import (
	"cmp"
	"slices"

	"github.com/smarthomej/release-tools/internal/core/domain"
)

// StripLabels returns copies of entries without the given labels.
func StripLabels(entries []domain.ClassifiedEntry, labels []string) []domain.ClassifiedEntry {
	if len(labels) == 0 {
		return slices.Clone(entries)
	}

	drop := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		drop[l] = struct{}{}
	}

	out := make([]domain.ClassifiedEntry, len(entries))
	for i, e := range entries {
		out[i] = e.WithoutLabels(drop)
	}
	return out
}

// GroupByModule builds one section per configured module, in configuration
// order, including modules without entries. Entries of unconfigured modules
// are left out. Inside a module, versions run newest first; entries sharing
// a version keep the order in which they were encountered.
func GroupByModule(entries []domain.ClassifiedEntry, modules []domain.Module) []domain.ModuleSection {
	byModule := make(map[string][]int, len(modules))
	for i, e := range entries {
		byModule[e.Module] = append(byModule[e.Module], i)
	}

	sections := make([]domain.ModuleSection, 0, len(modules))
	for _, m := range modules {
		idx := byModule[m.ShortID()]
		slices.SortFunc(idx, func(a, b int) int {
			if c := entries[b].Version.Compare(entries[a].Version); c != 0 {
				return c
			}
			return cmp.Compare(a, b)
		})

		section := domain.ModuleSection{Module: m}
		for _, i := range idx {
			e := entries[i]
			last := len(section.Versions) - 1
			if last < 0 || section.Versions[last].Version != e.Version {
				section.Versions = append(section.Versions, domain.VersionSection{Version: e.Version})
				last++
			}
			section.Versions[last].Entries = append(section.Versions[last].Entries, e)
		}
		sections = append(sections, section)
	}
	return sections
}

// ReleaseTable orders entries for the flat release-notes table:
// module ascending, then issue number ascending.
func ReleaseTable(entries []domain.ClassifiedEntry) []domain.ClassifiedEntry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b domain.ClassifiedEntry) int {
		if c := cmp.Compare(a.Module, b.Module); c != 0 {
			return c
		}
		return cmp.Compare(a.IssueNumber, b.IssueNumber)
	})
	return out
}

// SelectVersion keeps the entries released in exactly version v.
func SelectVersion(entries []domain.ClassifiedEntry, v domain.Version) []domain.ClassifiedEntry {
	out := make([]domain.ClassifiedEntry, 0, len(entries))
	for _, e := range entries {
		if e.Version == v {
			out = append(out, e)
		}
	}
	return out
}

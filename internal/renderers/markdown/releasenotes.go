package markdown

import (
	"fmt"
	"strings"

	"github.com/smarthomej/release-tools/internal/core/domain"
)

// ReleaseNotesFileName returns the file name of the release notes for tag.
func ReleaseNotesFileName(tag domain.ReleaseTag) string {
	return "releaseNotes-" + tag.String() + ".md"
}

// ReleaseNotes renders the release notes tables. Entries must already be
// ordered by module and issue; the module name is printed only on the first
// row of each module's run.
func ReleaseNotes(entries []domain.ClassifiedEntry, opts Options) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s Release %s\n\n", opts.Distribution, opts.Tag)
	fmt.Fprintf(&sb, "This is the latest release of the %s addons.\n", opts.Distribution)
	sb.WriteString("Please see below for a list of all changes since the last release.\n\n")
	sb.WriteString("## Changelog\n\n")

	sb.WriteString("### General/Infrastructure\n\n")
	sb.WriteString("| Type | Issue | Description |\n")
	sb.WriteString("|---|:---:|---|\n")
	for _, e := range entries {
		if e.Module == opts.InfrastructureModule {
			sb.WriteString("|" + labelCell(e) + "|" + issueCell(e) + "|" + escapeCell(e.Description) + "|\n")
		}
	}

	sb.WriteString("\n### Individual Modules\n\n")
	sb.WriteString("| Module | Type | Issue | Description |\n")
	sb.WriteString("|---|---|:---:|---|\n")
	lastModule := ""
	for _, e := range entries {
		if e.Module == opts.InfrastructureModule {
			continue
		}
		module := " "
		if e.Module != lastModule {
			module = e.Module
		}
		sb.WriteString("|" + module + "|" + labelCell(e) + "|" + issueCell(e) + "|" + escapeCell(e.Description) + "|\n")
		lastModule = e.Module
	}

	return []byte(sb.String())
}

func labelCell(e domain.ClassifiedEntry) string {
	return strings.Join(e.Labels, " ")
}

func issueCell(e domain.ClassifiedEntry) string {
	return fmt.Sprintf("[#%d](%s)", e.IssueNumber, e.URL)
}

// escapeCell keeps pipes in descriptions from splitting table cells.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

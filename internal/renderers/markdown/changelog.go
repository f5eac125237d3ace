package markdown

import (
	"strings"

	"github.com/smarthomej/release-tools/internal/core/domain"
)

// ChangelogFileName is the file name of the full changelog.
const ChangelogFileName = "Changelog.md"

// Changelog renders the full changelog: one section per module with one
// sub-section per version, followed by the module's note.
func Changelog(sections []domain.ModuleSection, opts Options) []byte {
	var sb strings.Builder
	sb.WriteString("# Changelog\n\n")

	for _, section := range sections {
		sb.WriteString("## Bundle: " + opts.bundle(section.Module) + "\n")
		writeVersions(&sb, section)
		writeNote(&sb, section.Module)
		sb.WriteString("\n")
	}

	return []byte(sb.String())
}

// writeVersions writes the "### Version" blocks of a module.
func writeVersions(sb *strings.Builder, section domain.ModuleSection) {
	for _, vs := range section.Versions {
		sb.WriteString("\n### Version " + vs.Version.String() + "\n\n")
		for _, e := range vs.Entries {
			sb.WriteString(entryLine(e))
		}
	}
}

// entryLine renders "* bug & enhancement: description".
func entryLine(e domain.ClassifiedEntry) string {
	if len(e.Labels) == 0 {
		return "* " + e.Description + "\n"
	}
	return "* " + strings.Join(e.Labels, " & ") + ": " + e.Description + "\n"
}

func writeNote(sb *strings.Builder, m domain.Module) {
	if m.Note == "" {
		return
	}
	sb.WriteString(m.Note)
	if !strings.HasSuffix(m.Note, "\n") {
		sb.WriteString("\n")
	}
}

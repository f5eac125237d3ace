package markdown

import (
	"strings"

	"github.com/smarthomej/release-tools/internal/core/domain"
	"github.com/smarthomej/release-tools/internal/renderers"
)

// MarketplacePost renders the announcement post of one module.
func MarketplacePost(section domain.ModuleSection, opts Options) []byte {
	bundle := opts.bundle(section.Module)

	var sb strings.Builder
	sb.WriteString("[Documentation](" + renderers.ExpandURL(opts.DocsURL, opts.Tag, bundle) + ")\n\n")

	sb.WriteString("## Changelog\n")
	writeVersions(&sb, section)
	writeNote(&sb, section.Module)

	download := renderers.ExpandURL(opts.DownloadURL, opts.Tag, bundle)
	sb.WriteString("\n## Resources\n\n")
	sb.WriteString("[" + downloadName(download) + "](" + download + ")\n")

	return []byte(sb.String())
}

// MarketplaceFileName returns the file name of a module's post.
func MarketplaceFileName(m domain.Module) string {
	return "marketplace-" + m.ShortID() + ".md"
}

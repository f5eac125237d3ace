// Package renderers groups the artifact formatters.
//
// Renderers are pure functions from aggregated domain values to bytes.
// They never fetch, sort or filter entries; ordering and grouping are
// decided by the aggregator in internal/core/services.
package renderers

import (
	"strings"

	"github.com/smarthomej/release-tools/internal/core/domain"
)

// ExpandURL fills the {tag} and {bundle} placeholders of a URL template.
func ExpandURL(template string, tag domain.ReleaseTag, bundle string) string {
	return strings.NewReplacer("{tag}", tag.String(), "{bundle}", bundle).Replace(template)
}

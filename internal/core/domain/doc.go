// Package domain defines the core release-tooling entities.
//
// This package is the innermost layer of the hexagon. It has NO external
// dependencies and defines the fundamental types:
//
//   - PullRequestRecord: one raw change request as supplied by a source
//   - ClassifiedEntry: a merged, classified and version-normalised change
//   - Module: one releasable bundle of the distribution
//   - ReleaseTag / Version: numeric x.y.z identifiers
//   - ReleaseConfig: the static module list and rendering settings
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

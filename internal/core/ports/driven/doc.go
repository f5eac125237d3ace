// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - PullRequestSource: Supplies closed pull requests page by page
//   - ArtifactSink: Persists rendered artifacts
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ReadmeSource: Bundle READMEs for the add-on catalogue. Without it,
//     catalogue entries carry no title or description.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or renderer package
package driven

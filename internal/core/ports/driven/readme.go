package driven

import (
	"context"

	"github.com/smarthomej/release-tools/internal/core/domain"
)

// ReadmeSource reads the README of a bundle for catalogue metadata.
type ReadmeSource interface {
	// Readme returns the README lines of the module's bundle.
	Readme(ctx context.Context, module domain.Module) ([]string, error)
}

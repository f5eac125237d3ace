// Package readme reads module READMEs from a checkout of the bundles tree.
package readme

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/smarthomej/release-tools/internal/core/domain"
	"github.com/smarthomej/release-tools/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.ReadmeSource = (*Reader)(nil)

var lineBreak = regexp.MustCompile(`\r?\n`)

// Reader loads <dir>/<bundle>/README.md.
type Reader struct {
	dir    string
	prefix string
}

// NewReader creates a reader for the bundles directory dir.
// Bundle directories are named prefix + module id.
func NewReader(dir, prefix string) *Reader {
	return &Reader{dir: dir, prefix: prefix}
}

// Readme returns the README of module m split into lines.
func (r *Reader) Readme(ctx context.Context, m domain.Module) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := r.Path(m)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lineBreak.Split(string(data), -1), nil
}

// Path returns the README location of module m.
func (r *Reader) Path(m domain.Module) string {
	return filepath.Join(r.dir, m.BundleName(r.prefix), "README.md")
}

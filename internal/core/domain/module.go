package domain

import "strings"

// Module is one independently releasable bundle of the distribution.
type Module struct {
	// ID is the fully-qualified identifier, e.g. "binding.knx".
	ID string `toml:"id" yaml:"id"`

	// Note is a literal changelog block that predates the tracker history.
	// It is appended verbatim after the module's generated entries.
	Note string `toml:"note,omitempty" yaml:"note,omitempty"`

	// Unlisted modules are left out of the add-on catalogue.
	Unlisted bool `toml:"unlisted,omitempty" yaml:"unlisted,omitempty"`
}

// ShortID returns the segment after the last dot, e.g. "knx".
func (m Module) ShortID() string {
	return m.ID[strings.LastIndex(m.ID, ".")+1:]
}

// Type returns the segment before the first dot, e.g. "binding".
func (m Module) Type() string {
	if i := strings.Index(m.ID, "."); i >= 0 {
		return m.ID[:i]
	}
	return m.ID
}

// BundleName returns the artifact name built from prefix and ID.
func (m Module) BundleName(prefix string) string {
	return prefix + m.ID
}

// ModuleRegistry resolves title prefixes to canonical module names.
// Both the short and the fully-qualified form of every module are accepted.
type ModuleRegistry struct {
	modules []Module
	aliases map[string]string
}

// NewModuleRegistry builds a registry from the configured modules.
// Auxiliary identifiers (e.g. "infrastructure") classify entries that
// belong to no bundle.
func NewModuleRegistry(modules []Module, auxiliary ...string) *ModuleRegistry {
	r := &ModuleRegistry{
		modules: append([]Module(nil), modules...),
		aliases: make(map[string]string, len(modules)*2+len(auxiliary)),
	}
	for _, m := range modules {
		r.aliases[m.ID] = m.ShortID()
		r.aliases[m.ShortID()] = m.ShortID()
	}
	for _, id := range auxiliary {
		if id != "" {
			r.aliases[id] = id
		}
	}
	return r
}

// Resolve maps an identifier to the canonical short module name.
func (r *ModuleRegistry) Resolve(id string) (string, bool) {
	name, ok := r.aliases[id]
	return name, ok
}

// Modules returns the configured modules in configuration order.
func (r *ModuleRegistry) Modules() []Module {
	return append([]Module(nil), r.modules...)
}

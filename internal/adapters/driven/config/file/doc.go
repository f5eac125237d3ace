// Package file loads the release configuration from TOML or YAML files.
//
// Built-in defaults are embedded from defaults.toml. A configuration file
// is decoded on top of them: every section it sets replaces the default,
// sections it omits keep the default. Unknown keys are rejected so typos
// do not silently fall back to defaults.
package file

// Package config defines the format-agnostic settings model for the explorer
// and the Loader interface that fills it from a settings file.
//
// Every field is optional: a nil pointer or empty slice means "not set in the
// file", which lets the CLI layer apply its own precedence (explicit flag,
// then file, then built-in default). The HCL implementation lives in the
// `hcl` package.
package config

// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It parses settings files with hclparse, evaluates attributes
// against an evaluation context exposing an env() function, and translates
// the decoded schema into the format-agnostic config.Settings.
package hcl

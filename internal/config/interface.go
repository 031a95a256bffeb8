package config

import (
	"context"
)

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads settings from the given paths. A path may be a single file
	// or a directory; later files override earlier ones.
	Load(ctx context.Context, paths ...string) (*Settings, error)
}

package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// LoadEnvironments reads environment specifications from a path (a
	// single file or a directory tree) and translates them into the
	// format-agnostic model.
	LoadEnvironments(ctx context.Context, path string) (*Model, error)

	// LoadDocument reads the document event stream for one export run.
	LoadDocument(ctx context.Context, path string) (*Document, error)
}

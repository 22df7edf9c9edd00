package appupdate

import (
	"context"
	"log/slog"
)

// Source represents a storefront that can be polled for the published version.
type Source interface {
	// Kind returns the storefront this source checks.
	Kind() StoreKind

	// Description returns a human-readable description of how the version is found.
	Description() string

	// Check returns the version currently published on the storefront.
	Check(ctx context.Context) (version string, err error)
}

// Resolve runs src.Check and falls back to DefaultVersion on any failure.
func Resolve(ctx context.Context, src Source) string {
	version, err := src.Check(ctx)
	if err != nil {
		slog.Warn("Store version not found, using default", "store", src.Kind().Label(), "default", DefaultVersion, "error", err)
		return DefaultVersion
	}
	return version
}

package deps

import (
	"context"
	"io"
	"path/filepath"

	"github.com/matzehuels/lockids/pkg/contentid"
	"github.com/matzehuels/lockids/pkg/errors"
)

// LockfileReader extracts content IDs from one lockfile format.
type LockfileReader interface {
	// Type returns the lockfile type identifier (e.g., "pnpm-lock.yaml").
	Type() string
	// Supports reports whether this reader handles the given filename.
	Supports(filename string) bool
	// Read consumes r and returns the distinct content IDs in first-seen
	// order. Entries that cannot be resolved are returned as
	// contentid.InvalidContentID; only document-level failures are errors.
	// Read does not close r.
	Read(ctx context.Context, r io.Reader, opts Options) ([]contentid.ID, error)
}

// DetectReader finds a reader that supports the given file path.
// Returns an error if no reader matches.
func DetectReader(path string, readers ...LockfileReader) (LockfileReader, error) {
	name := filepath.Base(path)
	for _, r := range readers {
		if r.Supports(name) {
			return r, nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported lockfile: %s", name)
}

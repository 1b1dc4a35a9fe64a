package deps

import (
	"context"
	"os"
	"time"

	"github.com/matzehuels/lockids/pkg/contentid"
	"github.com/matzehuels/lockids/pkg/errors"
	"github.com/matzehuels/lockids/pkg/observability"
)

// ReadFile opens the lockfile at path and reads it with r. The file is
// closed on every path, including decode failures.
func ReadFile(ctx context.Context, path string, r LockfileReader, opts Options) (ids []contentid.ID, err error) {
	opts = opts.WithDefaults()
	hooks := observability.Reader()
	hooks.OnReadStart(ctx, r.Type(), path)

	start := time.Now()
	defer func() {
		hooks.OnReadComplete(ctx, r.Type(), path, len(ids), contentid.CountInvalid(ids), time.Since(start), err)
	}()

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "lockfile not found: %s", path)
	}
	if err != nil {
		return nil, errors.Unreadable(r.Type(), err)
	}
	defer f.Close()

	opts.Logger.Debug("reading lockfile", "path", path, "type", r.Type())
	return r.Read(ctx, f, opts)
}

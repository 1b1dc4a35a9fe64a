package deps

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/lockids/pkg/contentid"
	"github.com/matzehuels/lockids/pkg/observability"
)

// Options configures lockfile reading.
type Options struct {
	Logger *log.Logger // Diagnostics sink (default: discards output)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return opts
}

// Collect reports every invalid ID in ids to the logger and the registered
// reader hooks, then returns the distinct IDs in first-seen order.
//
// Readers call Collect once, after the whole document has been resolved, so
// deduplication never short-circuits the per-entry pass.
func Collect(ctx context.Context, opts Options, lockfile string, ids []contentid.ID) []contentid.ID {
	opts = opts.WithDefaults()
	hooks := observability.Reader()
	for _, id := range ids {
		if id.Valid() {
			continue
		}
		opts.Logger.Debug("invalid content id", "lockfile", lockfile, "key", id.String())
		hooks.OnInvalidID(ctx, lockfile, id.String())
	}
	return contentid.Distinct(ids)
}

package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/lockids/pkg/observability"
)

// logHooks reports reader timings on the CLI logger at debug level.
type logHooks struct {
	observability.NoopReaderHooks
	logger *log.Logger
}

func (h *logHooks) OnReadComplete(_ context.Context, lockfile, path string, total, invalid int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("read failed", "lockfile", lockfile, "path", path, "err", err)
		return
	}
	h.logger.Debug("read complete", "lockfile", lockfile, "path", path, "ids", total, "invalid", invalid, "took", d.Round(time.Microsecond))
}

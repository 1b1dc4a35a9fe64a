// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about lockfile reads.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, which keeps the readers free
// of any particular metrics or tracing framework.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetReaderHooks(&myReaderHooks{})
//	    // ... run application
//	}
//
// Readers call hooks to emit events:
//
//	observability.Reader().OnReadStart(ctx, "pnpm-lock.yaml", path)
//	// ... read ...
//	observability.Reader().OnReadComplete(ctx, "pnpm-lock.yaml", path, total, invalid, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Reader Hooks
// =============================================================================

// ReaderHooks receives events from lockfile readers.
type ReaderHooks interface {
	// OnReadStart records the start of a lockfile read.
	OnReadStart(ctx context.Context, lockfile, path string)

	// OnReadComplete records the end of a read. total counts distinct IDs,
	// invalid counts those that did not resolve.
	OnReadComplete(ctx context.Context, lockfile, path string, total, invalid int, duration time.Duration, err error)

	// OnInvalidID records an entry that could not be resolved to a coordinate.
	OnInvalidID(ctx context.Context, lockfile, raw string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopReaderHooks is a no-op implementation of ReaderHooks.
type NoopReaderHooks struct{}

func (NoopReaderHooks) OnReadStart(context.Context, string, string) {}
func (NoopReaderHooks) OnReadComplete(context.Context, string, string, int, int, time.Duration, error) {
}
func (NoopReaderHooks) OnInvalidID(context.Context, string, string) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	readerHooks ReaderHooks = NoopReaderHooks{}
	hooksMu     sync.RWMutex
)

// SetReaderHooks registers custom reader hooks.
// This should be called once at application startup before any reads.
func SetReaderHooks(h ReaderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		readerHooks = h
	}
}

// Reader returns the registered reader hooks.
func Reader() ReaderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return readerHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	readerHooks = NoopReaderHooks{}
}

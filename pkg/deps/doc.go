// Package deps extracts package content IDs from lockfiles.
//
// # Overview
//
// lockids reads the lockfiles written by package managers and turns every
// pinned package into a [contentid.ID]:
//
//   - pnpm-lock.yaml and package-lock.json ([javascript])
//   - poetry.lock ([python])
//   - Cargo.lock ([rust])
//
// This package provides the shared abstractions. Each ecosystem lives in its
// own subpackage and exposes a [Language] value listing its readers.
//
// # Reading Lockfiles
//
// Every format implements [LockfileReader]. Pick one with [DetectReader] and
// read the file with [ReadFile]:
//
//	readers := deps.AllReaders(javascript.Language, python.Language, rust.Language)
//	r, err := deps.DetectReader("pnpm-lock.yaml", readers...)
//	if err != nil {
//	    return err
//	}
//	ids, err := deps.ReadFile(ctx, "pnpm-lock.yaml", r, deps.Options{Logger: logger})
//
// Readers can also be fed any [io.Reader] directly with Read. They never
// close the stream they are given.
//
// # Failure Modes
//
// There are two classes of failure:
//
//  1. Document-level: the lockfile cannot be decoded at all. Read returns an
//     error with code errors.ErrCodeLockfileUnreadable and no partial result.
//  2. Entry-level: one entry cannot be resolved. It is returned in place as a
//     [contentid.InvalidContentID]; the rest of the document is unaffected.
//
// Invalid entries are also logged at debug level and reported to the
// observability reader hooks by [Collect].
//
// # Options
//
// [Options] carries the logger used for diagnostics. A zero Options discards
// all output.
//
// [javascript]: github.com/matzehuels/lockids/pkg/deps/javascript
// [python]: github.com/matzehuels/lockids/pkg/deps/python
// [rust]: github.com/matzehuels/lockids/pkg/deps/rust
package deps

// Package rust reads crate coordinates from Rust lockfiles.
//
// # Overview
//
// [CargoLock] implements [deps.LockfileReader] for Cargo.lock. Each
// [[package]] table with a source becomes a crate content ID:
//
//	[[package]]
//	name = "serde"
//	version = "1.0.193"
//	source = "registry+https://github.com/rust-lang/crates.io-index"
//
//	crate/cratesio/-/serde/1.0.193
//
// Workspace members carry no source and are skipped.
//
// [deps.LockfileReader]: github.com/matzehuels/lockids/pkg/deps.LockfileReader
package rust

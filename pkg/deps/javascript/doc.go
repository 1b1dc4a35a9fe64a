// Package javascript reads npm package coordinates from JavaScript lockfiles.
//
// # Overview
//
// This package implements [deps.LockfileReader] for:
//
//   - pnpm-lock.yaml ([PnpmLock])
//   - package-lock.json ([PackageLock])
//
// Both produce npm/npmjs content IDs.
//
// # pnpm
//
// Only the keys of the top-level packages section are read:
//
//	packages:
//	  /@babel/preset-modules@0.1.6-no-external-plugins(@babel/core@7.23.2):
//	    resolution: {integrity: sha512-...}
//
// Each key is resolved by [ParsePnpmKey]. The optional scope becomes the
// namespace, the peer dependency annotation in parentheses is dropped:
//
//	npm/npmjs/@babel/preset-modules/0.1.6-no-external-plugins
//
// A lockfile without a packages section reads as empty. Keys that cannot be
// resolved are kept as contentid.InvalidContentID values.
//
// # package-lock.json
//
// Lockfile versions 2 and 3 are read from the "packages" map; version 1 from
// the nested "dependencies" tree.
//
// [deps.LockfileReader]: github.com/matzehuels/lockids/pkg/deps.LockfileReader
package javascript

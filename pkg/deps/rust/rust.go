package rust

import "github.com/matzehuels/lockids/pkg/deps"

// Language provides the crates.io lockfile readers.
var Language = &deps.Language{
	Name:    "rust",
	Readers: []deps.LockfileReader{&CargoLock{}},
}

package javascript

import "github.com/matzehuels/lockids/pkg/deps"

// Language provides the npm lockfile readers.
var Language = &deps.Language{
	Name:    "javascript",
	Readers: []deps.LockfileReader{&PnpmLock{}, &PackageLock{}},
}

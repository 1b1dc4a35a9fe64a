package python

import "github.com/matzehuels/lockids/pkg/deps"

// Language provides the PyPI lockfile readers.
var Language = &deps.Language{
	Name:    "python",
	Readers: []deps.LockfileReader{&PoetryLock{}},
}

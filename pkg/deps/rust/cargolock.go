package rust

import (
	"context"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/lockids/pkg/contentid"
	"github.com/matzehuels/lockids/pkg/deps"
	"github.com/matzehuels/lockids/pkg/errors"
)

const cargoLockfile = "Cargo.lock"

// CargoLock reads Cargo.lock files. Packages without a source are members
// of the local workspace and are not reported.
type CargoLock struct{}

func (c *CargoLock) Type() string              { return cargoLockfile }
func (c *CargoLock) Supports(name string) bool { return name == cargoLockfile }

func (c *CargoLock) Read(ctx context.Context, r io.Reader, opts deps.Options) ([]contentid.ID, error) {
	var lock cargoLock
	if _, err := toml.NewDecoder(r).Decode(&lock); err != nil {
		return nil, errors.Unreadable(cargoLockfile, err)
	}

	ids := make([]contentid.ID, 0, len(lock.Packages))
	for _, pkg := range lock.Packages {
		if pkg.Source == "" {
			continue
		}
		if pkg.Name == "" || pkg.Version == "" {
			ids = append(ids, contentid.InvalidContentID{Value: pkg.Name + "@" + pkg.Version})
			continue
		}
		ids = append(ids, contentid.New(contentid.TypeCrate, contentid.SourceCrate, "", pkg.Name, pkg.Version))
	}
	return deps.Collect(ctx, opts, c.Type(), ids), nil
}

type cargoLock struct {
	Version  int            `toml:"version"`
	Packages []cargoPackage `toml:"package"`
}

type cargoPackage struct {
	Name     string `toml:"name"`
	Version  string `toml:"version"`
	Source   string `toml:"source"`
	Checksum string `toml:"checksum"`
}

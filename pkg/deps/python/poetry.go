package python

import (
	"context"
	"io"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/lockids/pkg/contentid"
	"github.com/matzehuels/lockids/pkg/deps"
	"github.com/matzehuels/lockids/pkg/errors"
)

const poetryLockfile = "poetry.lock"

// PoetryLock reads poetry.lock files. Every [[package]] table is a pinned
// distribution, so the file alone gives the full transitive closure.
type PoetryLock struct{}

func (p *PoetryLock) Type() string              { return poetryLockfile }
func (p *PoetryLock) Supports(name string) bool { return name == poetryLockfile }

func (p *PoetryLock) Read(ctx context.Context, r io.Reader, opts deps.Options) ([]contentid.ID, error) {
	var lock lockFile
	if _, err := toml.NewDecoder(r).Decode(&lock); err != nil {
		return nil, errors.Unreadable(poetryLockfile, err)
	}

	ids := make([]contentid.ID, 0, len(lock.Packages))
	for _, pkg := range lock.Packages {
		ids = append(ids, pypiID(pkg.Name, pkg.Version))
	}
	return deps.Collect(ctx, opts, p.Type(), ids), nil
}

type lockFile struct {
	Packages []lockPackage `toml:"package"`
}

type lockPackage struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

func pypiID(name, version string) contentid.ID {
	n := normalize(name)
	if n == "" || version == "" {
		return contentid.InvalidContentID{Value: name + "@" + version}
	}
	return contentid.New(contentid.TypePyPI, contentid.SourcePyPI, "", n, version)
}

var separatorRun = regexp.MustCompile(`[-_.]+`)

// normalize returns the PEP 503 form of a distribution name.
func normalize(name string) string {
	return separatorRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

package javascript

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/matzehuels/lockids/pkg/contentid"
	"github.com/matzehuels/lockids/pkg/deps"
	"github.com/matzehuels/lockids/pkg/errors"
)

const (
	packageLockfile = "package-lock.json"
	nodeModules     = "node_modules/"
)

// PackageLock reads npm package-lock.json files. Lockfile versions 2 and 3
// list every installed package under "packages", keyed by install path;
// version 1 only has the nested "dependencies" tree, which is walked instead.
type PackageLock struct{}

func (p *PackageLock) Type() string              { return packageLockfile }
func (p *PackageLock) Supports(name string) bool { return name == packageLockfile }

func (p *PackageLock) Read(ctx context.Context, r io.Reader, opts deps.Options) ([]contentid.ID, error) {
	var lock packageLockFile
	if err := json.NewDecoder(r).Decode(&lock); err != nil {
		return nil, errors.Unreadable(packageLockfile, err)
	}

	var (
		ids []contentid.ID
		err error
	)
	if len(lock.Packages) > 0 {
		ids, err = packagesIDs(lock.Packages)
	} else {
		err = walkDependencies(lock.Dependencies, &ids)
	}
	if err != nil {
		return nil, errors.Unreadable(packageLockfile, err)
	}
	return deps.Collect(ctx, opts, p.Type(), ids), nil
}

type packageLockFile struct {
	LockfileVersion int           `json:"lockfileVersion"`
	Packages        orderedObject `json:"packages"`
	Dependencies    orderedObject `json:"dependencies"`
}

type packageLockEntry struct {
	Name         string        `json:"name"`
	Version      string        `json:"version"`
	Link         bool          `json:"link"`
	Dependencies orderedObject `json:"dependencies"`
}

// packagesIDs resolves the install-path keyed entries of lockfile v2/v3.
// Only paths under node_modules are packages; the root ("") and workspace
// folders are skipped, as are links to them.
func packagesIDs(entries orderedObject) ([]contentid.ID, error) {
	ids := make([]contentid.ID, 0, len(entries))
	for _, e := range entries {
		idx := strings.LastIndex(e.key, nodeModules)
		if idx < 0 {
			continue
		}
		var entry packageLockEntry
		if err := json.Unmarshal(e.value, &entry); err != nil {
			return nil, err
		}
		if entry.Link {
			continue
		}
		name := e.key[idx+len(nodeModules):]
		if entry.Name != "" {
			name = entry.Name
		}
		ids = append(ids, npmID(e.key, name, entry.Version))
	}
	return ids, nil
}

// walkDependencies appends the lockfile v1 dependency tree depth-first.
func walkDependencies(entries orderedObject, ids *[]contentid.ID) error {
	for _, e := range entries {
		var entry packageLockEntry
		if err := json.Unmarshal(e.value, &entry); err != nil {
			return err
		}
		name, version := e.key, entry.Version
		if alias, ok := strings.CutPrefix(version, "npm:"); ok {
			if at := strings.LastIndex(alias, "@"); at > 0 {
				name, version = alias[:at], alias[at+1:]
			}
		}
		*ids = append(*ids, npmID(e.key, name, version))
		if err := walkDependencies(entry.Dependencies, ids); err != nil {
			return err
		}
	}
	return nil
}

// npmID builds an npm content ID from a possibly scoped package name. raw is
// kept for the invalid case.
func npmID(raw, name, version string) contentid.ID {
	namespace := ""
	if strings.HasPrefix(name, "@") {
		scope, rest, ok := strings.Cut(name, "/")
		if !ok {
			return contentid.InvalidContentID{Value: raw}
		}
		namespace, name = scope, rest
	}
	if name == "" || version == "" {
		return contentid.InvalidContentID{Value: raw}
	}
	return contentid.New(contentid.TypeNPM, contentid.SourceNPM, namespace, name, version)
}

type member struct {
	key   string
	value json.RawMessage
}

// orderedObject is a JSON object decoded with its member order intact.
// Values other than objects decode to an empty orderedObject.
type orderedObject []member

func (o *orderedObject) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		*o = nil
		return nil
	}

	var members orderedObject
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return err
		}
		members = append(members, member{key: key, value: value})
	}
	*o = members
	return nil
}

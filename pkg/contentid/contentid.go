package contentid

import "strings"

// NoNamespace is the namespace placeholder for packages without a scope or group.
const NoNamespace = "-"

// Ecosystem type/source pairs produced by the lockfile readers.
const (
	TypeNPM     = "npm"
	SourceNPM   = "npmjs"
	TypePyPI    = "pypi"
	SourcePyPI  = "pypi"
	TypeCrate   = "crate"
	SourceCrate = "cratesio"
)

// ID is implemented by [ContentID] and [InvalidContentID]. Callers must check
// Valid (or switch on the concrete type) before using an ID as a lookup key.
//
// Both implementations are comparable values, so IDs can be used as map keys
// and compared with ==.
type ID interface {
	// String returns the canonical form: type/source/namespace/name/version
	// for a ContentID, the raw input for an InvalidContentID.
	String() string
	// Valid reports whether the ID is a resolved coordinate.
	Valid() bool
}

// ContentID is a resolved package coordinate.
type ContentID struct {
	Type      string `json:"type"`
	Source    string `json:"source"`
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	Version   string `json:"version"`
}

// New returns a ContentID. An empty namespace is replaced by [NoNamespace].
func New(typ, source, namespace, name, version string) ContentID {
	if namespace == "" {
		namespace = NoNamespace
	}
	return ContentID{
		Type:      typ,
		Source:    source,
		Namespace: namespace,
		Name:      name,
		Version:   version,
	}
}

func (c ContentID) String() string {
	return strings.Join([]string{c.Type, c.Source, c.Namespace, c.Name, c.Version}, "/")
}

func (c ContentID) Valid() bool { return true }

// InvalidContentID carries an input that could not be resolved to a
// coordinate. It is reported rather than dropped so malformed entries stay
// visible to the caller.
type InvalidContentID struct {
	Value string `json:"value"`
}

func (i InvalidContentID) String() string { return i.Value }

func (i InvalidContentID) Valid() bool { return false }

// Distinct drops repeated IDs, keeping the first occurrence of each and the
// relative order of the survivors. The input slice is not modified.
func Distinct(ids []ID) []ID {
	seen := make(map[ID]struct{}, len(ids))
	out := make([]ID, 0, len(ids))
	for _, id := range ids {
		if id == nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// CountInvalid returns the number of ids that are not valid coordinates.
func CountInvalid(ids []ID) int {
	n := 0
	for _, id := range ids {
		if !id.Valid() {
			n++
		}
	}
	return n
}

package javascript

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/lockids/pkg/contentid"
	"github.com/matzehuels/lockids/pkg/deps"
	"github.com/matzehuels/lockids/pkg/errors"
)

const pnpmLockfile = "pnpm-lock.yaml"

// PnpmLock reads pnpm-lock.yaml files. Content IDs are taken from the keys
// of the top-level packages section only; the entry bodies (resolution,
// integrity, dependencies) are not consulted.
type PnpmLock struct{}

func (p *PnpmLock) Type() string              { return pnpmLockfile }
func (p *PnpmLock) Supports(name string) bool { return name == pnpmLockfile }

func (p *PnpmLock) Read(ctx context.Context, r io.Reader, opts deps.Options) ([]contentid.ID, error) {
	keys, err := pnpmPackageKeys(r)
	if err != nil {
		return nil, err
	}

	ids := make([]contentid.ID, len(keys))
	for i, key := range keys {
		ids[i] = ParsePnpmKey(key)
	}
	return deps.Collect(ctx, opts, p.Type(), ids), nil
}

// pnpmPackageKeys decodes the document and returns the keys of the packages
// section in document order. Decoding into a yaml.Node never instantiates
// tagged types.
//
// A missing, null or non-mapping packages value yields no keys. The stream
// must hold exactly one document, and that document must be a mapping.
func pnpmPackageKeys(r io.Reader) ([]string, error) {
	dec := yaml.NewDecoder(r)
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			err = fmt.Errorf("empty document")
		}
		return nil, errors.Unreadable(pnpmLockfile, err)
	}
	var next yaml.Node
	if err := dec.Decode(&next); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("expected a single document in the stream")
		}
		return nil, errors.Unreadable(pnpmLockfile, err)
	}

	root := deref(&doc)
	if root == nil || root.Kind != yaml.MappingNode {
		return nil, errors.Unreadable(pnpmLockfile, fmt.Errorf("top-level value is %s, not a mapping", kindName(root)))
	}

	section := deref(mappingValue(root, "packages"))
	if section == nil || section.Kind != yaml.MappingNode {
		return []string{}, nil
	}

	return mappingKeys(section), nil
}

// mappingKeys returns the keys of m in document order. Merge keys ("<<") are
// replaced in place by the keys of the merged mappings; a merged key that m
// also defines explicitly, or that an earlier merge already supplied, is
// left out.
func mappingKeys(m *yaml.Node) []string {
	explicit := make(map[string]bool)
	for i := 0; i+1 < len(m.Content); i += 2 {
		if !isMergeKey(m.Content[i]) {
			explicit[keyText(m.Content[i])] = true
		}
	}

	keys := make([]string, 0, len(m.Content)/2)
	merged := make(map[string]bool)
	for i := 0; i+1 < len(m.Content); i += 2 {
		if !isMergeKey(m.Content[i]) {
			keys = append(keys, keyText(m.Content[i]))
			continue
		}
		for _, src := range mergeSources(m.Content[i+1]) {
			for _, k := range mappingKeys(src) {
				if explicit[k] || merged[k] {
					continue
				}
				merged[k] = true
				keys = append(keys, k)
			}
		}
	}
	return keys
}

func isMergeKey(k *yaml.Node) bool {
	n := deref(k)
	return n != nil && n.Kind == yaml.ScalarNode && n.ShortTag() == "!!merge"
}

// mergeSources returns the mappings named by the value of a merge key: a
// single mapping or a sequence of mappings. Anything else merges nothing.
func mergeSources(v *yaml.Node) []*yaml.Node {
	n := deref(v)
	if n == nil {
		return nil
	}
	switch n.Kind {
	case yaml.MappingNode:
		return []*yaml.Node{n}
	case yaml.SequenceNode:
		var out []*yaml.Node
		for _, item := range n.Content {
			if m := deref(item); m != nil && m.Kind == yaml.MappingNode {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}

// deref unwraps document and alias nodes down to the value they stand for.
func deref(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

// mappingValue returns the value stored under key in a mapping node. When a
// key repeats, the last occurrence wins.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	var v *yaml.Node
	for i := 0; i+1 < len(m.Content); i += 2 {
		k := deref(m.Content[i])
		if k != nil && k.Kind == yaml.ScalarNode && k.Value == key {
			v = m.Content[i+1]
		}
	}
	return v
}

// keyText returns the string form of a mapping key. Complex keys (sequences
// or mappings used as keys) are rendered as flow YAML so they still reach
// the key resolver and surface as invalid IDs.
func keyText(k *yaml.Node) string {
	n := deref(k)
	if n == nil {
		return ""
	}
	if n.Kind == yaml.ScalarNode {
		return n.Value
	}
	flow := *n
	flow.Style = yaml.FlowStyle
	out, err := yaml.Marshal(&flow)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

func kindName(n *yaml.Node) string {
	if n == nil {
		return "empty"
	}
	switch n.Kind {
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.ScalarNode:
		return "a scalar"
	case yaml.MappingNode:
		return "a mapping"
	default:
		return "unknown"
	}
}

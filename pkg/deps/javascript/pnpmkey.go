package javascript

import (
	"regexp"
	"strings"

	"github.com/matzehuels/lockids/pkg/contentid"
)

// pnpmKeyPattern matches the keys of the packages section of pnpm-lock.yaml
// across lockfile versions:
//
//	lodash@4.17.21                                   (v9)
//	/lodash@4.17.21                                  (v6)
//	/lodash/4.17.21                                  (v5)
//	/@babel/preset-modules@0.1.6(@babel/core@7.23.2) (peer suffix)
//	'/@scope/pkg@1.0.0'                              (quoted)
//
// The match is unanchored at the end: anything after the version, such as a
// peer dependency annotation, is ignored.
var pnpmKeyPattern = regexp.MustCompile(`^'?(/?(?P<namespace>@[^/]+)/)?/?(?P<name>[^/@]+)[@/](?P<version>[^(@/'\n]+)`)

var (
	pnpmNamespaceGroup = pnpmKeyPattern.SubexpIndex("namespace")
	pnpmNameGroup      = pnpmKeyPattern.SubexpIndex("name")
	pnpmVersionGroup   = pnpmKeyPattern.SubexpIndex("version")
)

// ParsePnpmKey resolves one key of the pnpm-lock.yaml packages section to an
// npm content ID. Keys that do not match are returned as
// contentid.InvalidContentID holding the key unchanged.
//
// The trailing colon of the key's textual form ("lodash@4.17.21:") is
// accepted. ParsePnpmKey is pure and safe for concurrent use.
func ParsePnpmKey(key string) contentid.ID {
	m := pnpmKeyPattern.FindStringSubmatch(strings.TrimSuffix(key, ":"))
	if m == nil {
		return contentid.InvalidContentID{Value: key}
	}
	return contentid.New(
		contentid.TypeNPM,
		contentid.SourceNPM,
		m[pnpmNamespaceGroup],
		m[pnpmNameGroup],
		m[pnpmVersionGroup],
	)
}

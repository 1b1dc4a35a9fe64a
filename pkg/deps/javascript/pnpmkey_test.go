package javascript

import (
	"sync"
	"testing"

	"github.com/matzehuels/lockids/pkg/contentid"
)

func npm(namespace, name, version string) contentid.ContentID {
	return contentid.New(contentid.TypeNPM, contentid.SourceNPM, namespace, name, version)
}

func TestParsePnpmKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want contentid.ID
	}{
		// name@version
		{"plain", "lodash@4.17.21", npm("-", "lodash", "4.17.21")},
		{"plain trailing colon", "lodash@4.17.21:", npm("-", "lodash", "4.17.21")},
		{"plain leading slash", "/lodash@4.17.21", npm("-", "lodash", "4.17.21")},
		{"plain slash separator", "/lodash/4.17.21", npm("-", "lodash", "4.17.21")},
		{"plain quoted", "'lodash@4.17.21'", npm("-", "lodash", "4.17.21")},
		{"prerelease", "typescript@5.3.0-beta", npm("-", "typescript", "5.3.0-beta")},

		// ns/name@version
		{"scoped", "@babel/core@7.23.2", npm("@babel", "core", "7.23.2")},
		{"scoped slash separator", "@scope/pkg/1.0.0", npm("@scope", "pkg", "1.0.0")},
		{"scoped leading slash", "/@babel/core@7.23.2", npm("@babel", "core", "7.23.2")},
		{"scoped leading slash slash separator", "/@babel/core/7.23.2", npm("@babel", "core", "7.23.2")},
		{"scoped doubled slash", "/@scope//pkg@1.0.0", npm("@scope", "pkg", "1.0.0")},
		{"scoped trailing colon", "/@babel/core@7.23.2:", npm("@babel", "core", "7.23.2")},

		// peer dependency annotations
		{
			"scoped peer suffix",
			"/@babel/preset-modules@0.1.6-no-external-plugins(@babel/core@7.23.2)",
			npm("@babel", "preset-modules", "0.1.6-no-external-plugins"),
		},
		{
			"quoted scoped peer suffix",
			"'/@babel/preset-modules@0.1.6-no-external-plugins(@babel/core@7.23.2)'",
			npm("@babel", "preset-modules", "0.1.6-no-external-plugins"),
		},
		{
			"peer suffix with colon",
			"/@babel/preset-modules@0.1.6-no-external-plugins(@babel/core@7.23.2):",
			npm("@babel", "preset-modules", "0.1.6-no-external-plugins"),
		},
		{
			"several peer suffixes",
			"@tanstack/react-query@5.8.4(react-dom@18.2.0)(react@18.2.0)",
			npm("@tanstack", "react-query", "5.8.4"),
		},
		{
			"plain peer suffix",
			"react-dom@18.2.0(react@18.2.0)",
			npm("-", "react-dom", "18.2.0"),
		},

		// trailing content after the version is ignored
		{"underscore peer suffix", "/styled-jsx/5.1.1_react@18.2.0", npm("-", "styled-jsx", "5.1.1_react")},
		{"path after version", "/pkg/1.0.0/extra", npm("-", "pkg", "1.0.0")},

		// unparsable
		{"no separator", "!!!not-a-key!!!", contentid.InvalidContentID{Value: "!!!not-a-key!!!"}},
		{"empty", "", contentid.InvalidContentID{Value: ""}},
		{"missing version", "lodash@", contentid.InvalidContentID{Value: "lodash@"}},
		{"scope without name", "@scope@1.0.0", contentid.InvalidContentID{Value: "@scope@1.0.0"}},
		{"scoped without version", "@babel/core", contentid.InvalidContentID{Value: "@babel/core"}},
		{"double leading slash", "//lodash@1.0.0", contentid.InvalidContentID{Value: "//lodash@1.0.0"}},
		{"invalid keeps colon", "importers:", contentid.InvalidContentID{Value: "importers:"}},
		{"colon is not a version", "a@:", contentid.InvalidContentID{Value: "a@:"}},
		{"scoped colon is not a version", "/@scope/pkg@:", contentid.InvalidContentID{Value: "/@scope/pkg@:"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePnpmKey(tt.key)
			if got != tt.want {
				t.Errorf("ParsePnpmKey(%q) = %#v, want %#v", tt.key, got, tt.want)
			}
		})
	}
}

func TestParsePnpmKeyWithoutSeparatorIsInvalid(t *testing.T) {
	keys := []string{
		"lodash",
		"4.17.21",
		"importers",
		"lockfileVersion",
		"some key with spaces",
		"(react",
		"'quoted'",
		"\n",
	}

	for _, key := range keys {
		got := ParsePnpmKey(key)
		inv, ok := got.(contentid.InvalidContentID)
		if !ok {
			t.Errorf("ParsePnpmKey(%q) = %#v, want InvalidContentID", key, got)
			continue
		}
		if inv.Value != key {
			t.Errorf("ParsePnpmKey(%q).Value = %q, want the exact input", key, inv.Value)
		}
	}
}

func TestParsePnpmKeyDeterministic(t *testing.T) {
	keys := []string{
		"lodash@4.17.21",
		"/@babel/preset-modules@0.1.6-no-external-plugins(@babel/core@7.23.2)",
		"!!!not-a-key!!!",
	}
	want := make([]contentid.ID, len(keys))
	for i, k := range keys {
		want[i] = ParsePnpmKey(k)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 100; n++ {
				for i, k := range keys {
					if got := ParsePnpmKey(k); got != want[i] {
						select {
						case errs <- k:
						default:
						}
						return
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for k := range errs {
		t.Errorf("ParsePnpmKey(%q) returned a different result on repeated calls", k)
	}
}

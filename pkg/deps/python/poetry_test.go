package python

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/lockids/pkg/contentid"
	"github.com/matzehuels/lockids/pkg/deps"
	"github.com/matzehuels/lockids/pkg/errors"
)

func pypi(name, version string) contentid.ContentID {
	return contentid.New(contentid.TypePyPI, contentid.SourcePyPI, "", name, version)
}

func TestPoetryLock_Supports(t *testing.T) {
	parser := &PoetryLock{}

	tests := []struct {
		filename string
		want     bool
	}{
		{"poetry.lock", true},
		{"Poetry.lock", false},
		{"requirements.txt", false},
		{"pyproject.toml", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := parser.Supports(tt.filename); got != tt.want {
				t.Errorf("Supports(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestPoetryLock_Read(t *testing.T) {
	content := `[[package]]
name = "requests"
version = "2.31.0"
description = "Python HTTP for Humans."
category = "main"
optional = false
python-versions = ">=3.7"

[package.dependencies]
certifi = ">=2017.4.17"
urllib3 = ">=1.21.1,<3"

[[package]]
name = "Typing_Extensions"
version = "4.9.0"
description = "Backported and Experimental Type Hints for Python 3.8+"
optional = false
python-versions = ">=3.8"

[[package]]
name = "zope.interface"
version = "6.1"
optional = false
python-versions = ">=3.7"

[[package]]
name = "certifi"
version = "2024.2.2"
description = "Python package for providing Mozilla's CA Bundle."
category = "main"
optional = false
python-versions = ">=3.6"

[[package]]
name = "typing-extensions"
version = "4.9.0"

[metadata]
lock-version = "2.0"
python-versions = "^3.10"
content-hash = "abc123"
`
	got, err := (&PoetryLock{}).Read(context.Background(), strings.NewReader(content), deps.Options{})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	want := []contentid.ID{
		pypi("requests", "2.31.0"),
		pypi("typing-extensions", "4.9.0"),
		pypi("zope-interface", "6.1"),
		pypi("certifi", "2024.2.2"),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d ids %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ids[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPoetryLock_ReadMissingFields(t *testing.T) {
	content := `[[package]]
name = "orphan"

[[package]]
version = "1.0.0"
`
	got, err := (&PoetryLock{}).Read(context.Background(), strings.NewReader(content), deps.Options{})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	want := []contentid.ID{
		contentid.InvalidContentID{Value: "orphan@"},
		contentid.InvalidContentID{Value: "@1.0.0"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ids[%d] = %#v, want %#v", i, got[i], want[i])
		}
	}
}

func TestPoetryLock_ReadEmpty(t *testing.T) {
	got, err := (&PoetryLock{}).Read(context.Background(), strings.NewReader(""), deps.Options{})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want no ids", got)
	}
}

func TestPoetryLock_ReadUnreadable(t *testing.T) {
	_, err := (&PoetryLock{}).Read(context.Background(), strings.NewReader("[[package]\nname = "), deps.Options{})
	if !errors.Is(err, errors.ErrCodeLockfileUnreadable) {
		t.Fatalf("err = %v, want %s", err, errors.ErrCodeLockfileUnreadable)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Package", "package"},
		{"my_package", "my-package"},
		{"  package  ", "package"},
		{"  My_Package  ", "my-package"},
		{"zope.interface", "zope-interface"},
		{"a-_.b", "a-b"},
		{"", ""},
		{"my-package", "my-package"},
	}

	for _, tt := range tests {
		if got := normalize(tt.input); got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

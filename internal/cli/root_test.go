package cli

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/lockids/pkg/buildinfo"
)

func TestRootCommandSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()

	for _, name := range []string{"read", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCommandVersion(t *testing.T) {
	stdout, _, _, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if !strings.Contains(stdout, "lockids version "+buildinfo.Version) {
		t.Errorf("version output = %q", stdout)
	}
}

func TestCompletion(t *testing.T) {
	stdout, _, _, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion failed: %v", err)
	}
	if !strings.Contains(stdout, "lockids") {
		t.Errorf("bash completion does not mention lockids")
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug message logged at info level: %q", buf.String())
	}
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug message missing after SetLogLevel: %q", buf.String())
	}
}

func TestSupportedLockfiles(t *testing.T) {
	want := []string{"pnpm-lock.yaml", "package-lock.json", "poetry.lock", "Cargo.lock"}
	if got := supportedLockfiles(); !slices.Equal(got, want) {
		t.Fatalf("supportedLockfiles() = %v, want %v", got, want)
	}

	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	read, _, err := root.Find([]string{"read"})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range want {
		if !strings.Contains(root.Long, name) || !strings.Contains(read.Long, name) {
			t.Errorf("help text does not list %s", name)
		}
	}
}

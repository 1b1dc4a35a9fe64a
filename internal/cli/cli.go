// Package cli implements the lockids command-line interface.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lockids/pkg/buildinfo"
	"github.com/matzehuels/lockids/pkg/deps"
	"github.com/matzehuels/lockids/pkg/deps/javascript"
	"github.com/matzehuels/lockids/pkg/deps/python"
	"github.com/matzehuels/lockids/pkg/deps/rust"
	"github.com/matzehuels/lockids/pkg/observability"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// languages lists the supported ecosystems in detection order.
var languages = []*deps.Language{
	javascript.Language,
	python.Language,
	rust.Language,
}

// supportedLockfiles lists the file names the read command can detect.
func supportedLockfiles() []string {
	var names []string
	for _, l := range languages {
		names = append(names, l.Types()...)
	}
	return names
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "lockids",
		Short:        "lockids lists the package coordinates pinned by lockfiles",
		Long:         fmt.Sprintf("lockids reads package manager lockfiles (%s) and prints the content ID of every locked package.", strings.Join(supportedLockfiles(), ", ")),
		Version:      buildinfo.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			observability.SetReaderHooks(&logHooks{logger: c.Logger})
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.readCommand())
	root.AddCommand(c.completionCommand())

	return root
}

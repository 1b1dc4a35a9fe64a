package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lockids/pkg/contentid"
	"github.com/matzehuels/lockids/pkg/deps"
	"github.com/matzehuels/lockids/pkg/errors"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// readOpts holds the command-line flags for the read command.
type readOpts struct {
	format      string // text or json
	output      string // output file path (stdout if empty)
	failInvalid bool   // exit non-zero when any invalid id is found
}

func (o readOpts) validate() error {
	switch o.format {
	case formatText, formatJSON:
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want %s or %s)", o.format, formatText, formatJSON)
	}
}

// readCommand creates the read command.
func (c *CLI) readCommand() *cobra.Command {
	opts := readOpts{format: formatText}

	cmd := &cobra.Command{
		Use:   "read <lockfile>...",
		Short: "Print the content IDs of the packages pinned by lockfiles",
		Long: fmt.Sprintf(`Read one or more lockfiles and print the content ID of every locked package.

The lockfile type is detected from the file name. Supported files:
  %s

Results of several files are merged in argument order with duplicates removed.
Entries that cannot be resolved are reported as invalid IDs; run with -v to see
every rejected key.`, strings.Join(supportedLockfiles(), ", ")),
		Example: `  lockids read pnpm-lock.yaml
  lockids read --format json -o ids.json web/pnpm-lock.yaml api/Cargo.lock
  lockids read --fail-invalid package-lock.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRead(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", opts.format, "output format (text, json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.failInvalid, "fail-invalid", false, "exit with an error when any invalid content id is found")

	return cmd
}

// runRead reads every path, writes the merged ids to opts.output (or stdout)
// and prints per-file status lines to status.
func (c *CLI) runRead(ctx context.Context, stdout, status io.Writer, paths []string, opts readOpts) error {
	if err := opts.validate(); err != nil {
		return err
	}

	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	readers := deps.AllReaders(languages...)
	dopts := deps.Options{Logger: logger}

	var all []contentid.ID
	for _, path := range paths {
		r, err := deps.DetectReader(path, readers...)
		if err != nil {
			printError(status, "%s: %s", path, errors.UserMessage(err))
			return err
		}
		ids, err := deps.ReadFile(ctx, path, r, dopts)
		if err != nil {
			printError(status, "%s: %s", path, errors.UserMessage(err))
			return err
		}

		printFileStats(status, path, r.Type(), len(ids), contentid.CountInvalid(ids))
		for _, id := range ids {
			if !id.Valid() {
				printWarning(status, "invalid content id: %s", id)
			}
		}
		all = append(all, ids...)
	}

	all = contentid.Distinct(all)
	invalid := contentid.CountInvalid(all)
	if err := writeIDs(all, opts, stdout); err != nil {
		return err
	}
	if opts.output != "" {
		logger.Infof("Wrote content ids to %s", opts.output)
	}
	prog.done(fmt.Sprintf("Read %d content ids (%d invalid)", len(all), invalid))

	if opts.failInvalid && invalid > 0 {
		return errors.New(errors.ErrCodeInvalidContentID, "%d invalid content ids", invalid)
	}
	return nil
}

// jsonID is the JSON form of one id.
type jsonID struct {
	ID    string `json:"id"`
	Valid bool   `json:"valid"`
}

func writeIDs(ids []contentid.ID, opts readOpts, stdout io.Writer) error {
	out, err := openOutput(opts.output, stdout)
	if err != nil {
		return err
	}
	return writeAndClose(out, opts.format, ids)
}

// writeAndClose writes ids to out and closes it. A close failure is returned
// when the write itself succeeded.
func writeAndClose(out io.WriteCloser, format string, ids []contentid.ID) (err error) {
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	if format == formatJSON {
		return writeJSON(out, ids)
	}
	return writeText(out, ids)
}

func writeText(w io.Writer, ids []contentid.ID) error {
	for _, id := range ids {
		if _, err := fmt.Fprintln(w, id.String()); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, ids []contentid.ID) error {
	items := make([]jsonID, len(ids))
	for i, id := range ids {
		items[i] = jsonID{ID: id.String(), Valid: id.Valid()}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns stdout when path is empty, otherwise it creates the
// file at path, overwriting any existing one.
func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{stdout}, nil
	}
	return os.Create(path)
}

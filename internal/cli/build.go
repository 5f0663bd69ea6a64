package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtree/record"
	"github.com/katalvlaran/lvtree/render"
	"github.com/katalvlaran/lvtree/tree"
)

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Assemble records into a forest and print it",
		Long: `Assemble flat records into a forest and print it.

--root selects the top level: empty means records with a blank parent,
"0" or "null" means records whose parent is that sentinel, any other value
names the root record. With --without-root only the children of that
record are printed.`,
		Example: `  lvtree build -i org.json --sort order
  lvtree build --sqlite org.db --query "SELECT id, parent_id, name FROM org" --root 11 --without-root
  cat org.json | lvtree build -i - --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, rootOpts)
		},
	}

	f := cmd.Flags()
	f.StringP("input", "i", "", `records file (.json, .yaml, .yml), or "-" for JSON on stdin`)
	f.String("sqlite", "", "SQLite database to read records from")
	f.String("query", "", "SQL returning id, parent_id[, name[, ord]]")
	f.String("root", "", `root id, "0"/"null" sentinel, or empty for blank parents`)
	f.Bool("without-root", false, "print only the children of --root")
	f.String("sort", "", "sibling order (order|id|name), default input order")
	f.String("locale", "", "BCP 47 locale for --sort name")
	f.Int("max-depth", -1, "deepest level allowed, -1 for unlimited")
	f.Bool("no-cycle-check", false, "skip cycle detection (pair with --max-depth)")

	return cmd
}

func runBuild(cmd *cobra.Command, rootOpts *RootOptions) error {
	s, err := loadSettings(cmd, rootOpts.ConfigFile)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), s.Verbose)
	ctx := cmd.Context()

	records, err := loadRecords(ctx, cmd.InOrStdin(), s)
	if err != nil {
		return err
	}
	logger.Debug("records loaded", "source", s.source(), "count", len(records))

	cmpFn, err := record.Comparator(s.Sort, s.Locale)
	if err != nil {
		return err
	}

	opts := []tree.Option{
		tree.WithContext(ctx),
		tree.WithMaxDepth(s.MaxDepth),
		tree.WithCycleCheck(!s.NoCycleCheck),
		tree.WithLogger(logger),
	}
	var forest []*record.Record
	if s.WithoutRoot {
		forest, err = tree.BuildWithoutRoot(s.Root, records, cmpFn, opts...)
	} else {
		forest, err = tree.BuildWithRoot(s.Root, records, cmpFn, opts...)
	}
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	return render.Write(cmd.OutOrStdout(), s.Format, forest)
}

// loadRecords reads from the configured source.
func loadRecords(ctx context.Context, stdin io.Reader, s Settings) ([]*record.Record, error) {
	switch {
	case s.SQLite != "":
		db, err := record.OpenSQLite(s.SQLite)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return record.Query(ctx, db, s.Query)
	case s.Input == "-":
		return record.LoadReader(stdin, record.FormatJSON)
	default:
		return record.LoadFile(s.Input)
	}
}

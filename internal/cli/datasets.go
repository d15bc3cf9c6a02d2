package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// DatasetsOptions holds flags for the datasets command.
type DatasetsOptions struct {
	*RootOptions
	Database string
}

// NewDatasetsCommand creates the datasets command.
func NewDatasetsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DatasetsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "datasets [dataset]",
		Short: "List datasets and their record counts",
		Long: `List every dataset that holds at least one record, ordered by name.
With a dataset argument, report only that dataset's record count.

Example:
  datasets datasets --db ./datasets.db
  datasets datasets employees --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDatasets(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (overrides config)")

	return cmd
}

func runDatasets(opts *DatasetsOptions, args []string, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts.RootOptions, cmd, opts.Database)
	if err != nil {
		return err
	}
	logger := commandLogger(cfg, cmd)
	formatter := newFormatter(opts.RootOptions, cmd)

	gw, st, err := openGateway(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore(st, logger)

	if len(args) == 1 {
		info, err := gw.Dataset(cmd.Context(), args[0])
		if err != nil {
			return formatter.Fail("count records failed", err)
		}
		if formatter.Format == "json" {
			return formatter.Success(info)
		}
		return formatter.Success(fmt.Sprintf("%s\t%s", info.Name, formatCount(info.Records, "record")))
	}

	infos, err := gw.Datasets(cmd.Context())
	if err != nil {
		return formatter.Fail("list datasets failed", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(infos)
	}

	if len(infos) == 0 {
		return formatter.Success("No datasets.")
	}
	var sb strings.Builder
	for i, info := range infos {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%s\t%s", info.Name, formatCount(info.Records, "record"))
	}
	return formatter.Success(sb.String())
}

// formatCount renders n with a singular or plural noun.
func formatCount(n int64, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

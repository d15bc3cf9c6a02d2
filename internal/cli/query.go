package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/roach88/datasets/internal/dataset"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	*RootOptions
	Database string
	GroupBy  string
	SortBy   string
	Order    string
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "query <dataset>",
		Short: "Group or sort the records of a dataset",
		Long: `Group or sort the records of a dataset by a top-level field.

Exactly one of --group-by or --sort-by is used; --group-by wins when both
are given. Records whose field is null group under "null"; records missing
the field are left out of groups and sort with the nulls: first for asc,
last for desc.

Example:
  datasets query employees --group-by department
  datasets query products --sort-by price --order desc --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (overrides config)")
	cmd.Flags().StringVar(&opts.GroupBy, "group-by", "", "field to group records by")
	cmd.Flags().StringVar(&opts.SortBy, "sort-by", "", "field to sort records by")
	cmd.Flags().StringVar(&opts.Order, "order", "asc", "sort direction (asc|desc)")

	return cmd
}

func runQuery(opts *QueryOptions, name string, cmd *cobra.Command) error {
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

	res, err := gw.Query(cmd.Context(), dataset.Request{
		Dataset: name,
		GroupBy: opts.GroupBy,
		SortBy:  opts.SortBy,
		Order:   opts.Order,
	})
	if err != nil {
		return formatter.Fail("query failed", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(res)
	}

	body, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return WrapExitError(ExitFailure, "encode result", err)
	}
	return formatter.Success(string(body))
}

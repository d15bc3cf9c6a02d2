package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// InsertOptions holds flags for the insert command.
type InsertOptions struct {
	*RootOptions
	Database string
	File     string
}

// insertResult is the JSON payload for a successful insert.
type insertResult struct {
	Dataset   string  `json:"dataset"`
	RecordIDs []int64 `json:"recordIds"`
}

// NewInsertCommand creates the insert command.
func NewInsertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InsertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "insert <dataset> [json]",
		Short: "Append records to a dataset",
		Long: `Append one JSON object to a dataset, or many with --file.

Pass "-" as the record to read it from stdin. With --file, the file holds
one JSON object per line; blank lines are skipped and either every record
is stored or none is.

Example:
  datasets insert employees '{"name":"Raj","department":"IT"}'
  echo '{"item":"Pen"}' | datasets insert products -
  datasets insert products --file products.ndjson`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInsert(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (overrides config)")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "newline-delimited JSON file to insert")

	return cmd
}

func runInsert(opts *InsertOptions, args []string, cmd *cobra.Command) error {
	name := args[0]

	var payloads [][]byte
	switch {
	case opts.File != "" && len(args) == 2:
		return NewExitError(ExitCommandError, "provide either a record argument or --file, not both")
	case opts.File != "":
		lines, err := readLines(opts.File)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read --file", err)
		}
		if len(lines) == 0 {
			return NewExitError(ExitCommandError, fmt.Sprintf("no records in %s", opts.File))
		}
		payloads = lines
	case len(args) == 2 && args[1] == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read stdin", err)
		}
		payloads = [][]byte{data}
	case len(args) == 2:
		payloads = [][]byte{[]byte(args[1])}
	default:
		return NewExitError(ExitCommandError, "missing record: pass JSON, \"-\" for stdin, or --file")
	}

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

	ctx := cmd.Context()
	var ids []int64
	if len(payloads) == 1 && opts.File == "" {
		res, err := gw.Insert(ctx, name, payloads[0])
		if err != nil {
			return formatter.Fail("insert failed", err)
		}
		ids = []int64{res.RecordID}
	} else {
		ids, err = gw.InsertMany(ctx, name, payloads)
		if err != nil {
			return formatter.Fail("insert failed", err)
		}
	}

	formatter.VerboseLog("inserted %d record(s) into %s", len(ids), name)
	if formatter.Format == "json" {
		return formatter.Success(insertResult{Dataset: name, RecordIDs: ids})
	}
	for _, id := range ids {
		if err := formatter.Success(fmt.Sprintf("Record %d added to %s", id, name)); err != nil {
			return err
		}
	}
	return nil
}

// readLines returns the non-blank lines of path.
func readLines(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines [][]byte
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		lines = append(lines, append([]byte(nil), line...))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

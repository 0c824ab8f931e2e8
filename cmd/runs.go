package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/vision-cli/internal/runlog"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded task runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := runlog.New(journalPath()).List()
		if err != nil {
			return eris.Wrap(err, "runs: read journal")
		}
		if len(entries) == 0 {
			zap.L().Info("no runs recorded")
			return nil
		}
		formatRuns(os.Stdout, entries)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)
}

func formatRuns(out io.Writer, entries []runlog.Entry) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTASK\tSTATUS\tROWS\tSKIPPED\tSTARTED\tERROR")
	_, _ = fmt.Fprintln(w, "--\t----\t------\t----\t-------\t-------\t-----")

	for _, e := range entries {
		errMsg := e.Error
		if len(errMsg) > 50 {
			errMsg = errMsg[:47] + "..."
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			shortID(e.RunID),
			e.Task,
			e.Status,
			e.Rows,
			e.Skipped,
			e.StartedAt.Format("2006-01-02 15:04:05"),
			errMsg,
		)
	}
	_ = w.Flush()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

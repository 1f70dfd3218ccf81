package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/datapip-io/ati/pkg/ati"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRowsCommand creates the rows command.
func NewRowsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rows",
		Short: "Get the row count for the configured query",
		Long: `Retrieve the total amount of rows the configured query would return.
Issues a minimal single-row request; the response reports the true total.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRowsCommand()
		},
	}
}

func runRowsCommand() error {
	client, err := createClient(false)
	if err != nil {
		return err
	}

	resp, err := client.GetRows(context.Background(), effectiveFormat())
	if err != nil {
		return fmt.Errorf("failed to get row count: %w", err)
	}

	switch viper.GetString("output") {
	case OutputFormatJSON:
		writeBodyJSON(resp.Body)
	case OutputFormatYAML:
		writeBodyYAML(resp.Body)
	case OutputFormatTable:
		return outputRowCountTable(resp)
	default:
		writeBody(resp.Body)
	}

	return nil
}

// outputRowCountTable renders a parsed row-count document. Non-json bodies
// (html or xml responses) fall back to raw output.
func outputRowCountTable(resp *ati.Response) error {
	doc, err := ati.ParseRowCount(resp.Body)
	if err != nil {
		writeBody(resp.Body)

		return nil
	}

	if !doc.ErrorCode.IsZero() {
		_, _ = fmt.Fprintf(os.Stdout, "Upstream error code: %s\n", doc.ErrorCode.String())

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("#", "Row Count")

	for i, entry := range doc.RowCounts {
		_ = table.Append(fmt.Sprintf("%d", i+1), entry.RowCount)
	}

	_ = table.Render()

	return nil
}

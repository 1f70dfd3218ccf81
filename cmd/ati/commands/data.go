package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// DataOptions holds the options for fetching data.
type DataOptions struct {
	AllRows bool
	JQ      string
	NATSURL string
	Subject string
}

// NewDataCommand creates the data command.
func NewDataCommand() *cobra.Command {
	var opts DataOptions

	cmd := &cobra.Command{
		Use:   "data",
		Short: "Fetch the data for the configured query",
		Long: `Fetch the data for the configured query. With --all, every row of the
result set is fetched in fixed-size pages and each page is emitted in
order; otherwise a single request is issued with the parameters as
configured.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDataCommand(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.AllRows, "all", false, "fetch all rows of the result set, page by page")
	cmd.Flags().StringVar(&opts.JQ, "jq", "", "filter each JSON page body through a jq expression")
	cmd.Flags().StringVar(&opts.Subject, "publish", "", "publish each page body to this NATS subject instead of printing")
	cmd.Flags().StringVar(&opts.NATSURL, "nats-url", "", "NATS server URL (default nats://127.0.0.1:4222)")

	return cmd
}

func runDataCommand(opts DataOptions) error {
	client, err := createClient(opts.AllRows)
	if err != nil {
		return err
	}

	pages, err := client.GetData(context.Background(), effectiveFormat())
	if err != nil {
		return fmt.Errorf("failed to get data: %w", err)
	}

	if opts.Subject != "" {
		return publishPages(opts.NATSURL, opts.Subject, pages)
	}

	for _, page := range pages {
		if opts.JQ != "" {
			lines, err := applyJQ(opts.JQ, page.Body)
			if err != nil {
				return err
			}

			for _, line := range lines {
				_, _ = fmt.Fprintln(os.Stdout, line)
			}

			continue
		}

		switch viper.GetString("output") {
		case OutputFormatJSON:
			writeBodyJSON(page.Body)
		case OutputFormatYAML:
			writeBodyYAML(page.Body)
		default:
			writeBody(page.Body)
		}
	}

	return nil
}

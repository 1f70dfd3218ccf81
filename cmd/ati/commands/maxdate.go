package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewMaxDateCommand creates the maxdate command.
func NewMaxDateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "maxdate",
		Short: "Get the time until which data is available today",
		Long: `Retrieve the ISO time until which data for the configured space is
already available today. Only the "space" parameter of the configured
query is sent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMaxDateCommand()
		},
	}
}

func runMaxDateCommand() error {
	client, err := createClient(false)
	if err != nil {
		return err
	}

	resp, err := client.GetMaxDate(context.Background(), effectiveFormat())
	if err != nil {
		return fmt.Errorf("failed to get max date: %w", err)
	}

	switch viper.GetString("output") {
	case OutputFormatJSON:
		writeBodyJSON(resp.Body)
	case OutputFormatYAML:
		writeBodyYAML(resp.Body)
	default:
		writeBody(resp.Body)
	}

	return nil
}

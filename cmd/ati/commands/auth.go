package commands

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewAuthCommand creates the auth command group.
func NewAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authentication helpers",
		Long:  "Helpers for building the auth strings the Data API expects",
	}

	cmd.AddCommand(newAuthEncodeCommand())

	return cmd
}

func newAuthEncodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode EMAIL",
		Short: "Build a 'header:' auth string from account credentials",
		Long: `Prompt for the account password and print the basic-auth style
"header:B64" auth string, where B64 is the base64 encoding of
"email:password". Pass the result via --auth or ATI_AUTH.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := strings.TrimSpace(args[0])

			fmt.Fprint(os.Stderr, "Password: ")

			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}

			fmt.Fprintln(os.Stderr)

			credential := base64.StdEncoding.EncodeToString([]byte(email + ":" + string(bytePassword)))
			fmt.Fprintln(os.Stdout, "header:"+credential)

			return nil
		},
	}
}

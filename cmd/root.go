// Package cmd implements the CLI commands for newsmail using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "newsmail",
	Short: "newsmail — announce built news pages by email",
	Long: `newsmail turns built news pages into plain-text announcement email.
It converts each page's HTML into wrapped text with numbered link
references, pairs it with the original HTML in a multipart message,
and pipes the result to sendmail.

Usage:
  newsmail convert <file.html> [flags]
  newsmail send --site <dir> [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

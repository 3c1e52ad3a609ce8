package main

import (
	"fmt"
	"os"

	"github.com/aretw0/akinator/internal/cli"
	"github.com/aretw0/akinator/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "akinator",
	Short: "Akinator guesses the animal you are thinking of",
	Long: `Akinator asks yes/no questions until it can guess your animal.
When it guesses wrong it asks you for a question that tells your animal apart,
and remembers it for the next game.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(".")
		if err != nil {
			return err
		}
		return cli.RunSession(cmd.Context(), cfg, cmd.InOrStdin(), os.Stdout)
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

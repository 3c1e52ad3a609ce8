package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/akinator"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of akinator",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "akinator version %s\n", strings.TrimSpace(akinator.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package main

import (
	"github.com/aretw0/akinator/internal/cli"
	"github.com/aretw0/akinator/internal/config"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the decision tree as a Mermaid diagram",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(".")
		if err != nil {
			return err
		}
		return cli.PrintGraph(cmd.Context(), cfg, cmd.OutOrStdout())
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how many animals and questions have been learned",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(".")
		if err != nil {
			return err
		}
		return cli.PrintStats(cmd.Context(), cfg, cmd.OutOrStdout())
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the decision tree as YAML to stdout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(".")
		if err != nil {
			return err
		}
		return cli.ExportTree(cmd.Context(), cfg, cmd.OutOrStdout())
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the decision tree with a YAML document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(".")
		if err != nil {
			return err
		}
		return cli.ImportTree(cmd.Context(), cfg, args[0], cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(graphCmd, statsCmd, exportCmd, importCmd)
}

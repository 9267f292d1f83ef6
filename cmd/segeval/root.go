package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/segeval/internal/config"
	"github.com/jackzampolin/segeval/internal/output"
	"github.com/jackzampolin/segeval/version"
)

var (
	cfgFile      string
	outputFormat string

	cfgManager *config.Manager
)

var rootCmd = &cobra.Command{
	Use:   "segeval",
	Short: "Strict agreement metrics for document segmentation",
	Long: `Segeval scores a predicted segmentation of multi-page dossiers into
documents against a human-labeled ground truth.

A document is a contiguous, 1-based inclusive page range within a named
dossier. Matching is strict: a predicted document counts only if its dossier
name and exact page bounds equal a ground-truth document's. From the matched
set, segeval reports strict precision, recall, IoU and F1.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.segeval/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "", "output format: yaml or json (default from config)",
	)

	// Load config and fix the output format before any command runs
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfgManager = cm

		format := outputFormat
		if format == "" {
			format = cm.Get().Output
		}
		output.SetFormat(format)
		return nil
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(configCmd)
}

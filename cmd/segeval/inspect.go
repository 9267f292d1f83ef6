package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/segeval/internal/annotations"
	"github.com/jackzampolin/segeval/internal/dossier"
	"github.com/jackzampolin/segeval/internal/output"
)

var (
	annotationsPath string
	dossierDir      string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Check annotation spans against the dossier PDFs",
	Long: `Inspect resolves each dossier named in an annotation file to a PDF
under the dossier directory, reads its physical page count and flags document
spans that fall outside it. Advisory only; exits zero even when issues are
found.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := dossierDir
		if dir == "" {
			dir = cfgManager.Get().DossierDir
		}
		if dir == "" {
			return fmt.Errorf("no dossier directory: pass --dossier-dir or set dossier_dir in config")
		}

		opts := annotations.Options{SkipValidation: !cfgManager.Get().ValidateSchema}
		docs, err := annotations.LoadFile(annotationsPath, opts)
		if err != nil {
			return err
		}

		insp := dossier.NewInspector(dir, nil, nil)
		rep, err := insp.Inspect(docs)
		if err != nil {
			return err
		}
		return output.Print(rep)
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&annotationsPath, "annotations", "a", "", "annotation file to check (required)")
	inspectCmd.Flags().StringVarP(&dossierDir, "dossier-dir", "d", "", "directory containing dossier PDFs (default from config)")
	inspectCmd.MarkFlagRequired("annotations")
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notary-profile/internal/usecase"
)

func exportCmd(opts *rootOptions) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Fetch the profile and export it as html, pdf or json",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			s, err := a.processor.Refresh(cmd.Context())
			if err != nil {
				return err
			}
			if err := stateErr(s); err != nil {
				return err
			}

			b, err := a.exporter.Export(cmd.Context(), s, format)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			if err := os.WriteFile(output, b, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			a.logger.Info("export.written", "path", output, "format", format, "bytes", len(b))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", usecase.FormatHTML, "export format: html|pdf|json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

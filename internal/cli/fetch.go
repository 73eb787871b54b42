package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"notary-profile/internal/domain"
	"notary-profile/internal/ui/tui"
)

// errFetchFailed is returned after the error state has been printed.
var errFetchFailed = errors.New("profile fetch failed")

func fetchCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Run one fetch cycle and print the resulting view state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			s, err := a.processor.Refresh(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			switch format {
			case "json":
			case "pretty":
				enc.SetIndent("", "  ")
			default:
				return fmt.Errorf("unknown format %q (json|pretty)", format)
			}
			if err := enc.Encode(s); err != nil {
				return err
			}
			return stateErr(s)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "pretty", "output format: json|pretty")
	return cmd
}

func showCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Fetch the profile and print it as a terminal card",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			s, err := a.processor.Refresh(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderCard(tui.DefaultTheme(), s))
			return stateErr(s)
		},
	}
}

func tuiCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive profile view with retry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), a.processor)
		},
	}
}

func stateErr(s domain.ViewState) error {
	if s.Status == domain.StatusError {
		return fmt.Errorf("%w: %s", errFetchFailed, s.Message)
	}
	return nil
}

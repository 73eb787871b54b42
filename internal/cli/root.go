package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	username   string
	endpoint   string
}

func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "notary-profile",
		Short:         "Fetch and display a notary signing agent's directory profile",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file (env vars override it)")
	cmd.PersistentFlags().StringVarP(&opts.username, "username", "u", "", "directory username to look up")
	cmd.PersistentFlags().StringVar(&opts.endpoint, "endpoint", "", "directory lookup URL")

	cmd.AddCommand(
		fetchCmd(opts),
		showCmd(opts),
		tuiCmd(opts),
		exportCmd(opts),
		serveCmd(opts),
	)
	return cmd
}

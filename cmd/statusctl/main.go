package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tangle-network/operator-status/version"
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "statusctl",
		Short:         "Inspect and interact with the operator status registry.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(selectorsCmd())
	root.AddCommand(decodeCmd())
	root.AddCommand(signCmd())
	root.AddCommand(statusCmd())
	root.AddCommand(heartbeatCmd())
	root.AddCommand(versionCmd())
	root.Version = version.Version
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

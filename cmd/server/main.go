package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:          "eduaventuras",
		Short:        "EduAventuras web frontend",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")

	serve := newServeCmd(&configFile)
	root.AddCommand(serve, newMigrateCmd(&configFile))
	// plain "eduaventuras" starts the server
	root.RunE = serve.RunE
	return root
}

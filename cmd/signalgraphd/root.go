package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "signalgraphd",
		Short: "Signal-graph risk scoring service",
		Long: `signalgraphd scores background-check signal selections, classifies
them into risk tiers and renders the candidate/signal graph.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	root.AddCommand(
		newServeCmd(&configPath),
		newEvaluateCmd(),
		newSignalsCmd(),
		newProfilesCmd(),
	)
	return root
}

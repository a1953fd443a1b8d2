package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "portal",
		Short:         "University portal messaging",
		Long:          "Compose, send and search portal messages from the command line or serve them as a JSON API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newDraftCmd(a),
		newInboxCmd(a),
		newSearchCmd(a),
		newSavedCmd(a),
		newServeCmd(a),
	)
	return root
}

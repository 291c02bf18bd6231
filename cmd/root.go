package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "aurahub",
	Short: "A credential-isolating HTTP wrapper around the Streamtape API",
	Long: `AuraHub forwards client requests to the Streamtape file-hosting API,
attaching the configured account login and key server-side so API
credentials never reach clients.`,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"

	"github.com/AuraHubTeam/AuraHub/internal/conf"
	"github.com/spf13/cobra"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Version: %s\nBuiltAt: %s\nCommit: %s\nAuthor: %s\n",
			conf.Version, conf.BuiltAt, conf.GitCommit, conf.GitAuthor)
	},
}

func init() {
	RootCmd.AddCommand(VersionCmd)
}

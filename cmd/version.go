package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xll-gen/filepacker/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the filepacker version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "filepacker "+version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

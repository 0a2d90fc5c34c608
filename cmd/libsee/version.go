// version.go implements the 'libsee version' command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kolkov/libsee/see"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		info := see.GetInfo()
		fmt.Fprintf(cmd.OutOrStdout(), "libsee version %s (clock %s, %d functions, %d units)\n",
			info.Version, info.Clock, info.Functions, info.MaxUnits)
	},
}

func init() {
	rootCmd.Version = see.Version
}

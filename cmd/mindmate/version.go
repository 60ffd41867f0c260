package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nithin218/mindmate"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mindmate",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mindmate version %s\n", strings.TrimSpace(mindmate.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

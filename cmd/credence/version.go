package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"credence/internal/buildconfig"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("credence %s\ncommit %s\n", buildconfig.Version(), buildconfig.Commit())
	},
}

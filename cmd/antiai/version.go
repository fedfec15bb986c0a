package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "v0.1"
	build   = "dev"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("antiai %s (%s)\n", version, build)
	},
}

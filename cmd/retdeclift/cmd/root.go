package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "retdeclift",
	Short: "arm64 instruction-to-IR lifter demo",
	Long:  `retdeclift translates a small textual arm64 instruction syntax into LLVM IR using the internal/arm64 translator core.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(liftCmd)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "quizctl",
	Short: "quizctl - turn word documents into shareable quizzes",
	Long: `quizctl works with the same quiz JSON the quizforge web service
produces: it extracts multiple-choice questions from .docx documents
and merges existing quiz files.

The extraction is best-effort. Documents are not schema-constrained,
so review the output before sharing it.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("quizctl v0.1.0")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

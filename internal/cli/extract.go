package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quizforge/quizforge/internal/extract"
)

var extractOut string

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <file.docx>",
	Short: "Extract a quiz from a .docx document",
	Long: `Extract parses a word-processing document and emits the detected
multiple-choice questions as quiz JSON.

Example:
  quizctl extract exam.docx
  quizctl extract exam.docx -o exam-quiz.json`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "output JSON path (default: stdout)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	q, err := extract.Extract(data)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "extracted %d questions\n", len(q.Questions))

	buf, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return err
	}
	buf = append(buf, '\n')

	if extractOut == "" {
		_, err = os.Stdout.Write(buf)
		return err
	}
	return os.WriteFile(extractOut, buf, 0o644)
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quizforge/quizforge/internal/quiz"
)

var (
	combineOut   string
	combineTitle string
)

// combineCmd represents the combine command
var combineCmd = &cobra.Command{
	Use:   "combine <quiz.json> [quiz.json...]",
	Short: "Merge several quiz JSON files into one",
	Long: `Combine concatenates the questions of several quiz files, in
argument order, under a single title.

Example:
  quizctl combine week1.json week2.json -o semester.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCombine,
}

func init() {
	rootCmd.AddCommand(combineCmd)
	combineCmd.Flags().StringVarP(&combineOut, "out", "o", "combined-quiz.json", "output JSON path")
	combineCmd.Flags().StringVarP(&combineTitle, "title", "t", "Combined Quiz", "title for the combined quiz")
}

func runCombine(cmd *cobra.Command, args []string) error {
	var inputs []quiz.Quiz
	for _, path := range args {
		buf, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		var q quiz.Quiz
		if err := json.Unmarshal(buf, &q); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		if len(q.Questions) == 0 {
			fmt.Fprintf(os.Stderr, "warning: %s has no questions, skipping\n", path)
			continue
		}
		inputs = append(inputs, q)
		fmt.Fprintf(os.Stderr, "added %d questions from %s\n", len(q.Questions), path)
	}

	combined := quiz.Combine(combineTitle, inputs...)
	fmt.Fprintf(os.Stderr, "total questions: %d\n", len(combined.Questions))

	buf, err := json.MarshalIndent(combined, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(combineOut, append(buf, '\n'), 0o644)
}

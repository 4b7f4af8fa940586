package quiz

// QuestionResult reports the outcome of one question.
type QuestionResult struct {
	QuestionID    string `json:"questionId"`
	Correct       bool   `json:"correct"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
}

// Result is the outcome of grading one set of answers.
type Result struct {
	TotalQuestions   int              `json:"totalQuestions"`
	CorrectAnswers   int              `json:"correctAnswers"`
	IncorrectAnswers int              `json:"incorrectAnswers"`
	Score            float64          `json:"score"` // percentage, 0-100
	QuestionResults  []QuestionResult `json:"questionResults"`
}

// Grade scores a set of answers (question id -> chosen option id)
// against the quiz. Questions without a correct option are skipped,
// matching the behavior the result page always had.
func Grade(q Quiz, answers map[string]string) Result {
	res := Result{
		TotalQuestions:  len(q.Questions),
		QuestionResults: []QuestionResult{},
	}

	for _, question := range q.Questions {
		correct := question.CorrectOption()
		if correct == nil {
			continue
		}

		chosenID := answers[question.ID]
		chosenText := ""
		for _, opt := range question.Options {
			if opt.ID == chosenID {
				chosenText = opt.Text
				break
			}
		}

		isCorrect := chosenID == correct.ID
		if isCorrect {
			res.CorrectAnswers++
		} else {
			res.IncorrectAnswers++
		}
		res.QuestionResults = append(res.QuestionResults, QuestionResult{
			QuestionID:    question.ID,
			Correct:       isCorrect,
			UserAnswer:    chosenText,
			CorrectAnswer: correct.Text,
		})
	}

	if res.TotalQuestions > 0 {
		res.Score = float64(res.CorrectAnswers) / float64(res.TotalQuestions) * 100
	}
	return res
}

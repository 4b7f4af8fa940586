package quiz

// Combine merges several quizzes into one, preserving question order
// across inputs. Quizzes with no questions contribute nothing; IDs are
// kept as-is since they are already unique per extraction.
func Combine(title string, quizzes ...Quiz) Quiz {
	combined := Quiz{Title: title, Questions: []Question{}}
	for _, q := range quizzes {
		combined.Questions = append(combined.Questions, q.Questions...)
	}
	return combined
}

// Validate reports whether the quiz is structurally sound for storage:
// a title, at least one question, and every question carrying options
// with at least one marked correct.
func Validate(q Quiz) bool {
	if q.Title == "" || len(q.Questions) == 0 {
		return false
	}
	for _, question := range q.Questions {
		if len(question.Options) == 0 {
			return false
		}
		if question.CorrectOption() == nil {
			return false
		}
	}
	return true
}

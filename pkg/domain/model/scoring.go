package model

// Scoring helpers over a question group template and a flat answer list.
// These are pure read-only computations; validation happens at the
// submission boundary, not here.

// GroupAnswers filters answers down to those belonging to the group.
func GroupAnswers(answers []Answer, group *QuestionGroup) []Answer {
	var matched []Answer
	for _, a := range answers {
		if a.GroupID == group.ID {
			matched = append(matched, a)
		}
	}
	return matched
}

// CompletionPercentage returns the percentage of the group's questions
// that have a matching answer. A group with zero questions reports 100%:
// there is nothing left to answer.
func CompletionPercentage(group *QuestionGroup, answers []Answer) int {
	total := len(group.Questions)
	if total == 0 {
		return 100
	}
	return len(GroupAnswers(answers, group)) * 100 / total
}

// AllocatedScoreTotal returns the sum of allocated scores over the
// group's questions, 0 for an empty group.
func AllocatedScoreTotal(group *QuestionGroup) int {
	total := 0
	for i := range group.Questions {
		total += group.Questions[i].AllocatedScore
	}
	return total
}

// AchievedScoreTotal returns the sum of submitted scores for the group.
func AchievedScoreTotal(group *QuestionGroup, answers []Answer) int {
	total := 0
	for _, a := range GroupAnswers(answers, group) {
		total += a.Score
	}
	return total
}

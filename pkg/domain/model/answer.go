package model

import (
	"github.com/complia-lab/themis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// AnswerStatus represents the auditor's yes/no/partial finding
type AnswerStatus string

const (
	AnswerStatusYes     AnswerStatus = "Yes"
	AnswerStatusNo      AnswerStatus = "No"
	AnswerStatusPartial AnswerStatus = "Partial"
)

// IsValid checks if the answer status is valid
func (s AnswerStatus) IsValid() bool {
	switch s {
	case AnswerStatusYes, AnswerStatusNo, AnswerStatusPartial:
		return true
	default:
		return false
	}
}

// AnswerRating represents the compliance rating of an answer
type AnswerRating string

const (
	AnswerRatingCompiled    AnswerRating = "Compiled"
	AnswerRatingNotCompiled AnswerRating = "NotCompiled"
	AnswerRatingObservation AnswerRating = "Observation"
)

// IsValid checks if the answer rating is valid
func (r AnswerRating) IsValid() bool {
	switch r {
	case AnswerRatingCompiled, AnswerRatingNotCompiled, AnswerRatingObservation:
		return true
	default:
		return false
	}
}

// Answer represents a submitted answer to one audit question
type Answer struct {
	QuestionID types.QuestionID `json:"questionId" firestore:"questionId"`
	GroupID    types.GroupID    `json:"queGroupId" firestore:"groupId"`
	Score      int              `json:"score" firestore:"score"`
	Status     AnswerStatus     `json:"status" firestore:"status"`
	Rating     AnswerRating     `json:"rating" firestore:"rating"`
	Remark     string           `json:"remark,omitempty" firestore:"remark,omitempty"`
}

// ValidateAgainst validates the answer at the submission boundary: status
// and rating must be set to valid enum values, and the score must be
// within [0, allocatedScore] of the referenced question. The scoring
// functions themselves accept whatever is stored.
func (a *Answer) ValidateAgainst(q *Question) error {
	if a.QuestionID == "" {
		return goerr.New("question ID is required", goerr.T(ErrTagInvalid))
	}
	if q == nil {
		return goerr.New("answer references unknown question",
			goerr.V("questionId", a.QuestionID), goerr.T(ErrTagInvalid))
	}
	if !a.Status.IsValid() {
		return goerr.New("answer status is required",
			goerr.V("questionId", a.QuestionID),
			goerr.V("status", a.Status), goerr.T(ErrTagInvalid))
	}
	if !a.Rating.IsValid() {
		return goerr.New("answer rating is required",
			goerr.V("questionId", a.QuestionID),
			goerr.V("rating", a.Rating), goerr.T(ErrTagInvalid))
	}
	if a.Score < 0 || a.Score > q.AllocatedScore {
		return goerr.New("answer score out of range",
			goerr.V("questionId", a.QuestionID),
			goerr.V("score", a.Score),
			goerr.V("allocatedScore", q.AllocatedScore), goerr.T(ErrTagInvalid))
	}
	return nil
}

// UpsertAnswer inserts the answer into the list, replacing in place any
// existing answer for the same question. Order is preserved; a new
// question's answer is appended. This keeps the invariant of at most one
// answer per question.
func UpsertAnswer(answers []Answer, next Answer) []Answer {
	for i := range answers {
		if answers[i].QuestionID == next.QuestionID {
			answers[i] = next
			return answers
		}
	}
	return append(answers, next)
}

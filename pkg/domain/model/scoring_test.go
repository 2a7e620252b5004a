package model_test

import (
	"testing"

	"github.com/complia-lab/themis/pkg/domain/model"
	"github.com/complia-lab/themis/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func newTestGroup(id types.GroupID, scores ...int) *model.QuestionGroup {
	group := &model.QuestionGroup{
		ID:   id,
		Name: "Group " + string(id),
	}
	for i, s := range scores {
		group.Questions = append(group.Questions, model.Question{
			ID:             types.QuestionID(string(id) + "-q" + string(rune('1'+i))),
			Text:           "question",
			AllocatedScore: s,
			GroupID:        id,
		})
	}
	return group
}

func TestGroupAnswers(t *testing.T) {
	group := newTestGroup("g1", 10, 10)
	answers := []model.Answer{
		{QuestionID: "g1-q1", GroupID: "g1", Score: 5},
		{QuestionID: "g2-q1", GroupID: "g2", Score: 3},
		{QuestionID: "g1-q2", GroupID: "g1", Score: 7},
	}

	matched := model.GroupAnswers(answers, group)
	gt.Equal(t, len(matched), 2)
	gt.Equal(t, matched[0].QuestionID, types.QuestionID("g1-q1"))
	gt.Equal(t, matched[1].QuestionID, types.QuestionID("g1-q2"))

	// Input list is untouched
	gt.Equal(t, len(answers), 3)
}

func TestCompletionPercentage(t *testing.T) {
	t.Run("partial completion", func(t *testing.T) {
		group := newTestGroup("g1", 10, 10, 10, 10)
		answers := []model.Answer{
			{QuestionID: "g1-q1", GroupID: "g1", Score: 5},
		}
		gt.Equal(t, model.CompletionPercentage(group, answers), 25)
	})

	t.Run("full completion", func(t *testing.T) {
		group := newTestGroup("g1", 10, 10)
		answers := []model.Answer{
			{QuestionID: "g1-q1", GroupID: "g1"},
			{QuestionID: "g1-q2", GroupID: "g1"},
		}
		gt.Equal(t, model.CompletionPercentage(group, answers), 100)
	})

	t.Run("no answers", func(t *testing.T) {
		group := newTestGroup("g1", 10, 10)
		gt.Equal(t, model.CompletionPercentage(group, nil), 0)
	})

	t.Run("empty group reports 100", func(t *testing.T) {
		group := newTestGroup("g1")
		gt.Equal(t, model.CompletionPercentage(group, nil), 100)
	})
}

func TestAllocatedScoreTotal(t *testing.T) {
	t.Run("sums allocated scores", func(t *testing.T) {
		group := newTestGroup("g1", 10, 15, 15)
		gt.Equal(t, model.AllocatedScoreTotal(group), 40)
	})

	t.Run("empty group is zero", func(t *testing.T) {
		group := newTestGroup("g1")
		gt.Equal(t, model.AllocatedScoreTotal(group), 0)
	})

	t.Run("zero score question counts toward completion only", func(t *testing.T) {
		group := newTestGroup("g1", 0, 10)
		gt.Equal(t, model.AllocatedScoreTotal(group), 10)
		answers := []model.Answer{
			{QuestionID: "g1-q1", GroupID: "g1", Score: 0},
		}
		gt.Equal(t, model.CompletionPercentage(group, answers), 50)
	})
}

func TestAchievedScoreTotal(t *testing.T) {
	group := newTestGroup("g1", 10, 10)
	answers := []model.Answer{
		{QuestionID: "g1-q1", GroupID: "g1", Score: 4},
		{QuestionID: "g1-q2", GroupID: "g1", Score: 9},
		{QuestionID: "g2-q1", GroupID: "g2", Score: 100},
	}
	gt.Equal(t, model.AchievedScoreTotal(group, answers), 13)
}

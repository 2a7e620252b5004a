package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/complia-lab/themis/pkg/domain/interfaces"
	"github.com/complia-lab/themis/pkg/domain/model"
	"github.com/complia-lab/themis/pkg/domain/types"
	"github.com/complia-lab/themis/pkg/repository"
	"github.com/complia-lab/themis/pkg/service/calendar"
	"github.com/complia-lab/themis/pkg/usecase"
)

func newTestUseCases(t *testing.T) (*usecase.UseCases, interfaces.Repository) {
	t.Helper()
	repo := repository.NewMemory()
	t.Cleanup(func() { _ = repo.Close() })

	cache := calendar.NewEventCache("events", 32, time.Minute, repo.ListEventsInRange)
	horizons := usecase.PrefetchHorizons{Days: 3, Weeks: 2, Months: 3}
	return usecase.New(repo, cache, model.DefaultSeverities(), horizons), repo
}

func createTestTemplate(t *testing.T, ucs *usecase.UseCases) *model.AuditTemplate {
	t.Helper()
	tmpl, err := ucs.Template.Create(context.Background(), &usecase.TemplateInput{
		Name:      "Fire safety",
		CreatedBy: "ehs@example.com",
		Groups: []usecase.GroupInput{
			{
				Name: "Extinguishers",
				Questions: []usecase.QuestionInput{
					{Text: "Extinguishers inspected?", ColorCode: "red", AllocatedScore: 10},
					{Text: "Access unobstructed?", ColorCode: "yellow", AllocatedScore: 5},
				},
			},
		},
	})
	gt.NoError(t, err)
	return tmpl
}

func createTestDraft(t *testing.T, ucs *usecase.UseCases, tmpl *model.AuditTemplate) *model.ScheduledAudit {
	t.Helper()
	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	audit, err := ucs.Audit.CreateDraft(context.Background(), &usecase.AuditInput{
		TemplateID: tmpl.ID,
		Title:      "Q2 fire safety walkthrough",
		FactoryID:  types.NewFactoryID(),
		Division:   "Assembly",
		StartDate:  start,
		EndDate:    start.Add(6 * time.Hour),
		CreatedBy:  "lead@example.com",
	})
	gt.NoError(t, err)
	return audit
}

func TestTemplateCreate(t *testing.T) {
	ucs, _ := newTestUseCases(t)

	tmpl := createTestTemplate(t, ucs)
	gt.NotEqual(t, tmpl.ID, types.TemplateID(""))
	gt.Equal(t, tmpl.AchievableScore(), 15)
	gt.Equal(t, tmpl.QuestionCount(), 2)

	// Server assigns IDs and threads the group ID through questions
	group := tmpl.Groups[0]
	gt.NotEqual(t, group.ID, types.GroupID(""))
	for _, q := range group.Questions {
		gt.Equal(t, q.GroupID, group.ID)
	}
}

func TestTemplateCreateRejectsUnknownSeverity(t *testing.T) {
	ucs, _ := newTestUseCases(t)

	_, err := ucs.Template.Create(context.Background(), &usecase.TemplateInput{
		Name: "Bad template",
		Groups: []usecase.GroupInput{
			{
				Name: "Group",
				Questions: []usecase.QuestionInput{
					{Text: "Question?", ColorCode: "magenta", AllocatedScore: 5},
				},
			},
		},
	})
	gt.Error(t, err)
}

func TestTemplateUpdate(t *testing.T) {
	ucs, _ := newTestUseCases(t)
	ctx := context.Background()

	tmpl := createTestTemplate(t, ucs)

	updated, err := ucs.Template.Update(ctx, tmpl.ID, &usecase.TemplateInput{
		Name: "Fire safety v2",
		Groups: []usecase.GroupInput{
			{
				ID:   tmpl.Groups[0].ID,
				Name: "Extinguishers",
				Questions: []usecase.QuestionInput{
					{Text: "Extinguishers inspected?", ColorCode: "red", AllocatedScore: 20},
				},
			},
		},
	})
	gt.NoError(t, err)
	gt.Equal(t, updated.Name, "Fire safety v2")
	gt.Equal(t, updated.AchievableScore(), 20)
	gt.Equal(t, updated.Groups[0].ID, tmpl.Groups[0].ID)
}

func TestAuditCreateDraft(t *testing.T) {
	ucs, repo := newTestUseCases(t)
	ctx := context.Background()

	tmpl := createTestTemplate(t, ucs)
	audit := createTestDraft(t, ucs, tmpl)

	gt.Equal(t, audit.ID, types.AuditID(1))
	gt.Equal(t, audit.Status, types.AuditStatusDraft)

	// Creation records the initial draft history entry
	histories, err := repo.ListStatusHistories(ctx, audit.ID)
	gt.NoError(t, err)
	gt.Equal(t, len(histories), 1)
	gt.Equal(t, histories[0].Status, types.AuditStatusDraft)
	gt.Equal(t, histories[0].ChangedBy, "lead@example.com")

	// Second draft gets the next serial number
	second := createTestDraft(t, ucs, tmpl)
	gt.Equal(t, second.ID, types.AuditID(2))
}

func TestAuditCreateDraftUnknownTemplate(t *testing.T) {
	ucs, _ := newTestUseCases(t)

	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	_, err := ucs.Audit.CreateDraft(context.Background(), &usecase.AuditInput{
		TemplateID: types.NewTemplateID(),
		Title:      "Orphan audit",
		FactoryID:  types.NewFactoryID(),
		StartDate:  start,
		EndDate:    start.Add(time.Hour),
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrTemplateNotFound))
}

func TestAuditLifecycle(t *testing.T) {
	ucs, _ := newTestUseCases(t)
	ctx := context.Background()

	tmpl := createTestTemplate(t, ucs)
	audit := createTestDraft(t, ucs, tmpl)
	q1 := tmpl.Groups[0].Questions[0]

	// draft -> scheduled
	audit, err := ucs.Audit.Advance(ctx, audit.ID, types.AuditStatusScheduled, nil, "lead@example.com", "dates confirmed")
	gt.NoError(t, err)
	gt.Equal(t, audit.Status, types.AuditStatusScheduled)

	// scheduled -> ongoing, carrying the first answer
	answers := []model.Answer{{
		QuestionID: q1.ID,
		GroupID:    q1.GroupID,
		Score:      5,
		Status:     model.AnswerStatusYes,
		Rating:     model.AnswerRatingCompiled,
	}}
	audit, err = ucs.Audit.Advance(ctx, audit.ID, types.AuditStatusOngoing, answers, "lead@example.com", "")
	gt.NoError(t, err)
	gt.Equal(t, audit.Status, types.AuditStatusOngoing)
	gt.Equal(t, len(audit.Answers), 1)

	// Resubmitting the same question replaces rather than duplicates
	answers[0].Score = 8
	audit, err = ucs.Audit.SubmitAnswers(ctx, audit.ID, answers)
	gt.NoError(t, err)
	gt.Equal(t, len(audit.Answers), 1)
	answer := audit.AnswerFor(q1.ID)
	gt.NotNil(t, answer)
	gt.Equal(t, answer.Score, 8)

	// ongoing -> completed carries the final list unchanged in count
	audit, err = ucs.Audit.Advance(ctx, audit.ID, types.AuditStatusCompleted, answers, "lead@example.com", "")
	gt.NoError(t, err)
	gt.Equal(t, audit.Status, types.AuditStatusCompleted)
	gt.Equal(t, len(audit.Answers), 1)
	gt.Equal(t, audit.TotalScore(), 8)
	gt.True(t, audit.AnswerFor(types.QuestionID("missing")) == nil)

	// Full history: draft, scheduled, ongoing, completed
	histories, err := ucs.Audit.History(ctx, audit.ID)
	gt.NoError(t, err)
	gt.Equal(t, len(histories), 4)
	gt.Equal(t, histories[1].Note, "dates confirmed")
}

func TestAuditAdvanceRejectsSkip(t *testing.T) {
	ucs, _ := newTestUseCases(t)
	ctx := context.Background()

	tmpl := createTestTemplate(t, ucs)
	audit := createTestDraft(t, ucs, tmpl)

	_, err := ucs.Audit.Advance(ctx, audit.ID, types.AuditStatusOngoing, nil, "lead@example.com", "")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrIllegalTransition))

	// Failed transition leaves state untouched
	current, err := ucs.Audit.Get(ctx, audit.ID)
	gt.NoError(t, err)
	gt.Equal(t, current.Status, types.AuditStatusDraft)
}

func TestAuditCompletedIsTerminal(t *testing.T) {
	ucs, _ := newTestUseCases(t)
	ctx := context.Background()

	tmpl := createTestTemplate(t, ucs)
	audit := createTestDraft(t, ucs, tmpl)
	for _, next := range []types.AuditStatus{types.AuditStatusScheduled, types.AuditStatusOngoing, types.AuditStatusCompleted} {
		var err error
		audit, err = ucs.Audit.Advance(ctx, audit.ID, next, nil, "lead@example.com", "")
		gt.NoError(t, err)
	}

	q1 := tmpl.Groups[0].Questions[0]
	_, err := ucs.Audit.SubmitAnswers(ctx, audit.ID, []model.Answer{{
		QuestionID: q1.ID,
		GroupID:    q1.GroupID,
		Score:      3,
		Status:     model.AnswerStatusNo,
		Rating:     model.AnswerRatingNotCompiled,
	}})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrAuditCompleted))
}

func TestAuditAnswerValidation(t *testing.T) {
	ucs, _ := newTestUseCases(t)
	ctx := context.Background()

	tmpl := createTestTemplate(t, ucs)
	audit := createTestDraft(t, ucs, tmpl)
	audit, err := ucs.Audit.Advance(ctx, audit.ID, types.AuditStatusScheduled, nil, "lead@example.com", "")
	gt.NoError(t, err)
	q1 := tmpl.Groups[0].Questions[0]

	cases := []struct {
		name   string
		answer model.Answer
	}{
		{
			name: "score above allocated",
			answer: model.Answer{
				QuestionID: q1.ID, GroupID: q1.GroupID, Score: q1.AllocatedScore + 1,
				Status: model.AnswerStatusYes, Rating: model.AnswerRatingCompiled,
			},
		},
		{
			name: "missing status",
			answer: model.Answer{
				QuestionID: q1.ID, GroupID: q1.GroupID, Score: 5,
				Rating: model.AnswerRatingCompiled,
			},
		},
		{
			name: "missing rating",
			answer: model.Answer{
				QuestionID: q1.ID, GroupID: q1.GroupID, Score: 5,
				Status: model.AnswerStatusYes,
			},
		},
		{
			name: "unknown question",
			answer: model.Answer{
				QuestionID: types.NewQuestionID(), GroupID: q1.GroupID, Score: 5,
				Status: model.AnswerStatusYes, Rating: model.AnswerRatingCompiled,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ucs.Audit.Advance(ctx, audit.ID, types.AuditStatusOngoing, []model.Answer{tc.answer}, "lead@example.com", "")
			gt.Error(t, err)

			// The batch must not be partially applied
			current, err := ucs.Audit.Get(ctx, audit.ID)
			gt.NoError(t, err)
			gt.Equal(t, current.Status, types.AuditStatusScheduled)
			gt.Equal(t, len(current.Answers), 0)
		})
	}
}

func TestActionPlanLifecycle(t *testing.T) {
	ucs, _ := newTestUseCases(t)
	ctx := context.Background()

	tmpl := createTestTemplate(t, ucs)
	audit := createTestDraft(t, ucs, tmpl)
	q1 := tmpl.Groups[0].Questions[0]

	plan, err := ucs.ActionPlan.Create(ctx, &usecase.ActionPlanInput{
		AuditID:     audit.ID,
		QuestionID:  q1.ID,
		Description: "Re-inspect extinguishers",
		DueDate:     time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	gt.NoError(t, err)

	plans, err := ucs.ActionPlan.ListByAudit(ctx, audit.ID)
	gt.NoError(t, err)
	gt.Equal(t, len(plans), 1)

	updated, err := ucs.ActionPlan.Update(ctx, plan.ID, &usecase.ActionPlanInput{
		AuditID:     audit.ID,
		QuestionID:  q1.ID,
		Description: "Re-inspect extinguishers",
		DueDate:     plan.DueDate,
		Done:        true,
	})
	gt.NoError(t, err)
	gt.True(t, updated.Done)

	gt.NoError(t, ucs.ActionPlan.Delete(ctx, plan.ID))
	plans, err = ucs.ActionPlan.ListByAudit(ctx, audit.ID)
	gt.NoError(t, err)
	gt.Equal(t, len(plans), 0)
}

func TestActionPlanRejectsUnknownAudit(t *testing.T) {
	ucs, _ := newTestUseCases(t)

	_, err := ucs.ActionPlan.Create(context.Background(), &usecase.ActionPlanInput{
		AuditID:     types.AuditID(999),
		Description: "Orphan plan",
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrAuditNotFound))
}

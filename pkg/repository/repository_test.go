package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/complia-lab/themis/pkg/domain/interfaces"
	"github.com/complia-lab/themis/pkg/domain/model"
	"github.com/complia-lab/themis/pkg/domain/types"
	"github.com/complia-lab/themis/pkg/repository"
	"github.com/m-mizutani/gt"
)

func testRepository(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	newTemplate := func(t *testing.T, name string) *model.AuditTemplate {
		t.Helper()
		groupID := types.NewGroupID()
		tmpl, err := model.NewAuditTemplate(name, "ehs@example.com", []model.QuestionGroup{
			{
				ID:   groupID,
				Name: "Housekeeping",
				Questions: []model.Question{
					{ID: types.NewQuestionID(), Text: "Walkways clear?", ColorCode: "yellow", AllocatedScore: 10, GroupID: groupID},
					{ID: types.NewQuestionID(), Text: "Waste segregated?", ColorCode: "red", AllocatedScore: 15, GroupID: groupID},
				},
			},
		})
		gt.NoError(t, err)
		return tmpl
	}

	newAudit := func(t *testing.T, repo interfaces.Repository, start, end time.Time) *model.ScheduledAudit {
		t.Helper()
		ctx := context.Background()
		id, err := repo.GetNextAuditNumber(ctx)
		gt.NoError(t, err)
		audit, err := model.NewScheduledAudit(id, types.NewTemplateID(), "Monthly EHS walkthrough", types.NewFactoryID(), "Paint shop", start, end, "ehs@example.com")
		gt.NoError(t, err)
		gt.NoError(t, repo.PutScheduledAudit(ctx, audit))
		return audit
	}

	t.Run("TemplateCRUD", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()
		ctx := context.Background()

		tmpl := newTemplate(t, "Fire safety")
		gt.NoError(t, repo.PutTemplate(ctx, tmpl))

		retrieved, err := repo.GetTemplate(ctx, tmpl.ID)
		gt.NoError(t, err)
		gt.Equal(t, retrieved.Name, tmpl.Name)
		gt.Equal(t, len(retrieved.Groups), 1)
		gt.Equal(t, len(retrieved.Groups[0].Questions), 2)
		gt.Equal(t, retrieved.AchievableScore(), 25)

		// Update keeps the same ID
		tmpl.Name = "Fire safety v2"
		gt.NoError(t, repo.PutTemplate(ctx, tmpl))
		retrieved, err = repo.GetTemplate(ctx, tmpl.ID)
		gt.NoError(t, err)
		gt.Equal(t, retrieved.Name, "Fire safety v2")

		listed, err := repo.ListTemplates(ctx)
		gt.NoError(t, err)
		gt.Equal(t, len(listed), 1)

		gt.NoError(t, repo.DeleteTemplate(ctx, tmpl.ID))
		_, err = repo.GetTemplate(ctx, tmpl.ID)
		gt.Error(t, err)
	})

	t.Run("TemplateNotFound", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()
		ctx := context.Background()

		_, err := repo.GetTemplate(ctx, types.NewTemplateID())
		gt.Error(t, err)
		gt.Error(t, repo.DeleteTemplate(ctx, types.NewTemplateID()))
	})

	t.Run("AuditNumberAllocation", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()
		ctx := context.Background()

		first, err := repo.GetNextAuditNumber(ctx)
		gt.NoError(t, err)
		gt.Equal(t, first, types.AuditID(1))

		second, err := repo.GetNextAuditNumber(ctx)
		gt.NoError(t, err)
		gt.Equal(t, second, types.AuditID(2))
	})

	t.Run("ScheduledAuditCRUD", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()
		ctx := context.Background()

		start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
		audit := newAudit(t, repo, start, start.Add(6*time.Hour))

		retrieved, err := repo.GetScheduledAudit(ctx, audit.ID)
		gt.NoError(t, err)
		gt.Equal(t, retrieved.Title, audit.Title)
		gt.Equal(t, retrieved.Status, types.AuditStatusDraft)
		gt.Equal(t, len(retrieved.Answers), 0)

		// Answers round-trip through storage
		retrieved.Answers = model.UpsertAnswer(retrieved.Answers, model.Answer{
			QuestionID: "q1", GroupID: "g1", Score: 5,
			Status: model.AnswerStatusYes, Rating: model.AnswerRatingCompiled,
		})
		gt.NoError(t, repo.PutScheduledAudit(ctx, retrieved))

		again, err := repo.GetScheduledAudit(ctx, audit.ID)
		gt.NoError(t, err)
		gt.Equal(t, len(again.Answers), 1)
		gt.Equal(t, again.Answers[0].Score, 5)
		gt.Equal(t, again.Answers[0].Status, model.AnswerStatusYes)

		listed, err := repo.ListScheduledAudits(ctx)
		gt.NoError(t, err)
		gt.Equal(t, len(listed), 1)

		gt.NoError(t, repo.DeleteScheduledAudit(ctx, audit.ID))
		_, err = repo.GetScheduledAudit(ctx, audit.ID)
		gt.Error(t, err)
	})

	t.Run("StatusHistory", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()
		ctx := context.Background()

		start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
		audit := newAudit(t, repo, start, start.Add(6*time.Hour))

		h1, err := model.NewStatusHistory(audit.ID, types.AuditStatusScheduled, "lead@example.com", "confirmed with factory")
		gt.NoError(t, err)
		gt.NoError(t, repo.AddStatusHistory(ctx, h1))

		h2, err := model.NewStatusHistory(audit.ID, types.AuditStatusOngoing, "lead@example.com", "")
		gt.NoError(t, err)
		h2.ChangedAt = h1.ChangedAt.Add(time.Minute)
		gt.NoError(t, repo.AddStatusHistory(ctx, h2))

		histories, err := repo.ListStatusHistories(ctx, audit.ID)
		gt.NoError(t, err)
		gt.Equal(t, len(histories), 2)
		gt.Equal(t, histories[0].Status, types.AuditStatusScheduled)
		gt.Equal(t, histories[1].Status, types.AuditStatusOngoing)
	})

	t.Run("ExternalAuditCRUD", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()
		ctx := context.Background()

		start := time.Date(2026, 5, 12, 8, 0, 0, 0, time.UTC)
		audit, err := model.NewExternalAudit("ISO 14001 surveillance", "TUV", types.NewFactoryID(), start, start.Add(48*time.Hour))
		gt.NoError(t, err)
		gt.NoError(t, repo.PutExternalAudit(ctx, audit))

		retrieved, err := repo.GetExternalAudit(ctx, audit.ID)
		gt.NoError(t, err)
		gt.Equal(t, retrieved.Agency, "TUV")

		listed, err := repo.ListExternalAudits(ctx)
		gt.NoError(t, err)
		gt.Equal(t, len(listed), 1)

		gt.NoError(t, repo.DeleteExternalAudit(ctx, audit.ID))
		_, err = repo.GetExternalAudit(ctx, audit.ID)
		gt.Error(t, err)
	})

	t.Run("ListEventsInRange", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()
		ctx := context.Background()

		march := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		april := time.Date(2026, 4, 20, 9, 0, 0, 0, time.UTC)
		inMarch := newAudit(t, repo, march, march.Add(4*time.Hour))
		newAudit(t, repo, april, april.Add(4*time.Hour))

		ext, err := model.NewExternalAudit("Chemical storage inspection", "Bureau Veritas", types.NewFactoryID(),
			time.Date(2026, 3, 25, 8, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 26, 17, 0, 0, 0, time.UTC))
		gt.NoError(t, err)
		gt.NoError(t, repo.PutExternalAudit(ctx, ext))

		events, err := repo.ListEventsInRange(ctx, model.DateRange{
			Start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC),
		})
		gt.NoError(t, err)
		gt.Equal(t, len(events), 2)

		kinds := map[model.EventKind]int{}
		for _, ev := range events {
			kinds[ev.Kind]++
		}
		gt.Equal(t, kinds[model.EventKindInternal], 1)
		gt.Equal(t, kinds[model.EventKindExternal], 1)

		// Audit spanning the range boundary still shows up
		events, err = repo.ListEventsInRange(ctx, model.DateRange{
			Start: march.Add(2 * time.Hour),
			End:   march.Add(3 * time.Hour),
		})
		gt.NoError(t, err)
		gt.Equal(t, len(events), 1)
		gt.Equal(t, events[0].AuditID, inMarch.ID.String())
	})

	t.Run("ReferenceDataCRUD", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()
		ctx := context.Background()

		factory, err := model.NewFactory("Plant 7", "Gdansk")
		gt.NoError(t, err)
		gt.NoError(t, repo.PutFactory(ctx, factory))

		retrieved, err := repo.GetFactory(ctx, factory.ID)
		gt.NoError(t, err)
		gt.Equal(t, retrieved.Name, "Plant 7")

		pt, err := model.NewProcessType("Welding")
		gt.NoError(t, err)
		gt.NoError(t, repo.PutProcessType(ctx, pt))

		pts, err := repo.ListProcessTypes(ctx)
		gt.NoError(t, err)
		gt.Equal(t, len(pts), 1)

		contact, err := model.NewContactPerson("Dana Ilves", "dana@example.com", "+372", "EHS lead")
		gt.NoError(t, err)
		gt.NoError(t, repo.PutContact(ctx, contact))

		contacts, err := repo.ListContacts(ctx)
		gt.NoError(t, err)
		gt.Equal(t, len(contacts), 1)

		gt.NoError(t, repo.DeleteFactory(ctx, factory.ID))
		gt.NoError(t, repo.DeleteProcessType(ctx, pt.ID))
		gt.NoError(t, repo.DeleteContact(ctx, contact.ID))

		gt.Error(t, repo.DeleteFactory(ctx, factory.ID))
	})

	t.Run("ActionPlanCRUD", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()
		ctx := context.Background()

		start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
		audit := newAudit(t, repo, start, start.Add(6*time.Hour))

		plan, err := model.NewActionPlan(audit.ID, "q-extinguisher", "Replace expired extinguishers", types.NewContactID(),
			time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC))
		gt.NoError(t, err)
		gt.NoError(t, repo.PutActionPlan(ctx, plan))

		plans, err := repo.ListActionPlansByAudit(ctx, audit.ID)
		gt.NoError(t, err)
		gt.Equal(t, len(plans), 1)
		gt.Equal(t, plans[0].Description, "Replace expired extinguishers")

		plan.MarkDone()
		gt.NoError(t, repo.PutActionPlan(ctx, plan))
		retrieved, err := repo.GetActionPlan(ctx, plan.ID)
		gt.NoError(t, err)
		gt.True(t, retrieved.Done)

		gt.NoError(t, repo.DeleteActionPlan(ctx, plan.ID))
		_, err = repo.GetActionPlan(ctx, plan.ID)
		gt.Error(t, err)
	})
}

func TestMemoryRepository(t *testing.T) {
	testRepository(t, func(t *testing.T) interfaces.Repository {
		return repository.NewMemory()
	})
}

func TestSQLiteRepository(t *testing.T) {
	testRepository(t, func(t *testing.T) interfaces.Repository {
		repo, err := repository.NewSQLite(context.Background(), t.TempDir()+"/themis.db")
		gt.NoError(t, err)
		return repo
	})
}

func TestMemoryCopyOnRead(t *testing.T) {
	repo := repository.NewMemory()
	defer repo.Close()
	ctx := context.Background()

	id, err := repo.GetNextAuditNumber(ctx)
	gt.NoError(t, err)
	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	audit, err := model.NewScheduledAudit(id, "tmpl", "Walkthrough", "factory", "", start, start.Add(time.Hour), "")
	gt.NoError(t, err)
	gt.NoError(t, repo.PutScheduledAudit(ctx, audit))

	// Mutating a retrieved copy must not affect stored state
	got, err := repo.GetScheduledAudit(ctx, audit.ID)
	gt.NoError(t, err)
	got.Title = "mutated"
	got.Answers = append(got.Answers, model.Answer{QuestionID: "q1"})

	fresh, err := repo.GetScheduledAudit(ctx, audit.ID)
	gt.NoError(t, err)
	gt.Equal(t, fresh.Title, "Walkthrough")
	gt.Equal(t, len(fresh.Answers), 0)
}

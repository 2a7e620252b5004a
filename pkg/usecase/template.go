package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complia-lab/themis/pkg/domain/interfaces"
	"github.com/complia-lab/themis/pkg/domain/model"
	"github.com/complia-lab/themis/pkg/domain/types"
)

// QuestionInput is one question entry from the form builder payload.
type QuestionInput struct {
	ID             types.QuestionID `json:"queId"`
	Text           string           `json:"question"`
	ColorCode      string           `json:"colorCode"`
	AllocatedScore int              `json:"allocatedScore"`
}

// GroupInput is one question group entry from the form builder payload.
type GroupInput struct {
	ID        types.GroupID   `json:"queGroupId"`
	Name      string          `json:"queGroupName"`
	Questions []QuestionInput `json:"questions"`
}

// TemplateInput is the form builder payload for creating or updating an
// audit template. IDs are assigned server-side when absent, so the same
// payload shape serves both create and update.
type TemplateInput struct {
	Name      string       `json:"name"`
	CreatedBy string       `json:"createdBy"`
	Groups    []GroupInput `json:"queGroups"`
}

// Template provides audit template management
type Template struct {
	repo       interfaces.Repository
	severities *model.SeveritiesConfig
}

// NewTemplate creates a new Template use case
func NewTemplate(repo interfaces.Repository, severities *model.SeveritiesConfig) *Template {
	if severities == nil {
		severities = model.DefaultSeverities()
	}
	return &Template{repo: repo, severities: severities}
}

// buildGroups materializes form input into domain groups, assigning IDs
// where the form did not carry them.
func (uc *Template) buildGroups(input []GroupInput) ([]model.QuestionGroup, error) {
	groups := make([]model.QuestionGroup, 0, len(input))
	for _, g := range input {
		groupID := g.ID
		if groupID == "" {
			groupID = types.NewGroupID()
		}

		questions := make([]model.Question, 0, len(g.Questions))
		for _, q := range g.Questions {
			if !uc.severities.IsValidID(q.ColorCode) {
				return nil, goerr.New("unknown severity color code",
					goerr.V("colorCode", q.ColorCode),
					goerr.V("question", q.Text), goerr.T(model.ErrTagInvalid))
			}
			questionID := q.ID
			if questionID == "" {
				questionID = types.NewQuestionID()
			}
			questions = append(questions, model.Question{
				ID:             questionID,
				Text:           q.Text,
				ColorCode:      q.ColorCode,
				AllocatedScore: q.AllocatedScore,
				GroupID:        groupID,
			})
		}

		groups = append(groups, model.QuestionGroup{
			ID:        groupID,
			Name:      g.Name,
			Questions: questions,
		})
	}
	return groups, nil
}

// Create builds a new template from a form builder payload
func (uc *Template) Create(ctx context.Context, input *TemplateInput) (*model.AuditTemplate, error) {
	groups, err := uc.buildGroups(input.Groups)
	if err != nil {
		return nil, err
	}

	tmpl, err := model.NewAuditTemplate(input.Name, input.CreatedBy, groups)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create template")
	}

	if err := uc.repo.PutTemplate(ctx, tmpl); err != nil {
		return nil, goerr.Wrap(err, "failed to save template")
	}
	return tmpl, nil
}

// Update replaces the name and question groups of an existing template
func (uc *Template) Update(ctx context.Context, id types.TemplateID, input *TemplateInput) (*model.AuditTemplate, error) {
	tmpl, err := uc.repo.GetTemplate(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get template")
	}

	groups, err := uc.buildGroups(input.Groups)
	if err != nil {
		return nil, err
	}

	tmpl.Name = input.Name
	tmpl.Groups = groups
	if err := tmpl.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid template")
	}

	if err := uc.repo.PutTemplate(ctx, tmpl); err != nil {
		return nil, goerr.Wrap(err, "failed to save template")
	}
	return tmpl, nil
}

// Get retrieves a template by ID
func (uc *Template) Get(ctx context.Context, id types.TemplateID) (*model.AuditTemplate, error) {
	return uc.repo.GetTemplate(ctx, id)
}

// List retrieves all templates
func (uc *Template) List(ctx context.Context) ([]*model.AuditTemplate, error) {
	return uc.repo.ListTemplates(ctx)
}

// Delete removes a template. Scheduled audits created from it keep
// their answers; only the reusable form definition goes away.
func (uc *Template) Delete(ctx context.Context, id types.TemplateID) error {
	return uc.repo.DeleteTemplate(ctx, id)
}

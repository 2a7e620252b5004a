package model

import (
	"time"

	"github.com/complia-lab/themis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Question represents a single audit question within a group
type Question struct {
	ID             types.QuestionID `json:"queId" firestore:"id"`
	Text           string           `json:"question" firestore:"text"`
	ColorCode      string           `json:"colorCode" firestore:"colorCode"`
	AllocatedScore int              `json:"allocatedScore" firestore:"allocatedScore"`
	GroupID        types.GroupID    `json:"queGroupId" firestore:"groupId"`
}

// Validate validates the question
func (q *Question) Validate() error {
	if q.ID == "" {
		return goerr.New("question ID is required", goerr.T(ErrTagInvalid))
	}
	if q.Text == "" {
		return goerr.New("question text is required", goerr.T(ErrTagInvalid))
	}
	if q.AllocatedScore < 0 {
		return goerr.New("allocated score must not be negative",
			goerr.V("questionID", q.ID),
			goerr.V("allocatedScore", q.AllocatedScore), goerr.T(ErrTagInvalid))
	}
	return nil
}

// QuestionGroup represents a named subset of a template's questions
type QuestionGroup struct {
	ID        types.GroupID `json:"queGroupId" firestore:"id"`
	Name      string        `json:"queGroupName" firestore:"name"`
	Questions []Question    `json:"questions" firestore:"questions"`
}

// Validate validates the group and its questions
func (g *QuestionGroup) Validate() error {
	if g.ID == "" {
		return goerr.New("question group ID is required", goerr.T(ErrTagInvalid))
	}
	if g.Name == "" {
		return goerr.New("question group name is required", goerr.T(ErrTagInvalid))
	}
	for i := range g.Questions {
		if err := g.Questions[i].Validate(); err != nil {
			return goerr.Wrap(err, "invalid question",
				goerr.V("groupID", g.ID),
				goerr.V("index", i))
		}
		if g.Questions[i].GroupID != g.ID {
			return goerr.New("question belongs to another group",
				goerr.V("groupID", g.ID),
				goerr.V("questionGroupID", g.Questions[i].GroupID), goerr.T(ErrTagInvalid))
		}
	}
	return nil
}

// FindQuestion returns the question with the given ID, or nil
func (g *QuestionGroup) FindQuestion(id types.QuestionID) *Question {
	for i := range g.Questions {
		if g.Questions[i].ID == id {
			return &g.Questions[i]
		}
	}
	return nil
}

// AuditTemplate is a reusable audit form definition. Templates are built
// once and instantiated against factories and dates as scheduled audits.
type AuditTemplate struct {
	ID        types.TemplateID `json:"id" firestore:"id"`
	Name      string           `json:"name" firestore:"name"`
	Groups    []QuestionGroup  `json:"queGroups" firestore:"groups"`
	CreatedBy string           `json:"createdBy" firestore:"createdBy"`
	CreatedAt time.Time        `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt" firestore:"updatedAt"`
}

// NewAuditTemplate creates a new audit template
func NewAuditTemplate(name, createdBy string, groups []QuestionGroup) (*AuditTemplate, error) {
	if name == "" {
		return nil, goerr.New("template name is required", goerr.T(ErrTagInvalid))
	}

	now := time.Now()
	tmpl := &AuditTemplate{
		ID:        types.NewTemplateID(),
		Name:      name,
		Groups:    groups,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return tmpl, nil
}

// Validate validates the template and all its groups
func (t *AuditTemplate) Validate() error {
	if t.ID == "" {
		return goerr.New("template ID is required", goerr.T(ErrTagInvalid))
	}
	if t.Name == "" {
		return goerr.New("template name is required", goerr.T(ErrTagInvalid))
	}
	seen := make(map[types.GroupID]bool, len(t.Groups))
	for i := range t.Groups {
		if err := t.Groups[i].Validate(); err != nil {
			return goerr.Wrap(err, "invalid question group", goerr.V("index", i))
		}
		if seen[t.Groups[i].ID] {
			return goerr.New("duplicate question group ID",
				goerr.V("groupID", t.Groups[i].ID), goerr.T(ErrTagInvalid))
		}
		seen[t.Groups[i].ID] = true
	}
	return nil
}

// AchievableScore returns the sum of allocated scores over all questions
// in all groups. This is the maximum score a scheduled audit can reach.
func (t *AuditTemplate) AchievableScore() int {
	total := 0
	for i := range t.Groups {
		total += AllocatedScoreTotal(&t.Groups[i])
	}
	return total
}

// QuestionCount returns the number of questions across all groups
func (t *AuditTemplate) QuestionCount() int {
	n := 0
	for i := range t.Groups {
		n += len(t.Groups[i].Questions)
	}
	return n
}

// FindQuestion searches all groups for the question with the given ID
func (t *AuditTemplate) FindQuestion(id types.QuestionID) *Question {
	for i := range t.Groups {
		if q := t.Groups[i].FindQuestion(id); q != nil {
			return q
		}
	}
	return nil
}

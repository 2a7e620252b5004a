package usecase

import (
	"github.com/complia-lab/themis/pkg/domain/interfaces"
	"github.com/complia-lab/themis/pkg/domain/model"
	"github.com/complia-lab/themis/pkg/service/calendar"
)

// PrefetchHorizons configures how far the calendar prefetcher reaches in
// each view mode.
type PrefetchHorizons struct {
	Days   int
	Weeks  int
	Months int
}

// UseCases bundles the application use cases for injection into the
// HTTP controller.
type UseCases struct {
	Template   *Template
	Audit      *Audit
	External   *External
	Calendar   *Calendar
	Reference  *Reference
	ActionPlan *ActionPlan
}

// New creates all use cases over a shared repository and event cache.
func New(repo interfaces.Repository, cache *calendar.EventCache, severities *model.SeveritiesConfig, horizons PrefetchHorizons) *UseCases {
	return &UseCases{
		Template:   NewTemplate(repo, severities),
		Audit:      NewAudit(repo, cache),
		External:   NewExternal(repo, cache),
		Calendar:   NewCalendar(cache, calendar.NewPrefetcher(cache), horizons),
		Reference:  NewReference(repo),
		ActionPlan: NewActionPlan(repo),
	}
}

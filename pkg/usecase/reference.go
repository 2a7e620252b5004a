package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complia-lab/themis/pkg/domain/interfaces"
	"github.com/complia-lab/themis/pkg/domain/model"
	"github.com/complia-lab/themis/pkg/domain/types"
)

// Reference provides CRUD over the reference data audits point at:
// factories, process types and contact people.
type Reference struct {
	repo interfaces.Repository
}

// NewReference creates a new Reference use case
func NewReference(repo interfaces.Repository) *Reference {
	return &Reference{repo: repo}
}

// CreateFactory stores a new factory
func (uc *Reference) CreateFactory(ctx context.Context, name, location string) (*model.Factory, error) {
	factory, err := model.NewFactory(name, location)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.PutFactory(ctx, factory); err != nil {
		return nil, goerr.Wrap(err, "failed to save factory")
	}
	return factory, nil
}

// ListFactories retrieves all factories
func (uc *Reference) ListFactories(ctx context.Context) ([]*model.Factory, error) {
	return uc.repo.ListFactories(ctx)
}

// DeleteFactory removes a factory
func (uc *Reference) DeleteFactory(ctx context.Context, id types.FactoryID) error {
	return uc.repo.DeleteFactory(ctx, id)
}

// CreateProcessType stores a new process type
func (uc *Reference) CreateProcessType(ctx context.Context, name string) (*model.ProcessType, error) {
	pt, err := model.NewProcessType(name)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.PutProcessType(ctx, pt); err != nil {
		return nil, goerr.Wrap(err, "failed to save process type")
	}
	return pt, nil
}

// ListProcessTypes retrieves all process types
func (uc *Reference) ListProcessTypes(ctx context.Context) ([]*model.ProcessType, error) {
	return uc.repo.ListProcessTypes(ctx)
}

// DeleteProcessType removes a process type
func (uc *Reference) DeleteProcessType(ctx context.Context, id types.ProcessTypeID) error {
	return uc.repo.DeleteProcessType(ctx, id)
}

// CreateContact stores a new contact person
func (uc *Reference) CreateContact(ctx context.Context, name, email, phone, role string) (*model.ContactPerson, error) {
	contact, err := model.NewContactPerson(name, email, phone, role)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.PutContact(ctx, contact); err != nil {
		return nil, goerr.Wrap(err, "failed to save contact")
	}
	return contact, nil
}

// ListContacts retrieves all contact people
func (uc *Reference) ListContacts(ctx context.Context) ([]*model.ContactPerson, error) {
	return uc.repo.ListContacts(ctx)
}

// DeleteContact removes a contact person
func (uc *Reference) DeleteContact(ctx context.Context, id types.ContactID) error {
	return uc.repo.DeleteContact(ctx, id)
}

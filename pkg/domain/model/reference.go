package model

import (
	"time"

	"github.com/complia-lab/themis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Factory represents a site that audits are conducted against
type Factory struct {
	ID        types.FactoryID `json:"id" firestore:"id"`
	Name      string          `json:"name" firestore:"name"`
	Location  string          `json:"location,omitempty" firestore:"location,omitempty"`
	CreatedAt time.Time       `json:"createdAt" firestore:"createdAt"`
}

// NewFactory creates a new factory
func NewFactory(name, location string) (*Factory, error) {
	if name == "" {
		return nil, goerr.New("factory name is required", goerr.T(ErrTagInvalid))
	}
	return &Factory{
		ID:        types.NewFactoryID(),
		Name:      name,
		Location:  location,
		CreatedAt: time.Now(),
	}, nil
}

// ProcessType represents a manufacturing process category
type ProcessType struct {
	ID        types.ProcessTypeID `json:"id" firestore:"id"`
	Name      string              `json:"name" firestore:"name"`
	CreatedAt time.Time           `json:"createdAt" firestore:"createdAt"`
}

// NewProcessType creates a new process type
func NewProcessType(name string) (*ProcessType, error) {
	if name == "" {
		return nil, goerr.New("process type name is required", goerr.T(ErrTagInvalid))
	}
	return &ProcessType{
		ID:        types.NewProcessTypeID(),
		Name:      name,
		CreatedAt: time.Now(),
	}, nil
}

// ContactPerson represents a responsible person referenced by audits
type ContactPerson struct {
	ID        types.ContactID `json:"id" firestore:"id"`
	Name      string          `json:"name" firestore:"name"`
	Email     string          `json:"email,omitempty" firestore:"email,omitempty"`
	Phone     string          `json:"phone,omitempty" firestore:"phone,omitempty"`
	Role      string          `json:"role,omitempty" firestore:"role,omitempty"`
	CreatedAt time.Time       `json:"createdAt" firestore:"createdAt"`
}

// NewContactPerson creates a new contact person
func NewContactPerson(name, email, phone, role string) (*ContactPerson, error) {
	if name == "" {
		return nil, goerr.New("contact name is required", goerr.T(ErrTagInvalid))
	}
	return &ContactPerson{
		ID:        types.NewContactID(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Role:      role,
		CreatedAt: time.Now(),
	}, nil
}

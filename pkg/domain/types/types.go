package types

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// AuditID represents a scheduled audit identifier (serial number)
type AuditID int

// String returns the string representation
func (id AuditID) String() string {
	return fmt.Sprintf("%d", id)
}

// Int returns the int representation
func (id AuditID) Int() int {
	return int(id)
}

// Validate checks if the audit ID is valid
func (id AuditID) Validate() error {
	if id <= 0 {
		return goerr.New("audit ID must be positive", goerr.V("id", id))
	}
	return nil
}

// ParseAuditID parses a path parameter into an AuditID
func ParseAuditID(s string) (AuditID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid audit ID", goerr.V("value", s))
	}
	id := AuditID(n)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// TemplateID represents an audit template identifier
type TemplateID string

// String returns the string representation
func (id TemplateID) String() string {
	return string(id)
}

// NewTemplateID creates a new TemplateID
func NewTemplateID() TemplateID {
	return TemplateID(uuid.New().String())
}

// GroupID represents a question group identifier
type GroupID string

// String returns the string representation
func (id GroupID) String() string {
	return string(id)
}

// NewGroupID creates a new GroupID
func NewGroupID() GroupID {
	return GroupID(uuid.New().String())
}

// QuestionID represents a question identifier
type QuestionID string

// String returns the string representation
func (id QuestionID) String() string {
	return string(id)
}

// NewQuestionID creates a new QuestionID
func NewQuestionID() QuestionID {
	return QuestionID(uuid.New().String())
}

// ExternalAuditID represents an external audit identifier
type ExternalAuditID string

// String returns the string representation
func (id ExternalAuditID) String() string {
	return string(id)
}

// NewExternalAuditID creates a new ExternalAuditID
func NewExternalAuditID() ExternalAuditID {
	return ExternalAuditID(uuid.New().String())
}

// FactoryID represents a factory identifier
type FactoryID string

// String returns the string representation
func (id FactoryID) String() string {
	return string(id)
}

// NewFactoryID creates a new FactoryID
func NewFactoryID() FactoryID {
	return FactoryID(uuid.New().String())
}

// ProcessTypeID represents a process type identifier
type ProcessTypeID string

// String returns the string representation
func (id ProcessTypeID) String() string {
	return string(id)
}

// NewProcessTypeID creates a new ProcessTypeID
func NewProcessTypeID() ProcessTypeID {
	return ProcessTypeID(uuid.New().String())
}

// ContactID represents a contact person identifier
type ContactID string

// String returns the string representation
func (id ContactID) String() string {
	return string(id)
}

// NewContactID creates a new ContactID
func NewContactID() ContactID {
	return ContactID(uuid.New().String())
}

// ActionPlanID represents a corrective action plan identifier
type ActionPlanID string

// String returns the string representation
func (id ActionPlanID) String() string {
	return string(id)
}

// NewActionPlanID creates a new ActionPlanID
func NewActionPlanID() ActionPlanID {
	return ActionPlanID(uuid.New().String())
}

// EventID represents a calendar event identifier
type EventID string

// String returns the string representation
func (id EventID) String() string {
	return string(id)
}

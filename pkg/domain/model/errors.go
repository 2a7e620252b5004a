package model

import "github.com/m-mizutani/goerr/v2"

// ErrTagInvalid marks validation failures so the HTTP layer can map
// them to 400 responses.
var ErrTagInvalid = goerr.NewTag("invalid_input")

// Sentinel errors for domain operations
var (
	ErrTemplateNotFound      = goerr.New("audit template not found")
	ErrAuditNotFound         = goerr.New("scheduled audit not found")
	ErrExternalAuditNotFound = goerr.New("external audit not found")
	ErrFactoryNotFound       = goerr.New("factory not found")
	ErrProcessTypeNotFound   = goerr.New("process type not found")
	ErrContactNotFound       = goerr.New("contact person not found")
	ErrActionPlanNotFound    = goerr.New("action plan not found")
	ErrIllegalTransition     = goerr.New("illegal audit status transition")
	ErrAuditCompleted        = goerr.New("completed audit cannot be modified")
)

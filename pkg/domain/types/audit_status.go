package types

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// AuditStatus represents the lifecycle status of a scheduled audit
type AuditStatus string

const (
	AuditStatusDraft     AuditStatus = "draft"
	AuditStatusScheduled AuditStatus = "scheduled"
	AuditStatusOngoing   AuditStatus = "ongoing"
	AuditStatusCompleted AuditStatus = "completed"
)

// String returns the string representation of the status
func (s AuditStatus) String() string {
	return string(s)
}

// IsValid checks if the status is valid
func (s AuditStatus) IsValid() bool {
	switch s {
	case AuditStatusDraft, AuditStatusScheduled, AuditStatusOngoing, AuditStatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status allows no further transitions.
// Completed audits are frozen: no edits, no rollback.
func (s AuditStatus) IsTerminal() bool {
	return s == AuditStatusCompleted
}

// transitions is the audit lifecycle table. The lifecycle is strictly
// forward, one step at a time: draft -> scheduled -> ongoing -> completed.
var transitions = map[AuditStatus]AuditStatus{
	AuditStatusDraft:     AuditStatusScheduled,
	AuditStatusScheduled: AuditStatusOngoing,
	AuditStatusOngoing:   AuditStatusCompleted,
}

// CanTransitionTo reports whether moving from s to next is a legal step.
func (s AuditStatus) CanTransitionTo(next AuditStatus) bool {
	legal, ok := transitions[s]
	return ok && legal == next
}

// NextStatuses returns the set of statuses reachable from s. Derived from
// the transition table so UI layers can compute which actions to offer
// instead of hardcoding them per status string.
func (s AuditStatus) NextStatuses() []AuditStatus {
	if next, ok := transitions[s]; ok {
		return []AuditStatus{next}
	}
	return nil
}

// StatusHistoryID represents a status history identifier (UUID v7)
type StatusHistoryID string

// String returns the string representation of the status history ID
func (id StatusHistoryID) String() string {
	return string(id)
}

// Validate checks if the status history ID is valid (non-empty)
func (id StatusHistoryID) Validate() error {
	if id == "" {
		return goerr.New("status history ID cannot be empty")
	}
	return nil
}

// NewStatusHistoryID generates a new UUID v7 status history ID. The
// timestamp prefix keeps history entries sortable by creation order.
func NewStatusHistoryID() StatusHistoryID {
	now := time.Now().UnixMilli()

	uuid := make([]byte, 16)

	uuid[0] = byte(now >> 40)
	uuid[1] = byte(now >> 32)
	uuid[2] = byte(now >> 24)
	uuid[3] = byte(now >> 16)
	uuid[4] = byte(now >> 8)
	uuid[5] = byte(now)

	if _, err := rand.Read(uuid[6:]); err != nil {
		// Fallback to timestamp-based generation if crypto/rand fails
		for i := 6; i < 16; i++ {
			shift := 8 * (i - 6)
			if shift < 64 {
				uuid[i] = byte(now >> shift)
			} else {
				uuid[i] = 0
			}
		}
	}

	// Version (7) and variant (10) bits
	uuid[6] = (uuid[6] & 0x0f) | 0x70
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	return StatusHistoryID(hex.EncodeToString(uuid[0:4]) + "-" +
		hex.EncodeToString(uuid[4:6]) + "-" +
		hex.EncodeToString(uuid[6:8]) + "-" +
		hex.EncodeToString(uuid[8:10]) + "-" +
		hex.EncodeToString(uuid[10:16]))
}

package types_test

import (
	"testing"

	"github.com/complia-lab/themis/pkg/domain/types"
)

func TestAuditStatusValidation(t *testing.T) {
	tests := []struct {
		name     string
		status   types.AuditStatus
		expected bool
	}{
		{"Valid draft", types.AuditStatusDraft, true},
		{"Valid scheduled", types.AuditStatusScheduled, true},
		{"Valid ongoing", types.AuditStatusOngoing, true},
		{"Valid completed", types.AuditStatusCompleted, true},
		{"Invalid empty", types.AuditStatus(""), false},
		{"Invalid mixed case", types.AuditStatus("Draft"), false},
		{"Invalid unknown", types.AuditStatus("cancelled"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.status.IsValid()
			if result != tt.expected {
				t.Errorf("AuditStatus(%q).IsValid() = %v, want %v", tt.status, result, tt.expected)
			}
		})
	}
}

func TestAuditStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    types.AuditStatus
		to      types.AuditStatus
		allowed bool
	}{
		{"draft to scheduled", types.AuditStatusDraft, types.AuditStatusScheduled, true},
		{"scheduled to ongoing", types.AuditStatusScheduled, types.AuditStatusOngoing, true},
		{"ongoing to completed", types.AuditStatusOngoing, types.AuditStatusCompleted, true},
		{"draft to ongoing skips a step", types.AuditStatusDraft, types.AuditStatusOngoing, false},
		{"draft to completed skips steps", types.AuditStatusDraft, types.AuditStatusCompleted, false},
		{"no rollback scheduled to draft", types.AuditStatusScheduled, types.AuditStatusDraft, false},
		{"no rollback completed to ongoing", types.AuditStatusCompleted, types.AuditStatusOngoing, false},
		{"completed is terminal", types.AuditStatusCompleted, types.AuditStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.from.CanTransitionTo(tt.to)
			if result != tt.allowed {
				t.Errorf("CanTransitionTo(%q -> %q) = %v, want %v", tt.from, tt.to, result, tt.allowed)
			}
		})
	}
}

func TestAuditStatusNextStatuses(t *testing.T) {
	tests := []struct {
		status types.AuditStatus
		next   []types.AuditStatus
	}{
		{types.AuditStatusDraft, []types.AuditStatus{types.AuditStatusScheduled}},
		{types.AuditStatusScheduled, []types.AuditStatus{types.AuditStatusOngoing}},
		{types.AuditStatusOngoing, []types.AuditStatus{types.AuditStatusCompleted}},
		{types.AuditStatusCompleted, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			result := tt.status.NextStatuses()
			if len(result) != len(tt.next) {
				t.Fatalf("NextStatuses(%q) = %v, want %v", tt.status, result, tt.next)
			}
			for i := range result {
				if result[i] != tt.next[i] {
					t.Errorf("NextStatuses(%q)[%d] = %q, want %q", tt.status, i, result[i], tt.next[i])
				}
			}
		})
	}

	if !types.AuditStatusCompleted.IsTerminal() {
		t.Error("completed should be terminal")
	}
	if types.AuditStatusDraft.IsTerminal() {
		t.Error("draft should not be terminal")
	}
}

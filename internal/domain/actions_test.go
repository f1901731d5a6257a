package domain

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected ActionType
		ok       bool
	}{
		{"MOVE", ActionMove, true},
		{"move", ActionMove, true},
		{"Attack", ActionAttack, true},
		{"WAIT", ActionMove, false},
		{"", ActionMove, false},
	}

	for _, tt := range tests {
		result, ok := ParseAction(tt.input)
		if ok != tt.ok || (ok && result != tt.expected) {
			t.Errorf("ParseAction(%q) = %v, %v; want %v, %v", tt.input, result, ok, tt.expected, tt.ok)
		}
	}
}

func TestActionType_String(t *testing.T) {
	tests := []struct {
		action   ActionType
		expected string
	}{
		{ActionMove, "MOVE"},
		{ActionAttack, "ATTACK"},
		{ActionType(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("ActionType(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}

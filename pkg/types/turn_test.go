package types

import "testing"

func TestTurnConstructors(t *testing.T) {
	tests := []struct {
		name string
		turn Turn
		role Role
	}{
		{"system", NewSystemTurn("rules"), RoleSystem},
		{"user", NewUserTurn("hi"), RoleUser},
		{"assistant", NewAssistantTurn("hello"), RoleAssistant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.turn.Role != tt.role {
				t.Errorf("Expected role %q, got %q", tt.role, tt.turn.Role)
			}
			if !tt.turn.Role.Valid() {
				t.Errorf("Expected role %q to be valid", tt.turn.Role)
			}
		})
	}
}

func TestRoleValid(t *testing.T) {
	if Role("tool").Valid() {
		t.Error("Expected unknown role to be invalid")
	}
	if Role("").Valid() {
		t.Error("Expected empty role to be invalid")
	}
}

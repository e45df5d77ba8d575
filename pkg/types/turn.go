package types

// Role identifies who produced a Turn.
type Role string

const (
	RoleSystem    Role = "system"    // RoleSystem marks the fixed instruction block.
	RoleUser      Role = "user"      // RoleUser marks text typed by the user.
	RoleAssistant Role = "assistant" // RoleAssistant marks a reply from the completion service.
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// Turn is one message in a conversation. Turns are passed by value and
// are never modified once appended to a transcript.
type Turn struct {
	Role    Role
	Content string
}

// NewSystemTurn creates a system turn carrying instructions.
func NewSystemTurn(content string) Turn {
	return Turn{Role: RoleSystem, Content: content}
}

// NewUserTurn creates a user turn.
func NewUserTurn(content string) Turn {
	return Turn{Role: RoleUser, Content: content}
}

// NewAssistantTurn creates an assistant turn.
func NewAssistantTurn(content string) Turn {
	return Turn{Role: RoleAssistant, Content: content}
}

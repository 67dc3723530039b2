package chat

// Role tags one side of a conversation exchange.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single recorded message. Turns are immutable once appended;
// Degraded marks assistant replies produced by the fallback responder
// instead of the completion upstream.
type Turn struct {
	Role     Role   `json:"role"`
	Text     string `json:"text"`
	Degraded bool   `json:"degraded,omitempty"`
	Sequence uint64 `json:"sequence"`
}

// Reply is the per-request outcome returned to the transport layer.
// Degraded is true when the text came from the fallback responder.
type Reply struct {
	Text     string
	Degraded bool
}

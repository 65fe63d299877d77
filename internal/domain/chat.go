package domain

// Sender tags one side of a conversation.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is a single chat turn. Histories are ordered slices of these,
// persisted per chat partner.
type Message struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

// Role returns the completion-API role for the message sender.
func (m Message) Role() string {
	if m.Sender == SenderUser {
		return "user"
	}
	return "assistant"
}

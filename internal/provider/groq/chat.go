package groq

import "context"

// Fixed sampling configuration for persona chat. The window keeps only the
// most recent turns so long conversations stay inside the model's context window.
const (
	chatModel        = "llama-3.1-8b-instant"
	temperature      = 0.7
	topP             = 0.9
	frequencyPenalty = 0.2
	maxTokens        = 1024

	historyWindow = 6
)

// Message is one prior conversation turn, role "user" or "assistant".
type Message struct {
	Role    string
	Content string
}

// Complete sends the system prompt plus the last 6 turns of history and
// returns the single assistant reply.
func (c *Client) Complete(ctx context.Context, systemPrompt string, history []Message) (string, error) {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	msgs := make([]chatMessage, 0, len(history)+1)
	msgs = append(msgs, chatMessage{Role: "system", Content: systemPrompt})
	for _, m := range history {
		msgs = append(msgs, chatMessage{Role: m.Role, Content: m.Content})
	}

	return c.createCompletion(ctx, chatRequest{
		Model:            chatModel,
		Messages:         msgs,
		Temperature:      temperature,
		TopP:             topP,
		FrequencyPenalty: frequencyPenalty,
		MaxTokens:        maxTokens,
	})
}

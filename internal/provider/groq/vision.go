package groq

import (
	"context"
	"strings"
)

const visionModel = "llama-3.2-11b-vision-preview"

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

// Review sends one image with an instruction prompt to the vision model and
// returns its remark. Raw base64 payloads are wrapped as a data URL first.
func (c *Client) Review(ctx context.Context, prompt, image string) (string, error) {
	if !strings.HasPrefix(image, "data:image") {
		image = "data:image/png;base64," + image
	}

	msgs := []chatMessage{{
		Role: "user",
		Content: []contentPart{
			{Type: "text", Text: prompt},
			{Type: "image_url", ImageURL: &imageURL{URL: image}},
		},
	}}

	return c.createCompletion(ctx, chatRequest{
		Model:    visionModel,
		Messages: msgs,
	})
}

package recognize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

const visionModel = "gemini-2.0-flash"

const visionPrompt = `Transcribe every piece of text visible in this document image.
Output the literal text only, preserving line breaks. Do not summarize,
translate, or add commentary.`

// Gemini recognizes text in scanned documents and photos using the
// Gemini vision API.
type Gemini struct {
	client *genai.Client
}

// NewGemini creates a Gemini-backed image recognizer
func NewGemini(client *genai.Client) *Gemini {
	return &Gemini{client: client}
}

// Recognize implements Recognizer
func (g *Gemini) Recognize(ctx context.Context, filename, mimeType string, data []byte) (string, error) {
	if g.client == nil {
		return "", errors.New("gemini client not set")
	}

	format := strings.TrimPrefix(mimeType, "image/")
	model := g.client.GenerativeModel(visionModel)
	model.SetTemperature(0)

	resp, err := model.GenerateContent(ctx, genai.ImageData(format, data), genai.Text(visionPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini recognition for %s: %w", filename, err)
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text for %s", filename)
	}
	return sb.String(), nil
}

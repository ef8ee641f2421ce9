package extract

import (
	"context"
	"fmt"

	"github.com/kmahajan/bahikhata"
	"google.golang.org/genai"
)

// DefaultModelName is the Gemini model used for entry extraction. Flash is
// plenty for a single-sentence field pull and keeps latency low.
const DefaultModelName = "gemini-2.5-flash"

const systemInstruction = `You are an expert assistant for extracting financial
transaction data from natural speech or text in India. The user gives you one
utterance; you return the fields it mentions.

Handle these patterns:
- Names: "My name is Kritima Mahajan", "I am John", "Account holder Rajesh"
- Locations: "Location Gurdaspur", "From Delhi", "City Mumbai"
- Dates: "Today", "19th September", "Date 2025-09-20", "Yesterday"
- Amounts: "Debit 5000 rupees", "Credit 3000", "Spent 500", "Received 10000 rs"
- Descriptions: "Bill payment", "ATM withdrawal", "Salary credit", "Cash deposit"
- Actions: "Add entry", "Submit", "Clear form", "Load sample data"

Rules:
1. Extract only numbers for amounts, no rupees, rs or currency symbols.
2. Use standard date format YYYY-MM-DD.
3. Set only one of debitAmount OR creditAmount, never both.
4. Return valid JSON only, no explanations, no Markdown fences.`

// Gemini extracts entry fields using the Gemini API. The zero value is not
// usable; build one with NewGemini.
type Gemini struct {
	client *genai.Client
	model  string
	// Today resolves relative dates in the prompt. Nil means bahikhata.Today.
	Today func() bahikhata.Date
}

// NewGemini creates a Gemini extractor. The client picks up GEMINI_API_KEY
// from the environment.
func NewGemini(ctx context.Context) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return &Gemini{client: client, model: DefaultModelName}, nil
}

func (g *Gemini) today() bahikhata.Date {
	if g.Today != nil {
		return g.Today()
	}
	return bahikhata.Today()
}

// Extract sends the text to the model and parses the JSON it returns.
// Any transport or parse problem comes back wrapped in *Failure so the
// caller knows the local fallback still applies.
func (g *Gemini) Extract(ctx context.Context, text string) (Record, error) {
	today := g.today()
	prompt := fmt.Sprintf(`Extract information from this input: %q

Return ONLY a valid JSON object with these exact fields:
{
    "accountHolder": "full name or null",
    "location": "city/place name or null",
    "date": "YYYY-MM-DD format or null (use %s for 'today')",
    "particulars": "transaction description or null",
    "debitAmount": "number only without currency or null",
    "creditAmount": "number only without currency or null",
    "action": "add_entry, clear_form, load_sample, or null"
}`, text, today)

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.1),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return Record{}, &Failure{Err: fmt.Errorf("generate content: %w", err)}
	}
	raw := resp.Text()
	if raw == "" {
		return Record{}, &Failure{Err: fmt.Errorf("empty response from model")}
	}

	rec, err := parseModelResponse(raw, today)
	if err != nil {
		return Record{}, &Failure{Err: err}
	}
	return rec, nil
}

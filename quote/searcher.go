package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"

	"github.com/ebal/folio"
)

// DefaultModel is the model used when the configuration names none.
const DefaultModel = "gemini-2.5-flash"

// Searcher is a Provider backed by an AI search: it asks a Gemini model,
// armed with the GoogleSearch tool, for the latest prices of the requested
// symbols and parses the JSON it answers with. Results are best effort;
// symbols the model could not price are simply absent from the map.
type Searcher struct {
	client *genai.Client
	model  string
}

// NewSearcher creates a Searcher using the given API key and model name.
func NewSearcher(ctx context.Context, apiKey, model string) (*Searcher, error) {
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create search client: %w", err)
	}
	return &Searcher{client: client, model: model}, nil
}

const instruction = `You are a market data terminal. For each requested stock
symbol, search for its latest trade price. Reply with ONLY a JSON array, one
object per symbol you found, no prose, using this exact shape:
[{"symbol":"AAPL","price":123.45,"change":1.2,"changePercent":0.98}]
Omit symbols you could not find. Omit change/changePercent when unknown.`

// Fetch asks the model for the requested symbols and returns whatever it
// could parse, possibly an empty map. A transport or model error is
// returned alongside the (empty) map so callers can log it and degrade.
func (s *Searcher) Fetch(ctx context.Context, symbols []string) (map[string]folio.Quote, error) {
	quotes := make(map[string]folio.Quote)
	if len(symbols) == 0 {
		return quotes, nil
	}

	config := &genai.GenerateContentConfig{
		Tools:             []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
	}
	prompt := "Current prices for: " + strings.Join(symbols, ", ")

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), config)
	if err != nil {
		return quotes, fmt.Errorf("price search failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return quotes, fmt.Errorf("price search returned no candidates")
	}
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return parseQuotes(text.String(), time.Now()), nil
}

// parseQuotes extracts the quote array from the model's reply. The reply is
// treated as hostile input: it may be fenced in markdown, wrapped in prose,
// carry prices as strings with thousand separators, or mix valid and broken
// entries. Broken entries are logged and skipped, never fatal.
func parseQuotes(text string, now time.Time) map[string]folio.Quote {
	quotes := make(map[string]folio.Quote)

	raw := extractJSONArray(text)
	if raw == "" {
		log.Warn().Str("reply", truncate(text, 120)).Msg("no JSON array in price search reply")
		return quotes
	}
	var jobj any
	if err := json.Unmarshal([]byte(raw), &jobj); err != nil {
		log.Warn().Err(err).Msg("price search reply is not valid JSON")
		return quotes
	}
	jitems, err := jsonpath.Get("$[*]", jobj)
	if err != nil {
		log.Warn().Err(err).Msg("price search reply is not an array")
		return quotes
	}
	items, ok := jitems.([]any)
	if !ok {
		return quotes
	}
	for _, item := range items {
		symbol, err := stringAt(item, "$.symbol")
		if err != nil || symbol == "" {
			log.Warn().Msg("price entry without symbol skipped")
			continue
		}
		symbol = strings.ToUpper(strings.TrimSpace(symbol))
		price, err := floatAt(item, "$.price")
		if err != nil || price <= 0 {
			log.Warn().Str("symbol", symbol).Err(err).Msg("price entry unreadable, skipped")
			continue
		}
		q := folio.Quote{Price: price, LastUpdated: now}
		// change figures are optional; ignore errors.
		q.Change, _ = floatAt(item, "$.change")
		q.ChangePercent, _ = floatAt(item, "$.changePercent")
		quotes[symbol] = q
	}
	return quotes
}

// extractJSONArray returns the outermost [...] slice of text, tolerating
// markdown fences and surrounding prose.
func extractJSONArray(text string) string {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}

func stringAt(item any, path string) (string, error) {
	jval, err := jsonpath.Get(path, item)
	if err != nil {
		return "", err
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("%s is not a string: %v", path, jval)
	}
	return s, nil
}

// floatAt reads a number at path. Some replies carry numbers as strings
// ("1,234.50"); those are cleaned up and parsed rather than rejected.
func floatAt(item any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, item)
	if err != nil {
		return 0, err
	}
	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		v = strings.ReplaceAll(v, ",", "")
		v = strings.TrimSpace(strings.TrimPrefix(v, "$"))
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("%s is an invalid number %q: %w", path, v, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%s is neither a number nor a string: %v", path, jval)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}

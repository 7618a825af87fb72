package quote

import (
	"testing"
	"time"
)

func TestParseQuotes(t *testing.T) {
	now := time.Now()
	testCases := []struct {
		name string
		text string
		want map[string]float64 // symbol -> price; nil entries checked by count only
	}{
		{
			name: "plain array",
			text: `[{"symbol":"AAPL","price":123.45,"change":1.2,"changePercent":0.98}]`,
			want: map[string]float64{"AAPL": 123.45},
		},
		{
			name: "fenced in markdown with prose",
			text: "Here are the prices you asked for:\n```json\n[{\"symbol\":\"aapl\",\"price\":190.1},{\"symbol\":\"GOOG\",\"price\":2801.5}]\n```\nLet me know if you need more.",
			want: map[string]float64{"AAPL": 190.1, "GOOG": 2801.5},
		},
		{
			name: "price as formatted string",
			text: `[{"symbol":"BRK.A","price":"$612,345.00"}]`,
			want: map[string]float64{"BRK.A": 612345},
		},
		{
			name: "broken entries are skipped not fatal",
			text: `[{"symbol":"AAPL","price":100},{"price":50},{"symbol":"BAD","price":"n/a"},{"symbol":"NEG","price":-4}]`,
			want: map[string]float64{"AAPL": 100},
		},
		{
			name: "no array at all",
			text: `Sorry, I could not find any prices today.`,
			want: map[string]float64{},
		},
		{
			name: "array of garbage",
			text: `[1, 2, 3]`,
			want: map[string]float64{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseQuotes(tc.text, now)
			if len(got) != len(tc.want) {
				t.Fatalf("parsed %d quotes, want %d: %+v", len(got), len(tc.want), got)
			}
			for symbol, price := range tc.want {
				q, ok := got[symbol]
				if !ok {
					t.Errorf("missing quote for %s", symbol)
					continue
				}
				if q.Price != price {
					t.Errorf("%s price = %v, want %v", symbol, q.Price, price)
				}
				if !q.LastUpdated.Equal(now) {
					t.Errorf("%s LastUpdated not stamped", symbol)
				}
			}
		})
	}
}

func TestParseQuotes_OptionalChangeFields(t *testing.T) {
	got := parseQuotes(`[{"symbol":"AAPL","price":100,"change":-1.5,"changePercent":-1.48}]`, time.Now())
	q, ok := got["AAPL"]
	if !ok {
		t.Fatalf("missing AAPL quote")
	}
	if q.Change != -1.5 || q.ChangePercent != -1.48 {
		t.Errorf("change fields = %v / %v, want -1.5 / -1.48", q.Change, q.ChangePercent)
	}
}

package renderer

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/stockplay"
)

// Summary is a struct to represent the portfolio in json and markdown.
// Numbers are handled using the exact decimal types (Money) so that they
// already contain their display renderer.
type Summary struct {
	// Holdings in insertion order.
	Holdings []SummaryRow `json:"holdings"`
	// Total is the sum of the holdings total cost.
	Total stockplay.Money `json:"totalCost"`
}

// SummaryRow represents a single holding.
type SummaryRow struct {
	Symbol    string          `json:"symbol"`
	Price     stockplay.Money `json:"pricePerShare"`
	Shares    int64           `json:"shares"`
	TotalCost stockplay.Money `json:"totalCost"`
}

// NewSummary creates a Summary from the current holdings and total.
func NewSummary(holdings []stockplay.Holding, total stockplay.Money) *Summary {
	s := &Summary{
		Holdings: make([]SummaryRow, 0, len(holdings)),
		Total:    total,
	}
	for _, h := range holdings {
		s.Holdings = append(s.Holdings, SummaryRow{
			Symbol:    h.Symbol,
			Price:     h.Price,
			Shares:    h.Shares,
			TotalCost: h.TotalCost,
		})
	}
	return s
}

// SummaryJSON renders the summary as indented json.
func SummaryJSON(s *Summary) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// QuerySummary evaluates a jsonpath expression against the json form of the summary,
// e.g. `$.holdings[*].symbol` or `$.totalCost`.
func QuerySummary(s *Summary, path string) (any, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, err
	}
	v, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	return v, nil
}

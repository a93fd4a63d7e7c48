package renderer

import (
	"encoding/json"
	"testing"

	"github.com/etnz/stockplay"
	"github.com/google/go-cmp/cmp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

func holding(t *testing.T, symbol string, price float64, shares int64) stockplay.Holding {
	t.Helper()
	h, err := stockplay.NewHolding(symbol, stockplay.USD(price), shares)
	if err != nil {
		t.Fatalf("NewHolding() error = %v", err)
	}
	return h
}

func testSummary(t *testing.T) *Summary {
	t.Helper()
	holdings := []stockplay.Holding{
		holding(t, "AAPL", 150, 10),
		holding(t, "MSFT", 300, 5),
	}
	return NewSummary(holdings, stockplay.USD(3000))
}

func TestRenderSummary(t *testing.T) {
	got := RenderSummary(testSummary(t))
	want := `# Portfolio Summary

| Stock Symbol | Price per Share ($) | Number of Shares | Total Cost ($) |
|:---|---:|---:|---:|
| AAPL | $150.00 | 10 | $1,500.00 |
| MSFT | $300.00 | 5 | $1,500.00 |

**Total Cost of Portfolio:** $3,000.00
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RenderSummary() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderSummary_Empty(t *testing.T) {
	got := RenderSummary(NewSummary(nil, stockplay.USD(0)))
	want := "Your portfolio is currently empty. Add stocks using `sps add`.\n"
	if got != want {
		t.Errorf("RenderSummary() = %q, want %q", got, want)
	}
}

func TestRenderTotal(t *testing.T) {
	if got, want := RenderTotal(testSummary(t)), "Total Cost of Portfolio: $3,000.00\n"; got != want {
		t.Errorf("RenderTotal() = %q, want %q", got, want)
	}
	if got, want := RenderTotal(NewSummary(nil, stockplay.USD(0))), "Total Cost of Portfolio: $0.00\n"; got != want {
		t.Errorf("RenderTotal() = %q, want %q", got, want)
	}
}

// TestRenderSummaryIsATable checks that markdown renderers see a real table.
func TestRenderSummaryIsATable(t *testing.T) {
	source := []byte(RenderSummary(testSummary(t)))
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(source))

	var tables, rows, headers int
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *east.Table:
			tables++
		case *east.TableHeader:
			headers++
		case *east.TableRow:
			rows++
		}
		return ast.WalkContinue, nil
	})
	if tables != 1 || headers != 1 || rows != 2 {
		t.Errorf("parsed %d tables, %d headers, %d rows; want 1, 1, 2", tables, headers, rows)
	}
}

func TestSummaryJSON(t *testing.T) {
	data, err := SummaryJSON(testSummary(t))
	if err != nil {
		t.Fatalf("SummaryJSON() error = %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid json %s: %v", data, err)
	}
	want := map[string]any{
		"holdings": []any{
			map[string]any{"symbol": "AAPL", "pricePerShare": 150.0, "shares": 10.0, "totalCost": 1500.0},
			map[string]any{"symbol": "MSFT", "pricePerShare": 300.0, "shares": 5.0, "totalCost": 1500.0},
		},
		"totalCost": 3000.0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SummaryJSON() mismatch (-want +got):\n%s", diff)
	}
}

func TestQuerySummary(t *testing.T) {
	testCases := []struct {
		path string
		want any
	}{
		{"$.totalCost", 3000.0},
		{"$.holdings[*].symbol", []any{"AAPL", "MSFT"}},
		{"$.holdings[0].shares", 10.0},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			got, err := QuerySummary(testSummary(t), tc.path)
			if err != nil {
				t.Fatalf("QuerySummary() error = %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("QuerySummary() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := QuerySummary(testSummary(t), "$.holdings["); err == nil {
		t.Errorf("QuerySummary() with an invalid path expected an error")
	}
}

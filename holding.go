package stockplay

import "strings"

// Holding is a quantity of a single stock symbol acquired at a given price.
type Holding struct {
	Symbol string
	Price  Money // per share
	Shares int64
	// TotalCost is computed once when the holding is created and then trusted as is,
	// including when it is read back from a file.
	TotalCost Money
}

// NewHolding validates the user input and creates a Holding.
//
// The symbol is trimmed and uppercased. It returns a *ValidationError when the
// symbol is blank, or when price or shares are not strictly positive.
func NewHolding(symbol string, price Money, shares int64) (Holding, error) {
	symbol = NormalizeSymbol(symbol)
	switch {
	case symbol == "":
		return Holding{}, ErrEmptySymbol
	case !price.IsPositive():
		return Holding{}, ErrNonPositivePrice
	case shares <= 0:
		return Holding{}, ErrNonPositiveShares
	}
	return Holding{
		Symbol:    symbol,
		Price:     price,
		Shares:    shares,
		TotalCost: price.Times(shares),
	}, nil
}

// NormalizeSymbol returns the canonical form of a ticker symbol.
func NormalizeSymbol(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }

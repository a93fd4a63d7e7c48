package stockplay

import (
	"fmt"
	"slices"
)

// Persister mirrors a whole portfolio on durable storage.
type Persister interface {
	// Load returns the persisted holdings, or an empty list if nothing was ever saved.
	Load() ([]Holding, error)
	// Save replaces the persisted holdings with the given ones.
	Save([]Holding) error
	// Clear removes any persisted holdings.
	Clear() error
}

// Store owns the ordered list of holdings of a session.
//
// Every mutation is immediately followed by a full save through the Persister.
// A Store is not safe for concurrent use: a single session is expected to drive it.
type Store struct {
	holdings []Holding
	p        Persister
}

// New returns an empty Store backed by p. Nothing is loaded nor written.
func New(p Persister) *Store { return &Store{p: p} }

// Open creates a Store and loads its initial state from p, exactly once.
//
// If p reports a *CorruptFileError it is returned as is: the caller may report it and
// continue with New(p), the file is left untouched until the next mutation.
func Open(p Persister) (*Store, error) {
	holdings, err := p.Load()
	if err != nil {
		return nil, err
	}
	return &Store{holdings: holdings, p: p}, nil
}

// Add appends a new holding at the end of the portfolio and persists it.
//
// Validation errors leave the portfolio unchanged. If the holding was added but
// could not be persisted, the holding is returned along with a *PersistError.
func (s *Store) Add(symbol string, price Money, shares int64) (Holding, error) {
	h, err := NewHolding(symbol, price, shares)
	if err != nil {
		return Holding{}, err
	}
	s.holdings = append(s.holdings, h)
	return h, s.persist()
}

// Remove deletes every holding whose symbol is in symbols and returns how many were removed.
//
// Symbols are normalized like in Add. An empty selection is rejected with
// ErrNoSelection. The file is written only if at least one holding was removed.
func (s *Store) Remove(symbols ...string) (int, error) {
	selection := make(map[string]bool, len(symbols))
	for _, sym := range symbols {
		if sym = NormalizeSymbol(sym); sym != "" {
			selection[sym] = true
		}
	}
	if len(selection) == 0 {
		return 0, ErrNoSelection
	}

	before := len(s.holdings)
	s.holdings = slices.DeleteFunc(s.holdings, func(h Holding) bool { return selection[h.Symbol] })
	removed := before - len(s.holdings)
	if removed == 0 {
		return 0, nil
	}
	return removed, s.persist()
}

// Reset empties the portfolio and removes its file.
func (s *Store) Reset() error {
	s.holdings = nil
	if err := s.p.Clear(); err != nil {
		return &PersistError{Op: "clear", Path: s.path(), Err: err}
	}
	return nil
}

// Holdings returns a copy of the holdings in insertion order.
func (s *Store) Holdings() []Holding { return slices.Clone(s.holdings) }

// Len returns the number of holdings.
func (s *Store) Len() int { return len(s.holdings) }

// Total returns the sum of the holdings total cost, zero for an empty portfolio.
func (s *Store) Total() Money {
	total := USD(0)
	for _, h := range s.holdings {
		total = total.Add(h.TotalCost)
	}
	return total
}

// Symbols returns the distinct symbols held, in order of first appearance.
func (s *Store) Symbols() []string {
	var symbols []string
	seen := make(map[string]bool)
	for _, h := range s.holdings {
		if !seen[h.Symbol] {
			seen[h.Symbol] = true
			symbols = append(symbols, h.Symbol)
		}
	}
	return symbols
}

func (s *Store) persist() error {
	if err := s.p.Save(s.holdings); err != nil {
		return &PersistError{Op: "save", Path: s.path(), Err: fmt.Errorf("%d holdings: %w", len(s.holdings), err)}
	}
	return nil
}

// path returns the file path of the Persister, if it has one.
func (s *Store) path() string {
	if f, ok := s.p.(interface{ Path() string }); ok {
		return f.Path()
	}
	return ""
}

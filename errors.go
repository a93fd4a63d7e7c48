package stockplay

import "fmt"

// ValidationKind identifies the precondition a user input failed.
type ValidationKind int

const (
	EmptySymbol ValidationKind = iota + 1
	NonPositivePrice
	NonPositiveShares
	NoSelection
)

// ValidationError reports a rejected operation. The portfolio is left unchanged.
type ValidationError struct {
	Kind ValidationKind
}

var (
	ErrEmptySymbol       = &ValidationError{Kind: EmptySymbol}
	ErrNonPositivePrice  = &ValidationError{Kind: NonPositivePrice}
	ErrNonPositiveShares = &ValidationError{Kind: NonPositiveShares}
	ErrNoSelection       = &ValidationError{Kind: NoSelection}
)

func (e *ValidationError) Error() string {
	switch e.Kind {
	case EmptySymbol:
		return "Please enter a valid stock symbol."
	case NonPositivePrice:
		return "Price per share must be greater than zero."
	case NonPositiveShares:
		return "Number of shares must be greater than zero."
	case NoSelection:
		return "Please select at least one stock to remove."
	default:
		return fmt.Sprintf("invalid input (%d)", int(e.Kind))
	}
}

// Is makes any two ValidationError of the same kind match with errors.Is.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

// CorruptFileError is returned when a portfolio file exists but does not follow the schema.
type CorruptFileError struct {
	Path string // empty when decoding from a plain reader
	Line int    // 0 when the error is not tied to a line
	Err  error
}

func (e *CorruptFileError) Error() string {
	msg := "corrupt portfolio file"
	if e.Path != "" {
		msg += fmt.Sprintf(" %q", e.Path)
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" on line %d", e.Line)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *CorruptFileError) Unwrap() error { return e.Err }

// PersistError is returned when the portfolio was changed in memory but could not be
// written to disk. The in-memory change is kept: the file on disk is stale.
type PersistError struct {
	Op   string // "save" or "clear"
	Path string // empty when the Persister has no file path
	Err  error
}

func (e *PersistError) Error() string {
	file := "the file on disk"
	if e.Path != "" {
		file = fmt.Sprintf("%q", e.Path)
	}
	return fmt.Sprintf("portfolio updated in memory but %s failed, %s is stale: %v", e.Op, file, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

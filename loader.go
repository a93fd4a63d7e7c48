package stockplay

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFile is the name of the portfolio file, relative to the working directory.
const DefaultFile = "portfolio.csv"

// CSVFile persists a portfolio in a single CSV file.
//
// The file is always a complete mirror of the last saved portfolio: an empty
// portfolio is represented by the absence of the file.
type CSVFile struct {
	path string
}

var _ Persister = (*CSVFile)(nil)

// NewCSVFile returns a CSVFile for path. The file is not accessed.
func NewCSVFile(path string) *CSVFile { return &CSVFile{path: path} }

// Path returns the path of the backing file.
func (f *CSVFile) Path() string { return f.path }

// Load reads the holdings from the file. A missing file is an empty portfolio.
func (f *CSVFile) Load() ([]Holding, error) {
	file, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open portfolio file %q: %w", f.path, err)
	}
	defer file.Close()

	holdings, err := DecodeHoldings(file)
	var corrupt *CorruptFileError
	if errors.As(err, &corrupt) {
		corrupt.Path = f.path
		return nil, corrupt
	}
	if err != nil {
		return nil, fmt.Errorf("could not read portfolio file %q: %w", f.path, err)
	}
	return holdings, nil
}

// Save replaces the file content with holdings.
//
// The new content is written to a temporary file in the same folder and then renamed
// over the previous file, so readers never see a partial file. Saving no holdings
// removes the file.
func (f *CSVFile) Save(holdings []Holding) error {
	if len(holdings) == 0 {
		return f.Clear()
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for portfolio file %q: %w", f.path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error opening temporary file for %q: %w", f.path, err)
	}
	// no-op once renamed
	defer os.Remove(tmp.Name())

	if err := EncodeHoldings(tmp, holdings); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing portfolio file %q: %w", f.path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("error syncing portfolio file %q: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing portfolio file %q: %w", f.path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("error setting permissions of portfolio file %q: %w", f.path, err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("error replacing portfolio file %q: %w", f.path, err)
	}
	return nil
}

// Clear removes the file. It is not an error if the file does not exist.
func (f *CSVFile) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not remove portfolio file %q: %w", f.path, err)
	}
	return nil
}

package stockplay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// moneyEqual compares Money by value and currency, 150 and 150.00 are equal.
var moneyEqual = cmp.Comparer(func(a, b Money) bool { return a.Equal(b) })

// h is a helper for test to create a valid holding from consts.
func h(symbol string, price float64, shares int64) Holding {
	holding, err := NewHolding(symbol, USD(price), shares)
	if err != nil {
		panic(err)
	}
	return holding
}

// tempFile returns a CSVFile in a fresh temporary folder.
func tempFile(t *testing.T) *CSVFile {
	t.Helper()
	return NewCSVFile(filepath.Join(t.TempDir(), DefaultFile))
}

func exists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Stat(path)
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("Stat(%q) error = %v", path, err)
	}
	return err == nil
}

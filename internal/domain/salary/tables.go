package salary

import (
	_ "embed"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

//go:embed tables.json
var defaultTables []byte

// BracketTable is a progressive tax table. Each row starts with the lower
// bound of its bracket followed by one value per column; rows are sorted by
// lower bound and the last row only closes the previous bracket.
type BracketTable [][]decimal.Decimal

// Lookup returns the given column of the bracket that holds v, that is the
// first row whose bound is <= v while the next row's bound is > v.
func (t BracketTable) Lookup(v decimal.Decimal, column int) (decimal.Decimal, bool) {
	for i := 0; i+1 < len(t); i++ {
		if t[i][0].LessThanOrEqual(v) && t[i+1][0].GreaterThan(v) {
			if column >= len(t[i]) {
				return decimal.Zero, false
			}
			return t[i][column], true
		}
	}
	return decimal.Zero, false
}

func (t BracketTable) validate(name string, columns int) error {
	if len(t) < 2 {
		return fmt.Errorf("%s: needs at least two rows: %w", name, ErrInvalidTables)
	}
	for i, row := range t {
		if len(row) < columns {
			return fmt.Errorf("%s row %d: expected %d columns, got %d: %w", name, i, columns, len(row), ErrInvalidTables)
		}
		if i > 0 && !row[0].GreaterThan(t[i-1][0]) {
			return fmt.Errorf("%s row %d: bounds must increase: %w", name, i, ErrInvalidTables)
		}
	}
	return nil
}

// Tables are the two bracket tables the calculator looks income tax up in:
// weekly wage tax and the special rate on annual wage.
type Tables struct {
	PayrollTax   BracketTable `json:"payrollTax"`
	PayrollTaxBT BracketTable `json:"payrollTaxBT"`
}

// DefaultTables returns the tables compiled into the binary.
func DefaultTables() (Tables, error) {
	return ParseTables(defaultTables)
}

// LoadTables reads tables from path; an empty path yields the defaults.
func LoadTables(path string) (Tables, error) {
	if path == "" {
		return DefaultTables()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("read payroll tax tables: %w", err)
	}
	return ParseTables(data)
}

func ParseTables(data []byte) (Tables, error) {
	var t Tables
	if err := json.Unmarshal(data, &t); err != nil {
		return Tables{}, fmt.Errorf("decode payroll tax tables: %w", err)
	}
	if err := t.PayrollTax.validate("payrollTax", columnIncomeTaxDiscount+1); err != nil {
		return Tables{}, err
	}
	if err := t.PayrollTaxBT.validate("payrollTaxBT", columnSpecialRateDiscount+1); err != nil {
		return Tables{}, err
	}
	return t, nil
}

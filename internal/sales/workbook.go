package sales

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/jkrouse1998/walmart-supply-chain-analysis/internal/errors"
)

// LoadWorkbook reads a sales table from the first sheet of an Excel
// workbook. The sheet follows the same column contract as the CSV loader.
func LoadWorkbook(path string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.EmptyInput()
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, apperrors.EmptyInput()
	}

	return parseRows(rows[0], rows[1:])
}

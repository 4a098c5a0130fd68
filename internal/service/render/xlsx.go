package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// Excel fills spreadsheet templates cell by cell: every {{key}} occurrence is
// replaced literally, and a cell whose result is purely digits is stored as a
// number so amount columns keep numeric semantics in the exported file.
type Excel struct{}

func (Excel) Render(template []byte, placeholders map[string]string) ([]byte, error) {
	f, err := excelize.OpenReader(bytes.NewReader(template))
	if err != nil {
		return nil, &RenderError{Err: fmt.Errorf("open workbook: %w", err)}
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, &RenderError{Err: fmt.Errorf("read sheet %s: %w", sheet, err)}
		}

		for rowIdx, row := range rows {
			for colIdx, cell := range row {
				if cell == "" || !strings.Contains(cell, "{{") {
					continue
				}

				text := cell
				for key, value := range placeholders {
					text = strings.ReplaceAll(text, "{{"+key+"}}", value)
				}
				if text == cell {
					continue
				}

				name, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
				if err != nil {
					return nil, &RenderError{Err: err}
				}

				// Coerce only purely numeric results; "¥1,000,000" or
				// "abc123" stay text. Values past int64 stay text too.
				if digitsOnly.MatchString(text) {
					if n, err := strconv.ParseInt(text, 10, 64); err == nil {
						if err := f.SetCellValue(sheet, name, n); err != nil {
							return nil, &RenderError{Err: err}
						}
						continue
					}
				}

				if err := f.SetCellValue(sheet, name, text); err != nil {
					return nil, &RenderError{Err: err}
				}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, &RenderError{Err: fmt.Errorf("write workbook: %w", err)}
	}

	return buf.Bytes(), nil
}

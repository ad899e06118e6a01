package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/mroshb/edu_admissions/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// A tab or newline inside a cell would split it into extra columns or lines.
var cellBreaks = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

// WorkbookText flattens every sheet of an .xlsx workbook into pasted-text
// form: one line per row, cells joined by tabs. The first non-blank row of
// a sheet is treated as a header and skipped when it has no digit.
func WorkbookText(r io.Reader) (string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("failed to read sheet %s: %w", sheet, err)
		}

		seenContent := false
		for _, row := range rows {
			line := strings.Join(trimCells(row), "\t")
			if line == "" {
				continue
			}
			first := !seenContent
			seenContent = true
			if first && !strings.ContainsAny(utils.NormalizeDigits(line), "0123456789") {
				continue
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

func trimCells(row []string) []string {
	cells := make([]string, 0, len(row))
	for _, cell := range row {
		cell = cellBreaks.Replace(cell)
		cells = append(cells, strings.TrimSpace(cell))
	}
	for len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

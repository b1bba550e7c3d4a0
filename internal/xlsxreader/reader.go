// =============================================================================
// TR-069 Excelifier - Workbook Inspector
// =============================================================================
//
// This module reads a generated workbook back and reports what a reviewer
// would check by hand: sheets, headers, data rows, column widths and styles,
// merged ranges, the frozen header and the document title.
//
// It backs the `inspect` command and the writer's round-trip tests. It does
// not assume the workbook came from this tool; missing styles or sheets are
// reported as absent rather than treated as errors.
//
// =============================================================================

package xlsxreader

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// =============================================================================
// REPORT STRUCTURE
// =============================================================================

// Report describes one workbook.
type Report struct {
	// Path is the file that was inspected.
	Path string

	// Title is the workbook's title document property.
	Title string

	// Sheets are in workbook order.
	Sheets []Sheet
}

// Sheet describes one worksheet.
type Sheet struct {
	Name string

	// Headers is the first row.
	Headers []string

	// Rows are the data rows below the header. Trailing empty cells are
	// trimmed by the reader, so a row may be shorter than Headers.
	Rows [][]string

	// Columns has one entry per header.
	Columns []Column

	Merges []Merge

	// Frozen reports whether the panes are frozen.
	Frozen bool
}

// Column describes the presentation of one header column.
type Column struct {
	Header string
	Width  float64

	// Bold is the header cell's font weight.
	Bold bool

	// Wrap is true when the first data cell (or the header when there is no
	// data) wraps text.
	Wrap bool
}

// Merge is one merged cell range.
type Merge struct {
	Start string
	End   string
	Value string
}

// Sheet returns the named sheet.
func (r *Report) Sheet(name string) (*Sheet, bool) {
	for i := range r.Sheets {
		if r.Sheets[i].Name == name {
			return &r.Sheets[i], true
		}
	}
	return nil, false
}

// Cell returns the value at a 0-based data row and header, or "" when the
// cell is absent.
func (s *Sheet) Cell(row int, header string) string {
	if row < 0 || row >= len(s.Rows) {
		return ""
	}
	for col, h := range s.Headers {
		if h == header {
			if col < len(s.Rows[row]) {
				return s.Rows[row][col]
			}
			return ""
		}
	}
	return ""
}

// Column returns the presentation of the named header column.
func (s *Sheet) Column(header string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Header == header {
			return c, true
		}
	}
	return Column{}, false
}

// =============================================================================
// INSPECT FUNCTIONS
// =============================================================================

// Inspect opens path and builds its report.
func Inspect(path string) (*Report, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	report := &Report{Path: path}

	props, err := f.GetDocProps()
	if err != nil {
		return nil, fmt.Errorf("failed to read document properties: %w", err)
	}
	if props != nil {
		report.Title = props.Title
	}

	for _, name := range f.GetSheetList() {
		sheet, err := inspectSheet(f, name)
		if err != nil {
			return nil, err
		}
		report.Sheets = append(report.Sheets, *sheet)
	}

	return report, nil
}

func inspectSheet(f *excelize.File, name string) (*Sheet, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of %s: %w", name, err)
	}

	sheet := &Sheet{Name: name}
	if len(rows) > 0 {
		sheet.Headers = rows[0]
		sheet.Rows = rows[1:]
	}

	for i, h := range sheet.Headers {
		col, err := inspectColumn(f, name, i+1, len(sheet.Rows) > 0)
		if err != nil {
			return nil, err
		}
		col.Header = h
		sheet.Columns = append(sheet.Columns, col)
	}

	merges, err := f.GetMergeCells(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read merged cells of %s: %w", name, err)
	}
	for _, m := range merges {
		sheet.Merges = append(sheet.Merges, Merge{
			Start: m.GetStartAxis(),
			End:   m.GetEndAxis(),
			Value: m.GetCellValue(),
		})
	}

	panes, err := f.GetPanes(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read panes of %s: %w", name, err)
	}
	sheet.Frozen = panes.Freeze

	return sheet, nil
}

func inspectColumn(f *excelize.File, sheet string, col int, hasData bool) (Column, error) {
	var c Column

	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return c, err
	}
	if c.Width, err = f.GetColWidth(sheet, name); err != nil {
		return c, fmt.Errorf("failed to read width of %s!%s: %w", sheet, name, err)
	}

	header, err := cellStyle(f, sheet, name+"1")
	if err != nil {
		return c, err
	}
	c.Bold = header != nil && header.Font != nil && header.Font.Bold

	wrapSource := header
	if hasData {
		if wrapSource, err = cellStyle(f, sheet, name+"2"); err != nil {
			return c, err
		}
	}
	c.Wrap = wrapSource != nil && wrapSource.Alignment != nil && wrapSource.Alignment.WrapText

	return c, nil
}

// cellStyle returns the style of cell, or nil for the default style.
func cellStyle(f *excelize.File, sheet, cell string) (*excelize.Style, error) {
	id, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return nil, fmt.Errorf("failed to read style of %s!%s: %w", sheet, cell, err)
	}
	if id == 0 {
		return nil, nil
	}
	style, err := f.GetStyle(id)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve style of %s!%s: %w", sheet, cell, err)
	}
	return style, nil
}

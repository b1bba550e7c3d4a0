// =============================================================================
// TR-069 Excelifier - Spreadsheet Writer
// =============================================================================
//
// This module renders the Model and Profiles tables into an .xlsx workbook.
//
// WORKBOOK LAYOUT:
//
//   Model sheet
//   | Object | Access | Description | Parameter | Parameter Access | Parameter Description |
//   |--------|--------|-------------|-----------|------------------|-----------------------|
//   | Dev.A. | RO     | merged ...  | Enable    | readWrite        | Boolean ...           |
//   |        |        |             | Status    | readOnly         | Enums (Up|Down) ...   |
//
//   Profiles sheet
//   | Profile | Name | Requirement | Base | Extends | Parameters |
//
// PRESENTATION:
//   - header row bold, frozen, with an autofilter
//   - wrap columns (config) top-aligned and word-wrapped
//   - fixed column widths (config)
//   - Object/Access/Description merged over each object's rows (Model only)
//   - the model name becomes the workbook title property
//
// The workbook is built completely in memory and written to a temporary
// file that replaces the target only once the write succeeded.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/tr069tools/tr069-excelifier/internal/config"
	"github.com/tr069tools/tr069-excelifier/internal/table"
	"github.com/tr069tools/tr069-excelifier/internal/types"
	"github.com/tr069tools/tr069-excelifier/pkg/utils"
)

// MergedModelColumns are the Model sheet columns merged per object group.
var MergedModelColumns = []string{types.ColObject, types.ColAccess, types.ColDescription}

// Workbook is everything the writer renders.
type Workbook struct {
	// ModelName is the model's name attribute (its version string).
	ModelName string

	Model    table.ModelTable
	Profiles table.ProfileTable
}

// styles holds the style ids shared by both sheets.
type styles struct {
	header     int
	headerWrap int
	wrap       int
}

// =============================================================================
// WRITE FUNCTIONS
// =============================================================================

// Write renders the workbook and saves it to path, replacing any existing
// file. Nothing is written to path if rendering fails.
func Write(path string, wb Workbook, cfg *config.Config) error {
	f, err := Build(wb, cfg)
	if err != nil {
		return err
	}
	defer f.Close()

	err = utils.WriteFileAtomic(path, func(w io.Writer) error {
		_, err := f.WriteTo(w)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// Build renders the workbook in memory.
func Build(wb Workbook, cfg *config.Config) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := build(f, wb, cfg); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func build(f *excelize.File, wb Workbook, cfg *config.Config) error {
	st, err := newStyles(f)
	if err != nil {
		return err
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, cfg.ModelSheet); err != nil {
		return fmt.Errorf("failed to name model sheet: %w", err)
	}
	if _, err := f.NewSheet(cfg.ProfileSheet); err != nil {
		return fmt.Errorf("failed to create profile sheet: %w", err)
	}

	modelRows := make([][]any, len(wb.Model.Rows))
	for i, r := range wb.Model.Rows {
		values := r.Values()
		modelRows[i] = make([]any, len(values))
		for j, v := range values {
			modelRows[i][j] = v
		}
	}
	if err := writeSheet(f, cfg.ModelSheet, types.ModelHeaders, modelRows, cfg.ModelColumns, st); err != nil {
		return err
	}
	if err := mergeGroups(f, cfg.ModelSheet, wb.Model.Groups); err != nil {
		return err
	}

	profileRows := make([][]any, len(wb.Profiles.Rows))
	for i, r := range wb.Profiles.Rows {
		profileRows[i] = r.Values()
	}
	if err := writeSheet(f, cfg.ProfileSheet, types.ProfileHeaders, profileRows, cfg.ProfileColumns, st); err != nil {
		return err
	}

	f.SetActiveSheet(0)

	err = f.SetDocProps(&excelize.DocProperties{
		Title:       wb.ModelName,
		Subject:     "TR-069 data model",
		Creator:     "tr069-excelifier",
		Identifier:  uuid.New().String(),
		Description: fmt.Sprintf("%d model rows, %d profile rows", len(wb.Model.Rows), len(wb.Profiles.Rows)),
	})
	if err != nil {
		return fmt.Errorf("failed to set document properties: %w", err)
	}
	return nil
}

// =============================================================================
// SHEET RENDERING
// =============================================================================

// writeSheet writes the header and rows, then applies widths and styles.
// nil values leave their cell out.
func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]any, columns []config.Column, st styles) error {
	for col, h := range headers {
		if err := setCell(f, sheet, col+1, 1, h); err != nil {
			return err
		}
	}

	for i, row := range rows {
		for col, v := range row {
			if v == nil {
				continue
			}
			if err := setCell(f, sheet, col+1, i+2, v); err != nil {
				return err
			}
		}
	}

	lastRow := len(rows) + 1
	for col, h := range headers {
		c, ok := findColumn(columns, h)
		if !ok {
			continue
		}
		if err := styleColumn(f, sheet, col+1, lastRow, c, st); err != nil {
			return err
		}
	}

	return freezeHeader(f, sheet, len(headers), lastRow)
}

func styleColumn(f *excelize.File, sheet string, col, lastRow int, c config.Column, st styles) error {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return err
	}

	if err := f.SetColWidth(sheet, name, name, c.Width); err != nil {
		return fmt.Errorf("failed to set width of %s!%s: %w", sheet, name, err)
	}

	headerStyle := st.header
	if c.Wraps() {
		headerStyle = st.headerWrap
		if lastRow > 1 {
			if err := f.SetCellStyle(sheet, cellName(col, 2), cellName(col, lastRow), st.wrap); err != nil {
				return fmt.Errorf("failed to style %s!%s: %w", sheet, name, err)
			}
		}
	}

	return f.SetCellStyle(sheet, cellName(col, 1), cellName(col, 1), headerStyle)
}

func freezeHeader(f *excelize.File, sheet string, columns, lastRow int) error {
	err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return fmt.Errorf("failed to freeze %s header: %w", sheet, err)
	}

	ref := cellName(1, 1) + ":" + cellName(columns, lastRow)
	if err := f.AutoFilter(sheet, ref, nil); err != nil {
		return fmt.Errorf("failed to add %s autofilter: %w", sheet, err)
	}
	return nil
}

// mergeGroups merges the object columns over every group spanning more
// than one row. Row indexes are shifted past the header.
func mergeGroups(f *excelize.File, sheet string, groups []types.Range) error {
	for _, g := range groups {
		if g.Len() < 2 {
			continue
		}
		for _, header := range MergedModelColumns {
			col := columnIndex(types.ModelHeaders, header)
			top, bottom := cellName(col, g.First+2), cellName(col, g.Last+2)
			if err := f.MergeCell(sheet, top, bottom); err != nil {
				return fmt.Errorf("failed to merge %s!%s:%s: %w", sheet, top, bottom, err)
			}
		}
	}
	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error

	wrap := &excelize.Alignment{Vertical: "top", WrapText: true}

	if st.header, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return st, fmt.Errorf("failed to create header style: %w", err)
	}
	if st.headerWrap, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, Alignment: wrap}); err != nil {
		return st, fmt.Errorf("failed to create header style: %w", err)
	}
	if st.wrap, err = f.NewStyle(&excelize.Style{Alignment: wrap}); err != nil {
		return st, fmt.Errorf("failed to create wrap style: %w", err)
	}
	return st, nil
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell := cellName(col, row)
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
	}
	return nil
}

// cellName converts 1-based coordinates; they are always in range here.
func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func findColumn(columns []config.Column, header string) (config.Column, bool) {
	for _, c := range columns {
		if c.Header == header {
			return c, true
		}
	}
	return config.Column{}, false
}

// columnIndex returns the 1-based position of header.
func columnIndex(headers []string, header string) int {
	for i, h := range headers {
		if h == header {
			return i + 1
		}
	}
	return 0
}

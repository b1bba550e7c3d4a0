// =============================================================================
// TR-069 Excelifier - Inspect Command
// =============================================================================
//
// This file defines the 'inspect' command, which prints the structure of a
// workbook: title, sheets, row counts, header styling, wrapped columns and
// merged ranges.
//
// COMMAND USAGE:
//   tr069-excelifier inspect <workbook.xlsx>
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tr069tools/tr069-excelifier/internal/xlsxreader"
	"github.com/tr069tools/tr069-excelifier/pkg/utils"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <workbook.xlsx>",
	Short: "Print the structure of a workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if !utils.FileExists(path) {
			return fmt.Errorf("workbook not found: %s", path)
		}

		report, err := xlsxreader.Inspect(path)
		if err != nil {
			return err
		}
		printReport(cmd.OutOrStdout(), report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func printReport(w io.Writer, report *xlsxreader.Report) {
	fmt.Fprintf(w, "Workbook: %s\n", report.Path)
	if size, err := utils.GetFileSize(report.Path); err == nil {
		fmt.Fprintf(w, "Size:     %d bytes\n", size)
	}
	if report.Title != "" {
		fmt.Fprintf(w, "Title:    %s\n", report.Title)
	}

	for _, sheet := range report.Sheets {
		fmt.Fprintf(w, "\nSheet %q: %d data rows, %d merged ranges, frozen header: %t\n",
			sheet.Name, len(sheet.Rows), len(sheet.Merges), sheet.Frozen)

		for _, col := range sheet.Columns {
			var flags []string
			if col.Bold {
				flags = append(flags, "bold")
			}
			if col.Wrap {
				flags = append(flags, "wrap")
			}
			fmt.Fprintf(w, "  %-24s width %6.1f  %s\n", col.Header, col.Width, strings.Join(flags, ","))
		}

		for _, m := range sheet.Merges {
			fmt.Fprintf(w, "  merge %s:%s %q\n", m.Start, m.End, m.Value)
		}
	}
}

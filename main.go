// =============================================================================
// TR-069 Excelifier - Main Entry Point
// =============================================================================
//
// This is the main entry point for the tr069-excelifier CLI. It delegates
// command execution to the cmd package.
//
// USAGE:
//   tr069-excelifier convert -f model.xml [-o model.xlsx]
//   tr069-excelifier inspect model.xlsx
//   tr069-excelifier version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : loader, validation, flattening, tables, workbook I/O
//   - pkg/           : shared file utilities
//
// =============================================================================

package main

import (
	"github.com/tr069tools/tr069-excelifier/cmd"
)

func main() {
	cmd.Execute()
}

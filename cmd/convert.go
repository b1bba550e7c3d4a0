// =============================================================================
// TR-069 Excelifier - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, the main command of the tool.
//
// COMMAND USAGE:
//   tr069-excelifier convert -f <model.xml> [-o <out.xlsx>] [--strict]
//
// FLAGS:
//   -f, --file    : data-model XML file to convert (required)
//   -o, --output  : workbook to write (default: default_output from the
//                   configuration, "output.xlsx" unless configured)
//   --strict      : treat validation warnings as errors
//
// On success a one-line summary is printed to stdout. On any error nothing
// is written and the command exits non-zero.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tr069tools/tr069-excelifier/internal/converter"
	"github.com/tr069tools/tr069-excelifier/internal/validation"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// inputPath is the data-model XML file.
var inputPath string

// outputPath is the workbook to write.
var outputPath string

// strict turns validation warnings into errors.
var strict bool

// =============================================================================
// CONVERT COMMAND DEFINITION
// =============================================================================

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a data-model XML file into an Excel workbook",
	Long: `The convert command reads the first <model> of a TR-069 data-model XML
document and writes a workbook with two sheets:

  Model     Object | Access | Description | Parameter | Parameter Access |
            Parameter Description
  Profiles  Profile | Name | Requirement | Base | Extends | Parameters

Every object, parameter and profile reference must carry the attributes its
row needs; missing ones are reported together and nothing is written.
An existing output file is only replaced once the new workbook is complete.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(
		&inputPath,
		"file",
		"f",
		"",
		"Data-model XML file to convert",
	)
	convertCmd.MarkFlagRequired("file")

	convertCmd.Flags().StringVarP(
		&outputPath,
		"output",
		"o",
		"",
		"Output workbook (default \"output.xlsx\" or default_output from --config)",
	)

	convertCmd.Flags().BoolVar(
		&strict,
		"strict",
		false,
		"Treat validation warnings as errors",
	)
}

// =============================================================================
// CONVERSION
// =============================================================================

func runConvert(cmd *cobra.Command) error {
	conv := converter.New(converter.Options{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Config:     appConfig,
		Logger:     logger,
		Validation: validation.Options{TreatWarningsAsErrors: strict},
	})

	result, err := conv.Run()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %s (model %s)\n", result.OutputPath, result.ModelName)
	fmt.Fprintf(out, "  %d objects, %d parameters -> %d model rows\n",
		result.Stats.Objects, result.Stats.Parameters, result.Stats.ModelRows)
	fmt.Fprintf(out, "  %d profiles -> %d profile rows\n",
		result.Stats.Profiles, result.Stats.ProfileRows)
	if n := len(result.Warnings); n > 0 {
		fmt.Fprintf(out, "  %d validation warning(s), see log\n", n)
	}
	if result.Stats.UnknownSyntax > 0 {
		fmt.Fprintf(out, "  %d parameter(s) with unrecognised syntax left unannotated\n", result.Stats.UnknownSyntax)
	}
	return nil
}

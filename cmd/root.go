// =============================================================================
// TR-069 Excelifier - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (tr069-excelifier)
//   ├── convertCmd (tr069-excelifier convert)
//   ├── inspectCmd (tr069-excelifier inspect)
//   └── versionCmd (tr069-excelifier version)
//
// CONFIGURATION:
//   Before any subcommand runs, the root command
//   1. loads the optional YAML configuration (--config)
//   2. builds the logger (--verbose forces debug level)
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tr069tools/tr069-excelifier/internal/config"
	"github.com/tr069tools/tr069-excelifier/internal/logging"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the optional configuration file.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// appConfig and logger are set up by the root command before a subcommand
// runs.
var (
	appConfig *config.Config
	logger    *slog.Logger
)

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tr069-excelifier",
	Short: "Convert TR-069 data-model XML into a two-sheet Excel workbook",
	Long: `tr069-excelifier turns a TR-069 (CWMP) data-model XML definition into an
.xlsx workbook for review:

  Model sheet     one row per parameter, object cells merged per object
  Profiles sheet  one row per profile object reference, sorted

Descriptions get type annotations (booleans, enumerations, string sizes,
units, defaults) and their {{...}} template placeholders resolved.

Example Usage:
  tr069-excelifier convert -f tr-181-2-15-0.xml -o tr-181.xlsx
  tr069-excelifier convert -f model.xml --config excelifier.yaml -v
  tr069-excelifier inspect tr-181.xlsx`,

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to a YAML configuration file (built-in defaults when empty)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}

// initConfig loads the configuration and builds the logger.
func initConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	level := logging.ParseLevel(cfg.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}

	appConfig = cfg
	logger = logging.New(level)
	if cfgFile != "" {
		logger.Debug("loaded configuration", "path", cfgFile)
	}
	return nil
}

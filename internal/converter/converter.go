// =============================================================================
// TR-069 Excelifier - Converter Module
// =============================================================================
//
// This module contains the conversion pipeline. It takes one data-model XML
// file to one two-sheet workbook.
//
// CONVERSION PIPELINE:
//   1. Load the first <model> of the input document
//   2. Validate it (missing attributes are fatal, nothing is written)
//   3. Flatten objects into Model rows
//   4. Flatten profiles into Profiles rows
//   5. Normalize, group and sort the rows into the two tables
//   6. Write the workbook (temp file + rename)
//
// The pipeline is single-threaded and holds the whole model in memory.
//
// =============================================================================

package converter

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tr069tools/tr069-excelifier/internal/config"
	"github.com/tr069tools/tr069-excelifier/internal/logging"
	"github.com/tr069tools/tr069-excelifier/internal/modelparser"
	"github.com/tr069tools/tr069-excelifier/internal/placeholder"
	"github.com/tr069tools/tr069-excelifier/internal/table"
	"github.com/tr069tools/tr069-excelifier/internal/types"
	"github.com/tr069tools/tr069-excelifier/internal/validation"
	"github.com/tr069tools/tr069-excelifier/internal/xlsxwriter"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one conversion.
type Result struct {
	// InputPath is the model document that was converted.
	InputPath string

	// OutputPath is the workbook that was written.
	OutputPath string

	// ModelName is the model's name attribute.
	ModelName string

	// Warnings are the non-fatal validation findings.
	Warnings []*validation.ValidationError

	Stats Stats
}

// Stats contains counts about the conversion.
type Stats struct {
	Objects    int
	Parameters int
	ModelRows  int
	Profiles   int

	// ProfileRows is the number of (profile, object reference) rows.
	ProfileRows int

	// UnknownSyntax is the number of parameters whose syntax could not be
	// annotated.
	UnknownSyntax int

	Duration time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Options configures a Converter.
type Options struct {
	// InputPath is the data-model XML file. Required.
	InputPath string

	// OutputPath is the workbook to write. Defaults to Config.DefaultOutput.
	OutputPath string

	// Config holds sheet names and column presentation. Defaults to
	// config.Default().
	Config *config.Config

	// Logger receives progress and diagnostics. Defaults to a no-op logger.
	Logger *slog.Logger

	Validation validation.Options
}

// Converter runs the conversion for one input file.
type Converter struct {
	opts       Options
	logger     *slog.Logger
	normalizer *placeholder.Normalizer
}

// New creates a Converter, filling unset options with defaults.
func New(opts Options) *Converter {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.OutputPath == "" {
		opts.OutputPath = opts.Config.DefaultOutput
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}

	return &Converter{
		opts:       opts,
		logger:     opts.Logger.With("input", opts.InputPath),
		normalizer: placeholder.New(),
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the conversion pipeline. On error no output file is created
// and an existing one is left untouched.
func (c *Converter) Run() (*Result, error) {
	start := time.Now()

	if c.opts.InputPath == "" {
		return nil, errors.New("no input file given")
	}

	result := &Result{
		InputPath:  c.opts.InputPath,
		OutputPath: c.opts.OutputPath,
	}

	// =========================================================================
	// STEP 1: LOAD MODEL
	// =========================================================================

	model, err := modelparser.Load(c.opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}

	result.ModelName = modelparser.Value(model.Name)
	c.logger.Debug("loaded model",
		"model", result.ModelName,
		"objects", len(model.Objects),
		"profiles", len(model.Profiles))

	// =========================================================================
	// STEP 2: VALIDATE
	// =========================================================================

	check := validation.NewValidatorWithOptions(c.opts.Validation).Validate(model)
	result.Warnings = check.Warnings()
	for _, w := range result.Warnings {
		c.logger.Warn("validation warning", "path", w.Path, "field", w.Field, "msg", w.Message)
	}
	if err := check.Err(); err != nil {
		return nil, err
	}

	// =========================================================================
	// STEP 3: FLATTEN OBJECTS
	// =========================================================================

	flattener := NewObjectFlattener(c.logger)
	var modelRows []types.ModelRow
	for i := range model.Objects {
		modelRows = append(modelRows, flattener.Flatten(&model.Objects[i])...)
	}

	result.Stats.Objects = len(model.Objects)
	result.Stats.Parameters = flattener.Parameters
	result.Stats.UnknownSyntax = flattener.UnknownSyntax
	c.logger.Debug("flattened objects", "rows", len(modelRows))

	// =========================================================================
	// STEP 4: FLATTEN PROFILES
	// =========================================================================

	profileRows := FlattenProfiles(model)
	result.Stats.Profiles = len(model.Profiles)
	c.logger.Debug("flattened profiles", "rows", len(profileRows))

	// =========================================================================
	// STEP 5: BUILD TABLES
	// =========================================================================

	wb := xlsxwriter.Workbook{
		ModelName: result.ModelName,
		Model:     table.BuildModel(modelRows, c.normalizer),
		Profiles:  table.BuildProfiles(profileRows),
	}

	result.Stats.ModelRows = len(wb.Model.Rows)
	result.Stats.ProfileRows = len(wb.Profiles.Rows)
	c.logger.Debug("built tables", "groups", len(wb.Model.Groups))

	// =========================================================================
	// STEP 6: WRITE WORKBOOK
	// =========================================================================

	if err := xlsxwriter.Write(c.opts.OutputPath, wb, c.opts.Config); err != nil {
		return nil, err
	}

	result.Stats.Duration = time.Since(start)
	c.logger.Info("conversion complete",
		"model", result.ModelName,
		"output", result.OutputPath,
		"model_rows", result.Stats.ModelRows,
		"profile_rows", result.Stats.ProfileRows,
		"duration", result.Stats.Duration)

	return result, nil
}

// =============================================================================
// Export Document Generator - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, which runs the derivation
// pipeline for one or more shipment record files and writes one xlsx
// workbook per shipment.
//
// COMMAND USAGE:
//   exportdocs generate [flags]
//
// FLAGS:
//   --record    : Path to a single shipment record YAML file
//   --records   : Directory of record files to process as a batch
//   --out       : Override the configured output directory
//   --dry-run   : Run the pipeline without writing workbooks or archiving
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Load branding images (best effort, shared across the batch)
//   3. Discover record files
//   4. For each record (bounded concurrency):
//      a. Parse the YAML record
//      b. Compose the five structured documents
//      c. Render the workbook
//      d. Archive the record file
//   5. Print a summary report
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harborline/export-docs/internal/compose"
	"github.com/harborline/export-docs/internal/config"
	"github.com/harborline/export-docs/internal/images"
	"github.com/harborline/export-docs/internal/render"
	"github.com/harborline/export-docs/internal/shipment"
	"github.com/harborline/export-docs/pkg/utils"
)

// recordFile is the path to a single record file to process.
var recordFile string

// recordsDir is a directory of record files to process as a batch.
var recordsDir string

// outDir overrides the configured output directory.
var outDir string

// dryRun runs the pipeline without writing workbooks or archiving.
var dryRun bool

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate compliance documents from shipment records",
	Long: `The generate command reads shipment record YAML files, derives the full
compliance document set for each (customs invoice, worksheet copy, packing
list, annexure, VGM sheet), and writes one workbook per shipment.

Records are processed independently with bounded concurrency; errors in one
record do not affect the others unless continue_on_error is disabled.

On successful generation:
  - The workbook is placed in the output directory, named
    "{invoice suffix} - {final destination} - {container descriptor}.xlsx"
  - The record file is moved to the archive directory

On error:
  - The record file stays where it is
  - Processing continues for other records`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

// init registers the generate command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(
		&recordFile,
		"record",
		"",
		"Path to a single shipment record YAML file",
	)

	generateCmd.Flags().StringVar(
		&recordsDir,
		"records",
		"",
		"Directory of shipment record files to process",
	)

	generateCmd.Flags().StringVar(
		&outDir,
		"out",
		"",
		"Override the configured output directory",
	)

	generateCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Run the pipeline without writing workbooks or archiving",
	)
}

// genResult is the outcome of processing a single record file.
type genResult struct {
	RecordPath string
	OutputFile string
	Produced   int
	Suppressed int
	Err        error
}

// runGenerate orchestrates the generation pipeline.
func runGenerate() error {
	startTime := time.Now()

	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================

	fmt.Println("=== Export Document Generator ===")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if outDir != "" {
		cfg.OutputDir = outDir
	}

	logger := newCmdLogger(cfg.LogLevel, verbose)

	fm := utils.NewFileManager(cfg.OutputDir, cfg.ArchiveDir)
	fm.ArchiveOnSuccess = cfg.ArchiveOnSuccessEnabled() && !dryRun
	if err := fm.EnsureDirectories(); err != nil {
		return err
	}

	// =========================================================================
	// STEP 2: LOAD BRANDING IMAGES
	// =========================================================================
	// Best effort, loaded once and shared read-only across the batch.

	imgs := images.Load(map[images.Slot]string{
		images.Header:    cfg.Images.Header,
		images.Footer:    cfg.Images.Footer,
		images.Signature: cfg.Images.Signature,
	}, logger)

	// =========================================================================
	// STEP 3: DISCOVER RECORD FILES
	// =========================================================================

	recordPaths, err := discoverRecords()
	if err != nil {
		return err
	}
	if len(recordPaths) == 0 {
		fmt.Println("No record files to process.")
		return nil
	}

	fmt.Printf("Found %d record(s) to process\n", len(recordPaths))

	// =========================================================================
	// STEP 4: PROCESS RECORDS WITH BOUNDED CONCURRENCY
	// =========================================================================

	var wg sync.WaitGroup
	sem := make(chan struct{}, cfg.MaxConcurrency)
	results := make(chan genResult, len(recordPaths))

	composer := compose.NewWithLogger(logger)
	renderer := render.NewRenderer()

	for _, path := range recordPaths {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results <- processRecord(path, composer, renderer, fm, imgs)
		}(path)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// =========================================================================
	// STEP 5: COLLECT RESULTS AND PRINT SUMMARY
	// =========================================================================

	var successCount, errorCount int
	for result := range results {
		if result.Err != nil {
			errorCount++
			fmt.Printf("  ✗ %s: %v\n", filepath.Base(result.RecordPath), result.Err)
			if !cfg.ContinueOnErrorEnabled() {
				return fmt.Errorf("aborting batch: %w", result.Err)
			}
			continue
		}
		successCount++
		fmt.Printf("  ✓ %s -> %s (%d document(s), %d suppressed)\n",
			filepath.Base(result.RecordPath), result.OutputFile,
			result.Produced, result.Suppressed)
	}

	fmt.Println("\n=== Generation Complete ===")
	fmt.Printf("Total records:   %d\n", len(recordPaths))
	fmt.Printf("Successful:      %d\n", successCount)
	fmt.Printf("Errors:          %d\n", errorCount)
	fmt.Printf("Time elapsed:    %s\n", time.Since(startTime))

	return nil
}

// processRecord runs the pipeline for one record file.
func processRecord(path string, composer *compose.Composer, renderer *render.Renderer, fm *utils.FileManager, imgs images.Set) genResult {
	result := genResult{RecordPath: path}

	rec, err := loadRecord(path)
	if err != nil {
		result.Err = err
		return result
	}

	composed, err := composer.Compose(rec)
	if err != nil {
		result.Err = err
		return result
	}
	result.Produced = composed.Stats.Produced
	result.Suppressed = composed.Stats.SuppressedCount

	outputPath := fm.OutputPath(
		rec.Shipping.InvoiceNumber,
		rec.Shipping.FinalDestination,
		rec.Shipping.ContainerSummary,
	)
	result.OutputFile = outputPath

	if dryRun {
		return result
	}

	if err := renderer.WriteFile(outputPath, composed.Documents, imgs); err != nil {
		result.Err = err
		return result
	}

	if err := fm.ArchiveRecord(path); err != nil {
		// The workbook was written; a failed archive is not worth failing
		// the record over.
		fmt.Fprintf(os.Stderr, "[WARN] %v\n", err)
	}

	return result
}

// loadRecord parses a shipment record YAML file.
func loadRecord(path string) (*shipment.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	var rec shipment.Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse record: %w", err)
	}
	return &rec, nil
}

// discoverRecords resolves the --record/--records flags into a file list.
func discoverRecords() ([]string, error) {
	if recordFile != "" && recordsDir != "" {
		return nil, fmt.Errorf("--record and --records are mutually exclusive")
	}

	if recordFile != "" {
		if _, err := os.Stat(recordFile); err != nil {
			return nil, fmt.Errorf("record file: %w", err)
		}
		return []string{recordFile}, nil
	}

	if recordsDir == "" {
		return nil, fmt.Errorf("one of --record or --records is required")
	}

	var files []string
	err := filepath.Walk(recordsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".yaml", ".yml":
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// =============================================================================
// LEVELED LOGGER
// =============================================================================

// cmdLogger writes leveled log lines to stderr, honoring the configured
// level and the --verbose flag.
type cmdLogger struct {
	debug bool
	info  bool
	warn  bool
}

func newCmdLogger(level string, verbose bool) *cmdLogger {
	l := &cmdLogger{}
	switch level {
	case "debug":
		l.debug, l.info, l.warn = true, true, true
	case "info":
		l.info, l.warn = true, true
	case "warn":
		l.warn = true
	}
	if verbose {
		l.debug, l.info, l.warn = true, true, true
	}
	return l
}

func (l *cmdLogger) Debug(msg string, args ...interface{}) {
	if l.debug {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+msg+"\n", args...)
	}
}

func (l *cmdLogger) Info(msg string, args ...interface{}) {
	if l.info {
		fmt.Fprintf(os.Stderr, "[INFO] "+msg+"\n", args...)
	}
}

func (l *cmdLogger) Warn(msg string, args ...interface{}) {
	if l.warn {
		fmt.Fprintf(os.Stderr, "[WARN] "+msg+"\n", args...)
	}
}

func (l *cmdLogger) Error(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[ERROR] "+msg+"\n", args...)
}

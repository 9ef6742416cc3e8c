// =============================================================================
// Export Document Generator - File Manager Utility
// =============================================================================
//
// File handling around the generation pipeline:
//   - output workbook naming (the caller-facing naming convention)
//   - archival of processed record files
//   - directory management
//
// ARCHIVAL STRATEGY:
//   Record files are moved to the archive directory after successful
//   generation. Failed records remain where they are so the problem can be
//   fixed and the file re-submitted.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileManager handles file operations for the generator.
type FileManager struct {
	// OutputDir is the directory where generated workbooks are placed.
	OutputDir string

	// ArchiveDir is the directory for archived record files.
	ArchiveDir string

	// ArchiveOnSuccess determines whether records are archived after
	// successful generation.
	ArchiveOnSuccess bool
}

// NewFileManager creates a FileManager with the specified directories.
func NewFileManager(outputDir, archiveDir string) *FileManager {
	return &FileManager{
		OutputDir:        outputDir,
		ArchiveDir:       archiveDir,
		ArchiveOnSuccess: true,
	}
}

// EnsureDirectories creates the managed directories if they don't exist.
func (fm *FileManager) EnsureDirectories() error {
	for _, dir := range []string{fm.OutputDir, fm.ArchiveDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// OutputPath builds the workbook path for a shipment using the caller's
// naming convention:
//
//	{invoice number suffix} - {final destination} - {container descriptor}
//
// Empty parts are dropped; if everything is empty the name falls back to a
// random UUID so a workbook is never lost to a blank name.
func (fm *FileManager) OutputPath(invoiceNumber, finalDestination, containerDescriptor string) string {
	parts := []string{}
	if s := InvoiceSuffix(invoiceNumber); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(finalDestination); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(containerDescriptor); s != "" {
		parts = append(parts, s)
	}

	name := Sanitize(strings.Join(parts, " - "))
	if name == "" {
		name = uuid.New().String()
	}

	return filepath.Join(fm.OutputDir, name+".xlsx")
}

// ArchiveRecord moves a processed record file into the archive directory.
func (fm *FileManager) ArchiveRecord(recordPath string) error {
	if !fm.ArchiveOnSuccess {
		return nil
	}

	target := filepath.Join(fm.ArchiveDir, filepath.Base(recordPath))
	if err := os.Rename(recordPath, target); err != nil {
		return fmt.Errorf("failed to archive record file: %w", err)
	}
	return nil
}

// InvoiceSuffix extracts the trailing segment of a slash-separated invoice
// number ("HL/EXP/2024/0042" -> "0042"). Numbers without slashes pass
// through unchanged.
func InvoiceSuffix(invoiceNumber string) string {
	s := strings.TrimSpace(invoiceNumber)
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}

// Sanitize strips characters that are unsafe in file names across the
// platforms the generated workbooks travel to.
func Sanitize(name string) string {
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "",
		"*", "",
		"?", "",
		"\"", "",
		"<", "",
		">", "",
		"|", "",
	)
	return strings.TrimSpace(replacer.Replace(name))
}

// =============================================================================
// Export Document Generator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Export Document Generator CLI. It
// initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   exportdocs generate      - Generate document workbooks from shipment records
//   exportdocs version       - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core derivation pipeline (not for external import)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/harborline/export-docs/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}

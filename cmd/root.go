// =============================================================================
// Export Document Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that the other commands ('generate', 'version') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (exportdocs)
//   ├── generateCmd (exportdocs generate)
//   └── versionCmd (exportdocs version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "exportdocs",

	Short: "Export Document Generator - Derive compliance documents from shipment records",

	Long: `Export Document Generator turns one normalized export-shipment record into
a coherent set of compliance documents: customs invoice, reconciled worksheet
copy, packing list, regulatory annexure, and container-weight (VGM) sheet.

Key Features:
  - Exact line-level reconciliation of insurance/freight surcharges against
    the declared grand total
  - Schema selection (tiles vs sanitary layouts) resolved once per shipment
    and applied consistently across all documents
  - Positional container/weighbridge cross-referencing for VGM figures
  - One xlsx workbook per shipment, one sheet per document

Example Usage:
  exportdocs generate --record shipment.yaml   # Generate documents for one record
  exportdocs generate --records ./records      # Generate for every record in a directory
  exportdocs version                           # Display version information`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

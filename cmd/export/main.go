// Package main provides a command that writes the report document to disk
// without running the dashboard.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the performance management report as a document",
	Long:  "Renders the built-in performance management report in one or all layout variants and writes it as .docx (or .pdf when REPORT_PDF_FONT is set).",
	RunE:  runExport,
}

var (
	exportLayout string
	exportFormat string
	exportOut    string
	exportAll    bool
)

func init() {
	rootCmd.Flags().StringVarP(&exportLayout, "layout", "l", "", "Layout variant: plain, boxed-grid or heading-list (default from REPORT_DEFAULT_LAYOUT)")
	rootCmd.Flags().StringVarP(&exportFormat, "format", "f", "docx", "Output format: docx or pdf")
	rootCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file, or directory with --all (default: export file name in the current directory)")
	rootCmd.Flags().BoolVar(&exportAll, "all", false, "Write every layout variant")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

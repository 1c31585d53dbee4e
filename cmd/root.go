package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCMD = &cobra.Command{
	Use:   "tdxingest",
	Short: "TDX Daily Price Data Conversion and Ingestion Tool",
	Long: `A CLI application for working with TDX .day price history files.
This tool can convert a single .day file to CSV, bulk-ingest a directory
of .day files into Postgres, and serve aggregated statistics through a
REST API.`,
}

func Execute() {
	err := rootCMD.Execute()
	if err != nil {
		os.Exit(1)
	}
}

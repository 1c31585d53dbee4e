package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/zsh-afrangry/tdxingest/database"
	"github.com/zsh-afrangry/tdxingest/ingest"
)

var ingestCMD = &cobra.Command{
	Use:   "ingest [data-directory]",
	Short: "Ingest .day files from the specified directory",
	Long: `Decode every TDX .day file in the specified directory and load the
price bars into the database using parallel file workers, then recompute
the per-stock summaries.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dataDir := args[0]

		log.Println("Initializing database...")
		if err := database.InitDB(); err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}

		processor := ingest.NewProcessor()

		log.Printf("Starting ingestion from directory: %s", dataDir)

		if err := processor.ProcessDirectory(dataDir); err != nil {
			log.Fatalf("Failed to process data: %v", err)
		}

		fmt.Println("Data ingestion completed successfully!")
	},
}

func init() {
	rootCMD.AddCommand(ingestCMD)
}

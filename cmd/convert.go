package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/zsh-afrangry/tdxingest/decoder"
	"github.com/zsh-afrangry/tdxingest/export"
)

const previewRows = 5

var convertCMD = &cobra.Command{
	Use:   "convert [input.day] [output.csv]",
	Short: "Convert a single .day file to CSV",
	Long: `Decode a TDX .day price history file and write it as a CSV file with
a header row and YYYY-MM-DD dates. The stock code is taken from the input
file's name. Exits non-zero when the decode fails or produces no rows.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		inputPath, outputPath := args[0], args[1]

		bars, err := decoder.DecodeFile(inputPath)
		if err != nil {
			log.Fatalf("Failed to decode %s: %v", inputPath, err)
		}

		if len(bars) == 0 {
			log.Printf("No data to convert from %s", inputPath)
			os.Exit(1)
		}

		first := bars[0].Date.Format("2006-01-02")
		last := bars[len(bars)-1].Date.Format("2006-01-02")
		log.Printf("Decoded %d records spanning %s to %s", len(bars), first, last)

		if err := export.WriteCSV(outputPath, bars); err != nil {
			log.Fatalf("Failed to write CSV: %v", err)
		}
		fmt.Printf("Data saved to: %s\n", outputPath)

		head := bars
		if len(head) > previewRows {
			head = head[:previewRows]
		}
		fmt.Printf("\n--- Preview (first %d rows) ---\n", len(head))
		export.Preview(os.Stdout, head)

		tail := bars
		if len(tail) > previewRows {
			tail = tail[len(tail)-previewRows:]
		}
		fmt.Printf("\n--- Preview (last %d rows) ---\n", len(tail))
		export.Preview(os.Stdout, tail)
	},
}

func init() {
	rootCMD.AddCommand(convertCMD)
}

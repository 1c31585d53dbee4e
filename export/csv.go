package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/zsh-afrangry/tdxingest/decoder"
)

// utf8BOM prefixes the output so spreadsheet tools detect UTF-8 and render
// non-ASCII stock names correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{"date", "stock_code", "open", "high", "low", "close", "volume", "amount"}

// WriteCSV renders the decoded bars as delimited text at the given path.
// Callers must not pass an empty slice; the no-data outcome is theirs to
// handle before serialization.
func WriteCSV(path string, bars []decoder.PriceBar) error {
	if len(bars) == 0 {
		return fmt.Errorf("no bars to write")
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, bar := range bars {
		record := []string{
			bar.Date.Format("2006-01-02"),
			bar.StockCode,
			strconv.FormatFloat(bar.Open, 'f', 2, 64),
			strconv.FormatFloat(bar.High, 'f', 2, 64),
			strconv.FormatFloat(bar.Low, 'f', 2, 64),
			strconv.FormatFloat(bar.Close, 'f', 2, 64),
			strconv.FormatUint(uint64(bar.Volume), 10),
			strconv.FormatFloat(bar.Amount, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

// Preview renders the given bars as an aligned text table, one row per bar.
// Used by the CLI to show the head and tail of a conversion.
func Preview(w io.Writer, bars []decoder.PriceBar) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "date\tstock_code\topen\thigh\tlow\tclose\tvolume\tamount")
	for _, bar := range bars {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%d\t%g\n",
			bar.Date.Format("2006-01-02"), bar.StockCode,
			bar.Open, bar.High, bar.Low, bar.Close, bar.Volume, bar.Amount)
	}
	tw.Flush()
}

package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/zsh-afrangry/tdxingest/decoder"
)

func sampleBars() []decoder.PriceBar {
	return []decoder.PriceBar{
		{
			Date:      time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			StockCode: "sh000001",
			Open:      3500.00,
			High:      3550.00,
			Low:       3480.00,
			Close:     3520.00,
			Volume:    98765,
			Amount:    123456.0,
		},
		{
			Date:      time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			StockCode: "sh000001",
			Open:      3520.00,
			High:      3560.50,
			Low:       3510.00,
			Close:     3555.25,
			Volume:    87654,
			Amount:    654321.0,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sh000001.csv")

	if err := WriteCSV(path, sampleBars()); err != nil {
		t.Fatalf("Failed to write CSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	bom := []byte{0xEF, 0xBB, 0xBF}
	if !bytes.HasPrefix(data, bom) {
		t.Error("Expected output to start with UTF-8 BOM")
	}

	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, bom))).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse output as CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d records", len(records))
	}

	header := strings.Join(records[0], ",")
	if header != "date,stock_code,open,high,low,close,volume,amount" {
		t.Errorf("Unexpected header: %s", header)
	}

	row := records[1]
	if row[0] != "2024-01-02" {
		t.Errorf("Expected date 2024-01-02, got %s", row[0])
	}
	if row[1] != "sh000001" {
		t.Errorf("Expected stock code sh000001, got %s", row[1])
	}
	if row[2] != "3500.00" {
		t.Errorf("Expected open 3500.00, got %s", row[2])
	}
	if row[5] != "3520.00" {
		t.Errorf("Expected close 3520.00, got %s", row[5])
	}
	if row[6] != "98765" {
		t.Errorf("Expected volume 98765, got %s", row[6])
	}
}

func TestWriteCSVRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	if err := WriteCSV(path, nil); err == nil {
		t.Error("Expected error when writing zero bars, got nil")
	}

	if _, err := os.Stat(path); err == nil {
		t.Error("Expected no output file for zero bars")
	}
}

func TestPreview(t *testing.T) {
	var buf bytes.Buffer
	Preview(&buf, sampleBars())

	out := buf.String()
	if !strings.Contains(out, "sh000001") {
		t.Errorf("Expected preview to contain stock code, got:\n%s", out)
	}
	if !strings.Contains(out, "2024-01-03") {
		t.Errorf("Expected preview to contain dates, got:\n%s", out)
	}
	if lines := strings.Count(out, "\n"); lines != 3 {
		t.Errorf("Expected header plus 2 rows, got %d lines", lines)
	}
}

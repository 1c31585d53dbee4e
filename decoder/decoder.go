package decoder

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	// Each record in a .day file is exactly 32 bytes.
	recordSize = 32

	dateLayout = "20060102"
)

// rawRecord mirrors the on-disk little-endian layout of one daily record.
type rawRecord struct {
	Date     uint32 // YYYYMMDD as an integer
	Open     uint32 // price * 100
	High     uint32 // price * 100
	Low      uint32 // price * 100
	Close    uint32 // price * 100
	Amount   float32
	Volume   uint32
	Reserved uint32
}

// PriceBar is one decoded trading day for one instrument.
type PriceBar struct {
	Date      time.Time
	StockCode string
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    uint32
	Amount    float64
}

// ErrNotFound reports that the input path does not reference an existing file.
var ErrNotFound = errors.New("input file not found")

// ReadError reports an I/O failure while reading an already opened file.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// DecodeFile parses a TDX .day file and returns its bars sorted ascending by
// date. The stock code is taken from the file's base name without extension.
//
// Records whose date field is not a valid YYYYMMDD calendar date, or whose
// payload cannot be unpacked, are skipped with a warning; they never fail the
// decode. A nil error with an empty result means the file contained no valid
// records, which is a recoverable outcome, not a failure.
func DecodeFile(path string) ([]PriceBar, error) {
	if _, err := os.Stat(path); err != nil {
		log.Printf("Input file does not exist: %s", path)
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	stockCode := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	file, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer file.Close()

	var bars []PriceBar
	buf := make([]byte, recordSize)

	for {
		_, err := io.ReadFull(file, buf)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			// A short trailing chunk is ordinary end-of-file.
			break
		}
		if err != nil {
			return nil, &ReadError{Path: path, Err: err}
		}

		var raw rawRecord
		if err := binary.Read(bytes.NewReader(buf), binary.LittleEndian, &raw); err != nil {
			log.Printf("Warning: could not unpack record, skipping: %v", err)
			continue
		}

		date, err := time.Parse(dateLayout, strconv.FormatUint(uint64(raw.Date), 10))
		if err != nil {
			log.Printf("Warning: invalid date %d, skipping record", raw.Date)
			continue
		}

		bars = append(bars, PriceBar{
			Date:      date,
			StockCode: stockCode,
			Open:      float64(raw.Open) / 100.0,
			High:      float64(raw.High) / 100.0,
			Low:       float64(raw.Low) / 100.0,
			Close:     float64(raw.Close) / 100.0,
			Volume:    raw.Volume,
			Amount:    float64(raw.Amount),
		})
	}

	if len(bars) == 0 {
		log.Printf("No valid records decoded from %s", path)
		return nil, nil
	}

	// Bars with equal dates keep their file order.
	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].Date.Before(bars[j].Date)
	})

	return bars, nil
}

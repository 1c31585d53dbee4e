package ingest

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zsh-afrangry/tdxingest/database"
	"github.com/zsh-afrangry/tdxingest/decoder"
	"github.com/zsh-afrangry/tdxingest/models"
	"gorm.io/gorm"
)

const (
	// Default values - can be overridden by environment variables
	DefaultBatchSize   = 2000
	DefaultFileWorkers = 16
)

// getEnvInt returns environment variable as int or default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getBatchSize() int {
	return getEnvInt("BATCH_SIZE", DefaultBatchSize)
}

func getFileWorkers() int {
	return getEnvInt("FILE_WORKERS", DefaultFileWorkers)
}

type Processor struct {
	db             *gorm.DB
	insertedBars   int64
	processedFiles int64
}

func NewProcessor() *Processor {
	return &Processor{
		db: database.DB,
	}
}

// ProcessDirectory decodes every .day file in the directory and loads the
// bars into the database, then recomputes the per-stock summaries.
func (p *Processor) ProcessDirectory(dataDir string) error {
	startTime := time.Now()

	files, err := filepath.Glob(filepath.Join(dataDir, "*.day"))
	if err != nil {
		return fmt.Errorf("failed to find .day files: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("no .day files found in directory: %s", dataDir)
	}

	log.Printf("Found %d .day files to process", len(files))

	fileWorkers := getFileWorkers()
	log.Printf("Using %d file workers", fileWorkers)

	// Semaphore bounds concurrent file decodes
	semaphore := make(chan struct{}, fileWorkers)
	var wg sync.WaitGroup
	errorChan := make(chan error, len(files))

	for _, file := range files {
		wg.Add(1)
		go func(filename string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			fileStart := time.Now()
			if err := p.ProcessFile(filename); err != nil {
				log.Printf("Error processing file %s: %v", filename, err)
				errorChan <- err
				return
			}

			atomic.AddInt64(&p.processedFiles, 1)
			log.Printf("Processed file: %s (took %v)", filename, time.Since(fileStart))
		}(file)
	}

	wg.Wait()
	close(errorChan)

	var errCount int
	for range errorChan {
		errCount++
	}
	if errCount > 0 {
		log.Printf("Encountered %d errors during processing, but continuing with summaries", errCount)
	}

	log.Printf("File processing completed in %v. Processed %d files, %d total bars",
		time.Since(startTime), atomic.LoadInt64(&p.processedFiles), atomic.LoadInt64(&p.insertedBars))

	log.Println("Recomputing per-stock summaries...")
	if err := p.SummarizeStocks(); err != nil {
		return fmt.Errorf("failed to summarize stocks: %w", err)
	}
	log.Println("Stock summaries completed")

	return nil
}

// ProcessFile decodes one .day file and batch-inserts its bars. A file that
// decodes to zero valid records is logged and skipped, not treated as failure.
func (p *Processor) ProcessFile(filename string) error {
	bars, err := decoder.DecodeFile(filename)
	if err != nil {
		return err
	}

	if len(bars) == 0 {
		log.Printf("Skipping %s: no valid records", filename)
		return nil
	}

	rows := toRows(bars)
	atomic.AddInt64(&p.insertedBars, int64(len(rows)))

	batchSize := getBatchSize()
	return p.db.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(rows, batchSize).Error
	})
}

// toRows converts decoded bars into their persisted form
func toRows(bars []decoder.PriceBar) []models.PriceBar {
	now := time.Now()
	rows := make([]models.PriceBar, 0, len(bars))
	for _, bar := range bars {
		rows = append(rows, models.PriceBar{
			Date:      bar.Date,
			StockCode: bar.StockCode,
			Open:      bar.Open,
			High:      bar.High,
			Low:       bar.Low,
			Close:     bar.Close,
			Volume:    uint64(bar.Volume),
			Amount:    bar.Amount,
			CreatedAt: now,
		})
	}
	return rows
}

// SummarizeStocks rebuilds the stock_summaries table from the ingested bars.
func (p *Processor) SummarizeStocks() error {
	if err := p.db.Exec("DELETE FROM stock_summaries").Error; err != nil {
		return fmt.Errorf("failed to clear stock summaries: %w", err)
	}

	query := `
		INSERT INTO stock_summaries (stock_code, first_date, last_date, max_high, total_volume, created_at)
		SELECT
			stock_code,
			MIN(date) as first_date,
			MAX(date) as last_date,
			MAX(high) as max_high,
			SUM(volume) as total_volume,
			NOW() as created_at
		FROM price_bars
		GROUP BY stock_code
		ORDER BY stock_code
	`

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	return p.db.WithContext(ctx).Exec(query).Error
}

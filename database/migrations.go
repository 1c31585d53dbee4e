package database

import (
	"fmt"

	"gorm.io/gorm"
)

// OptimizeIndexes creates the indexes backing the stats queries
func OptimizeIndexes(db *gorm.DB) error {
	// Composite index: stock code first, then date, matching the
	// stock_code = ? AND date >= ? filter of the stats endpoint
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bars_stock_date
		ON price_bars (stock_code, date DESC)
	`).Error; err != nil {
		return fmt.Errorf("failed to create bars stock/date index: %w", err)
	}

	// Index for close prices (used in MAX queries)
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bars_stock_close
		ON price_bars (stock_code, close DESC)
		WHERE close IS NOT NULL
	`).Error; err != nil {
		return fmt.Errorf("failed to create bars close index: %w", err)
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_summaries_stock
		ON stock_summaries (stock_code)
	`).Error; err != nil {
		return fmt.Errorf("failed to create summaries index: %w", err)
	}

	fmt.Println("Database indexes optimized successfully")
	return nil
}

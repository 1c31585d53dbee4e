package models

import (
	"time"
)

// PriceBar is one ingested trading day for one stock
type PriceBar struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      time.Time `gorm:"index:idx_date_stock" json:"date"`
	StockCode string    `gorm:"index:idx_date_stock;size:20" json:"stock_code"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    uint64    `json:"volume"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// StockSummary stores per-stock aggregates computed after ingestion
type StockSummary struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	StockCode   string    `gorm:"uniqueIndex:uidx_summary_stock;size:20" json:"stock_code"`
	FirstDate   time.Time `json:"first_date"`
	LastDate    time.Time `json:"last_date"`
	MaxHigh     float64   `json:"max_high"`
	TotalVolume uint64    `json:"total_volume"`
	CreatedAt   time.Time `json:"created_at"`
}

// StockStats represents the aggregated statistics returned by the API
type StockStats struct {
	StockCode   string  `json:"stock_code"`
	MaxClose    float64 `json:"max_close"`
	TotalVolume uint64  `json:"total_volume"`
}

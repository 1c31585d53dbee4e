package models

import (
	"testing"
	"time"
)

func TestPriceBarModel(t *testing.T) {
	bar := PriceBar{
		Date:      time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		StockCode: "sh000001",
		Open:      3500.00,
		High:      3550.00,
		Low:       3480.00,
		Close:     3520.00,
		Volume:    98765,
		Amount:    123456.0,
	}

	if bar.StockCode != "sh000001" {
		t.Errorf("Expected stock code sh000001, got %s", bar.StockCode)
	}

	if bar.Close != 3520.00 {
		t.Errorf("Expected close 3520.00, got %f", bar.Close)
	}
}

func TestStockSummaryModel(t *testing.T) {
	summary := StockSummary{
		StockCode:   "sz000858",
		FirstDate:   time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC),
		LastDate:    time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		MaxHigh:     188.88,
		TotalVolume: 150000,
	}

	if summary.TotalVolume != 150000 {
		t.Errorf("Expected volume 150000, got %d", summary.TotalVolume)
	}

	if summary.LastDate.Before(summary.FirstDate) {
		t.Error("Expected last date to follow first date")
	}
}

func TestStockStats(t *testing.T) {
	stats := StockStats{
		StockCode:   "sh000001",
		MaxClose:    3520.00,
		TotalVolume: 250000,
	}

	if stats.StockCode != "sh000001" {
		t.Errorf("Expected stock code sh000001, got %s", stats.StockCode)
	}
}

package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zsh-afrangry/tdxingest/database"
	"github.com/zsh-afrangry/tdxingest/models"
)

type QueryParams struct {
	StockCode string `form:"stock_code" binding:"required"`
	StartDate string `form:"start_date"`
}

func GetBarStats(c *gin.Context) {
	var params QueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var startDate time.Time
	var err error

	if params.StartDate != "" {
		startDate, err = time.Parse("2006-01-02", params.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
			return
		}
	} else {
		// Default to the last 30 calendar days
		startDate = time.Now().AddDate(0, 0, -30)
	}

	stats, err := calculateStats(params.StockCode, startDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func calculateStats(stockCode string, startDate time.Time) (*models.StockStats, error) {
	db := database.DB

	type statsResult struct {
		MaxClose    float64
		TotalVolume uint64
	}

	var result statsResult

	// Combined query with subqueries so a single round trip serves both stats
	err := db.Raw(`
		SELECT
			COALESCE((SELECT MAX(close) FROM price_bars
				WHERE stock_code = ? AND date >= ?), 0) as max_close,
			COALESCE((SELECT SUM(volume) FROM price_bars
				WHERE stock_code = ? AND date >= ?), 0) as total_volume
	`, stockCode, startDate, stockCode, startDate).Scan(&result).Error

	if err != nil {
		return nil, err
	}

	return &models.StockStats{
		StockCode:   stockCode,
		MaxClose:    result.MaxClose,
		TotalVolume: result.TotalVolume,
	}, nil
}

func SetupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/api/bars/stats", GetBarStats)

	return r
}

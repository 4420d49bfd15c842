package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"kasozi/momo-etl/internal/logging"
	"kasozi/momo-etl/internal/store"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "MoMo SMS Analytics API",
		"version":   "1.0.0",
		"timestamp": s.now().Format(time.RFC3339),
	})
}

func (s *Server) health(c *gin.Context) {
	if err := s.store.Ping(); err != nil {
		s.logger.WithError(err).Error("Health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}

	count, err := s.store.Count()
	if err != nil {
		s.logger.WithError(err).Error("Health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":             "healthy",
		"database":           "connected",
		"total_transactions": count,
		"timestamp":          s.now().Format(time.RFC3339),
	})
}

func (s *Server) listTransactions(c *gin.Context) {
	skip, err := parseBoundedInt(c.Query("skip"), 0, 0, 1<<31-1)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skip parameter"})
		return
	}
	limit, err := parseBoundedInt(c.Query("limit"), defaultLimit, 1, maxLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit parameter"})
		return
	}

	filter := store.Filter{
		Category:      strings.ToUpper(c.Query("category")),
		Type:          strings.ToUpper(c.Query("type")),
		SenderNetwork: strings.ToUpper(c.Query("network")),
		Limit:         limit,
		Offset:        skip,
	}

	txs, err := s.store.List(filter)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list transactions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, txs)
}

func (s *Server) getTransaction(c *gin.Context) {
	id := c.Param("id")

	tx, err := s.store.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
		return
	}
	if err != nil {
		s.logger.WithError(err).Error("Failed to get transaction",
			logging.Field{Key: "transaction_id", Value: id})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, tx)
}

func (s *Server) analytics(c *gin.Context) {
	summary, err := s.store.Analytics()
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate analytics")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if summary.TotalTransactions == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no analytics data available"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) categories(c *gin.Context) {
	categories, err := s.store.Categories()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
		"timestamp":  s.now().Format(time.RFC3339),
	})
}

func (s *Server) networks(c *gin.Context) {
	networks, err := s.store.Networks()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list networks")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"networks":  networks,
		"count":     len(networks),
		"timestamp": s.now().Format(time.RFC3339),
	})
}

func (s *Server) stats(c *gin.Context) {
	stats, err := s.store.Stats()
	if err != nil {
		s.logger.WithError(err).Error("Failed to compute stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func parseBoundedInt(raw string, def, min, max int) (int, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v, nil
}

package store

import (
	"fmt"

	"github.com/shopspring/decimal"

	"kasozi/momo-etl/internal/models"
)

// Analytics computes the aggregate summary live from the full table. An
// empty store yields a zero-valued summary, not an error; query failures
// surface on the explicit error channel so callers can tell "no data" from
// "broken store".
func (s *Store) Analytics() (*models.Summary, error) {
	summary := &models.Summary{
		TotalAmount: decimal.Zero,
		GeneratedAt: s.now(),
	}

	var totals struct {
		Count  int64
		Amount decimal.NullDecimal
	}
	if err := s.db.Model(&models.Transaction{}).
		Select("COUNT(*) AS count, SUM(amount) AS amount").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to compute totals: %w", err)
	}
	summary.TotalTransactions = totals.Count
	if totals.Amount.Valid {
		summary.TotalAmount = totals.Amount.Decimal
	}

	if err := s.db.Model(&models.Transaction{}).
		Select("category, COUNT(*) AS count, SUM(amount) AS amount").
		Group("category").
		Order("count DESC").
		Scan(&summary.ByCategory).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate by category: %w", err)
	}

	if err := s.db.Model(&models.Transaction{}).
		Select("transaction_type AS type, COUNT(*) AS count, SUM(amount) AS amount").
		Group("transaction_type").
		Order("count DESC").
		Scan(&summary.ByType).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate by type: %w", err)
	}

	if err := s.db.Model(&models.Transaction{}).
		Select("sender_network AS network, COUNT(*) AS count, SUM(amount) AS amount").
		Where("sender_network != ''").
		Group("sender_network").
		Order("count DESC").
		Scan(&summary.ByNetwork).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate by network: %w", err)
	}

	if err := s.db.Model(&models.Transaction{}).
		Select("strftime('%Y-%m', transaction_date) AS month, COUNT(*) AS count, SUM(amount) AS amount").
		Group("month").
		Order("month DESC").
		Limit(12).
		Scan(&summary.MonthlyTrends).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly trends: %w", err)
	}

	return summary, nil
}

// Categories returns the distinct categories present in the store.
func (s *Store) Categories() ([]string, error) {
	var categories []string
	if err := s.db.Model(&models.Transaction{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Networks returns the distinct non-empty sender networks in the store.
func (s *Store) Networks() ([]string, error) {
	var networks []string
	if err := s.db.Model(&models.Transaction{}).
		Distinct("sender_network").
		Where("sender_network != ''").
		Order("sender_network").
		Pluck("sender_network", &networks).Error; err != nil {
		return nil, fmt.Errorf("failed to list networks: %w", err)
	}
	return networks, nil
}

// Stats derives the basic dataset statistics served by the query API.
func (s *Store) Stats() (*models.Stats, error) {
	summary, err := s.Analytics()
	if err != nil {
		return nil, err
	}

	stats := &models.Stats{
		TotalTransactions: summary.TotalTransactions,
		TotalAmount:       summary.TotalAmount,
		AverageAmount:     decimal.Zero,
		CategoriesCount:   len(summary.ByCategory),
		NetworksCount:     len(summary.ByNetwork),
		MonthsCovered:     len(summary.MonthlyTrends),
	}
	if summary.TotalTransactions > 0 {
		stats.AverageAmount = summary.TotalAmount.
			Div(decimal.NewFromInt(summary.TotalTransactions)).
			Round(2)
	}
	return stats, nil
}

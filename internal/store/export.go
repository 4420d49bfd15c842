package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"kasozi/momo-etl/internal/logging"
	"kasozi/momo-etl/internal/models"
)

// ExportDashboard writes the aggregate summary plus metadata as the flat
// JSON document consumed by the dashboard frontend.
func (s *Store) ExportDashboard(path string) error {
	summary, err := s.Analytics()
	if err != nil {
		return fmt.Errorf("failed to generate analytics for export: %w", err)
	}

	doc := models.Dashboard{
		Metadata: models.DashboardMetadata{
			GeneratedAt:       s.now(),
			TotalTransactions: summary.TotalTransactions,
		},
		Analytics: *summary,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write dashboard document: %w", err)
	}

	s.logger.Info("Exported dashboard data",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "total_transactions", Value: summary.TotalTransactions})
	return nil
}

// ExportCSV dumps all stored transactions to a CSV file, newest first.
func (s *Store) ExportCSV(path string) error {
	txs, err := s.List(Filter{})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close CSV file")
		}
	}()

	if err := gocsv.MarshalFile(&txs, file); err != nil {
		return fmt.Errorf("failed to write CSV file: %w", err)
	}

	s.logger.Info("Exported transactions to CSV",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "count", Value: len(txs)})
	return nil
}

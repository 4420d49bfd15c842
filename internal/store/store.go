// Package store provides the durable transaction store: idempotent upsert
// keyed by transaction_id, filtered retrieval and on-demand aggregate
// analytics over a sqlite database.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"kasozi/momo-etl/internal/etlerror"
	"kasozi/momo-etl/internal/logging"
	"kasozi/momo-etl/internal/models"
)

// ErrNotFound is returned when no transaction carries the requested id.
var ErrNotFound = errors.New("transaction not found")

// Store is an explicitly constructed persistence handle with an open/close
// lifecycle. Tests inject an isolated in-memory instance via Open(":memory:").
type Store struct {
	db     *gorm.DB
	logger logging.Logger
	now    func() time.Time
}

// Open opens (creating if necessary) the sqlite database at path and
// migrates the transactions table.
func Open(path string, logger logging.Logger) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	s := &Store{logger: logger, now: time.Now}

	// GORM stamps created_at/updated_at itself; routing its clock through
	// s.now keeps those stamps under the same injected clock as the rest
	// of the store.
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:  gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time { return s.now() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	if err := db.AutoMigrate(&models.Transaction{}); err != nil {
		return nil, fmt.Errorf("failed to migrate transactions table: %w", err)
	}

	s.db = db
	return s, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping verifies the database is reachable.
func (s *Store) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Upsert inserts the transaction or, when a row with the same
// transaction_id exists, updates all mutable fields and bumps updated_at.
// This lookup-then-write path is the sole idempotence mechanism.
func (s *Store) Upsert(tx *models.Transaction) error {
	now := s.now()

	var existing models.Transaction
	err := s.db.Where("transaction_id = ?", tx.TransactionID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		tx.CreatedAt = now
		tx.UpdatedAt = now
		if err := s.db.Create(tx).Error; err != nil {
			return &etlerror.StoreError{TransactionID: tx.TransactionID, Op: "insert", Err: err}
		}
		return nil
	case err != nil:
		return &etlerror.StoreError{TransactionID: tx.TransactionID, Op: "lookup", Err: err}
	}

	tx.ID = existing.ID
	tx.CreatedAt = existing.CreatedAt
	tx.UpdatedAt = now
	if err := s.db.Model(&models.Transaction{}).
		Where("id = ?", existing.ID).
		Select("*").Omit("id", "created_at").
		Updates(tx).Error; err != nil {
		return &etlerror.StoreError{TransactionID: tx.TransactionID, Op: "update", Err: err}
	}
	return nil
}

// UpsertAll upserts a batch. A failed individual upsert is logged and
// counted but does not abort the batch or roll back earlier rows.
func (s *Store) UpsertAll(txs []models.Transaction) (loaded, failed int) {
	for i := range txs {
		if err := s.Upsert(&txs[i]); err != nil {
			s.logger.WithError(err).Error("Failed to upsert transaction",
				logging.Field{Key: "transaction_id", Value: txs[i].TransactionID})
			failed++
			continue
		}
		loaded++
	}

	s.logger.Info("Upserted transactions",
		logging.Field{Key: "loaded", Value: loaded},
		logging.Field{Key: "failed", Value: failed})
	return loaded, failed
}

// Filter narrows List results. Zero values mean no constraint.
type Filter struct {
	TransactionID string
	Category      string
	Type          string
	SenderNetwork string
	Limit         int
	Offset        int
}

// List retrieves transactions matching the filter, newest first.
func (s *Store) List(f Filter) ([]models.Transaction, error) {
	query := s.db.Model(&models.Transaction{})

	if f.TransactionID != "" {
		query = query.Where("transaction_id = ?", f.TransactionID)
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Type != "" {
		query = query.Where("transaction_type = ?", f.Type)
	}
	if f.SenderNetwork != "" {
		query = query.Where("sender_network = ?", f.SenderNetwork)
	}

	query = query.Order("transaction_date DESC")
	if f.Offset > 0 {
		query = query.Offset(f.Offset)
	}
	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}

	var txs []models.Transaction
	if err := query.Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

// Get fetches one transaction by its business identifier.
func (s *Store) Get(transactionID string) (*models.Transaction, error) {
	var tx models.Transaction
	err := s.db.Where("transaction_id = ?", transactionID).First(&tx).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return &tx, nil
}

// Count returns the number of persisted transactions.
func (s *Store) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Transaction{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

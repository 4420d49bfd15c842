// Package models defines the data structures shared across the ETL pipeline:
// the raw extracted record, the canonical transaction entity, and the
// aggregate analytics shapes exported for the dashboard.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawRecord is the loosely-typed output of the extraction stage. It exists
// only between the extractor and the normalizer and is never persisted.
type RawRecord struct {
	Sender     string
	ReceivedAt time.Time
	Body       string
	ParsedAt   time.Time

	// DateDefaulted records that ReceivedAt fell back to the extraction
	// time because the source timestamp was absent or unparsable.
	DateDefaulted bool
}

// Transaction is the canonical entity, uniquely identified by TransactionID.
// It is born at normalizer output, annotated by the categorizer and becomes
// durable at store upsert.
type Transaction struct {
	ID              uint                `gorm:"primaryKey;autoIncrement" json:"id" csv:"-"`
	TransactionID   string              `gorm:"column:transaction_id;uniqueIndex;not null" json:"transaction_id" csv:"transaction_id"`
	Amount          decimal.Decimal     `gorm:"type:decimal(20,2);not null" json:"amount" csv:"amount"`
	Currency        string              `gorm:"default:UGX" json:"currency" csv:"currency"`
	TransactionDate time.Time           `gorm:"column:transaction_date;not null;index" json:"transaction_date" csv:"transaction_date"`
	TransactionType string              `gorm:"column:transaction_type;not null" json:"transaction_type" csv:"transaction_type"`
	Category        string              `gorm:"not null" json:"category" csv:"category"`
	SenderPhone     string              `json:"sender_phone" csv:"sender_phone"`
	ReceiverPhone   string              `json:"receiver_phone" csv:"receiver_phone"`
	SenderNetwork   string              `json:"sender_network" csv:"sender_network"`
	ReceiverNetwork string              `json:"receiver_network" csv:"receiver_network"`
	Description     string              `json:"description" csv:"description"`
	BalanceBefore   decimal.NullDecimal `gorm:"type:decimal(20,2)" json:"balance_before" csv:"-"`
	BalanceAfter    decimal.NullDecimal `gorm:"type:decimal(20,2)" json:"balance_after" csv:"-"`
	Fees            decimal.Decimal     `gorm:"type:decimal(20,2);default:0" json:"fees" csv:"fees"`
	Status          string              `gorm:"default:SUCCESS" json:"status" csv:"status"`
	CreatedAt       time.Time           `json:"created_at" csv:"-"`
	UpdatedAt       time.Time           `json:"updated_at" csv:"-"`

	// Annotations produced by the categorizer. They travel with the record
	// through the pipeline but are not part of the persisted schema.
	AmountBucket string `gorm:"-" json:"amount_bucket,omitempty" csv:"-"`
	TimeBucket   string `gorm:"-" json:"time_bucket,omitempty" csv:"-"`

	// RawBody keeps the original SMS text for body-based categorization.
	RawBody string `gorm:"-" json:"-" csv:"-"`
}

// TableName overrides the GORM default pluralization.
func (Transaction) TableName() string {
	return "transactions"
}

// HasBalances reports whether both balance readings were extracted, which
// enables type inference from the balance delta.
func (t Transaction) HasBalances() bool {
	return t.BalanceBefore.Valid && t.BalanceAfter.Valid
}

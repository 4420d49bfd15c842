package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryStat is a per-category count and amount aggregate.
type CategoryStat struct {
	Category string          `json:"category"`
	Count    int64           `json:"count"`
	Amount   decimal.Decimal `json:"amount"`
}

// TypeStat is a per-transaction-type count and amount aggregate.
type TypeStat struct {
	Type   string          `json:"type"`
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// NetworkStat is a per-sender-network count and amount aggregate.
type NetworkStat struct {
	Network string          `json:"network"`
	Count   int64           `json:"count"`
	Amount  decimal.Decimal `json:"amount"`
}

// MonthlyStat is a per-calendar-month count and amount aggregate.
// Month uses the YYYY-MM form.
type MonthlyStat struct {
	Month  string          `json:"month"`
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// Summary holds all on-demand aggregates derived live from the store.
type Summary struct {
	TotalTransactions int64           `json:"total_transactions"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	ByCategory        []CategoryStat  `json:"by_category"`
	ByType            []TypeStat      `json:"by_type"`
	ByNetwork         []NetworkStat   `json:"by_network"`
	MonthlyTrends     []MonthlyStat   `json:"monthly_trends"`
	GeneratedAt       time.Time       `json:"generated_at"`
}

// DashboardMetadata describes when and over how many rows a dashboard
// document was generated.
type DashboardMetadata struct {
	GeneratedAt       time.Time `json:"generated_at"`
	TotalTransactions int64     `json:"total_transactions"`
}

// Dashboard is the flat export document consumed by the frontend.
type Dashboard struct {
	Metadata  DashboardMetadata `json:"metadata"`
	Analytics Summary           `json:"analytics"`
}

// Stats carries the basic dataset statistics served by the query API.
type Stats struct {
	TotalTransactions int64           `json:"total_transactions"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	AverageAmount     decimal.Decimal `json:"average_amount"`
	CategoriesCount   int             `json:"categories_count"`
	NetworksCount     int             `json:"networks_count"`
	MonthsCovered     int             `json:"months_covered"`
}

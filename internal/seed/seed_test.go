package seed

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kasozi/momo-etl/internal/models"
)

func TestGenerate(t *testing.T) {
	base := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	txs := Generate(25, base, rand.New(rand.NewSource(42)))

	require.Len(t, txs, 25)

	seenIDs := make(map[string]bool)
	for _, tx := range txs {
		assert.NotEmpty(t, tx.TransactionID)
		assert.False(t, seenIDs[tx.TransactionID], "ids must be unique")
		seenIDs[tx.TransactionID] = true

		assert.True(t, tx.Amount.IsPositive())
		assert.Equal(t, models.DefaultCurrency, tx.Currency)
		assert.Equal(t, models.StatusSuccess, tx.Status)
		assert.Contains(t, []string{models.TypeDebit, models.TypeCredit}, tx.TransactionType)
		assert.True(t, tx.TransactionDate.Before(base.Add(24*time.Hour)))
		assert.True(t, tx.TransactionDate.After(base.AddDate(0, 0, -91)))

		if tx.Category == models.CategoryDeposit {
			assert.Equal(t, models.TypeCredit, tx.TransactionType)
			assert.True(t, tx.Fees.IsZero())
		}

		bounds := amountRanges[tx.Category]
		assert.True(t, tx.Amount.GreaterThanOrEqual(decimal.NewFromInt(bounds[0])))
		assert.True(t, tx.Amount.LessThanOrEqual(decimal.NewFromInt(bounds[1])))
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	base := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	a := Generate(5, base, rand.New(rand.NewSource(7)))
	b := Generate(5, base, rand.New(rand.NewSource(7)))

	for i := range a {
		assert.Equal(t, a[i].TransactionID, b[i].TransactionID)
		assert.True(t, a[i].Amount.Equal(b[i].Amount))
		assert.Equal(t, a[i].Category, b[i].Category)
	}
}

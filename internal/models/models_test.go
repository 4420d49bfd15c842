package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_TableName(t *testing.T) {
	assert.Equal(t, "transactions", Transaction{}.TableName())
}

func TestTransaction_HasBalances(t *testing.T) {
	tx := Transaction{}
	assert.False(t, tx.HasBalances())

	tx.BalanceBefore = decimal.NewNullDecimal(decimal.NewFromInt(1000))
	assert.False(t, tx.HasBalances(), "both readings are required")

	tx.BalanceAfter = decimal.NewNullDecimal(decimal.NewFromInt(2000))
	assert.True(t, tx.HasBalances())
}

func TestTransaction_JSONShape(t *testing.T) {
	tx := Transaction{
		TransactionID: "tx_0001",
		Amount:        decimal.NewFromInt(5000),
		Currency:      DefaultCurrency,
		Category:      CategoryTransfer,
		RawBody:       "should never leave the process",
	}

	data, err := json.Marshal(tx)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, "tx_0001", out["transaction_id"])
	assert.Equal(t, "UGX", out["currency"])
	assert.NotContains(t, string(data), "should never leave the process")
}

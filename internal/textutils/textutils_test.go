package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain text", "You have received money", "You have received money"},
		{"collapses whitespace", "You   have\treceived\n\nmoney", "You have received money"},
		{"trims", "  hello  ", "hello"},
		{"strips special characters", "Amount: UGX 5,000!!! @shop", "Amount UGX 5,000 shop"},
		{"keeps allowed punctuation", "fee (UGX 500), ref A-1.2", "fee (UGX 500), ref A-1.2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CleanText(tc.input))
		})
	}
}

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"UGX prefix", "You have sent UGX 5,000 to John", "5,000"},
		{"USh prefix", "Payment of USh 12000 completed", "12000"},
		{"decimal amount", "Received UGX 1,500.50 from Mary", "1,500.50"},
		{"case insensitive", "sent ugx 300 to agent", "300"},
		{"no amount", "Your PIN was changed", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractAmount(tc.body))
		})
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"international", "sent to +256771234567 today", "+256771234567"},
		{"country code without plus", "sent to 256771234567", "256771234567"},
		{"local format", "sent to 0771234567 today", "0771234567"},
		{"no phone", "sent to John", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractPhone(tc.body))
		})
	}
}

func TestExtractBalance(t *testing.T) {
	assert.Equal(t, "45,000", ExtractBalance("Your new balance: UGX 45,000"))
	assert.Equal(t, "45000", ExtractBalance("balance is not here but Balance: 45000 is"))
	assert.Equal(t, "", ExtractBalance("no balance mentioned"))
}

func TestExtractFee(t *testing.T) {
	assert.Equal(t, "500", ExtractFee("Fee: UGX 500. New balance UGX 1000"))
	assert.Equal(t, "", ExtractFee("free of charge"))
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"ISO date", "completed on 2024-05-14", "2024-05-14"},
		{"ISO timestamp", "completed on 2024-05-14 18:30:00", "2024-05-14 18:30:00"},
		{"T separator", "at 2024-05-14T18:30:00 from agent", "2024-05-14T18:30:00"},
		{"slashed date", "completed on 14/05/2024", "14/05/2024"},
		{"no date", "You have sent UGX 5,000", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractDate(tc.body))
		})
	}
}

func TestExtractTransactionRef(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"txid label", "TxId: ABC123XYZ completed", "ABC123XYZ"},
		{"transaction id label", "Transaction ID: 99887766", "99887766"},
		{"ref label", "Ref# MP240515AB12", "MP240515AB12"},
		{"too short", "Ref: AB12", ""},
		{"missing", "no reference here", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractTransactionRef(tc.body))
		})
	}
}

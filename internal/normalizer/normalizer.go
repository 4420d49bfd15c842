// Package normalizer turns raw extracted records into canonical
// transactions: phone numbers in international format, decimal amounts,
// parsed dates, cleaned text, derived network tags and a stable
// content-hash identifier when the source supplies none.
package normalizer

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"kasozi/momo-etl/internal/dateutils"
	"kasozi/momo-etl/internal/logging"
	"kasozi/momo-etl/internal/models"
	"kasozi/momo-etl/internal/rules"
	"kasozi/momo-etl/internal/textutils"
)

var nonDigitRe = regexp.MustCompile(`\D`)

// amountJunkRe strips currency symbols, separators and whitespace before
// numeric parsing.
var amountJunkRe = regexp.MustCompile(`(?i)[UGXSh,$\s]`)

// Normalizer cleans and canonicalizes raw records against a fixed ruleset.
type Normalizer struct {
	rules  *rules.Ruleset
	logger logging.Logger
}

// New creates a Normalizer using the given rule tables.
func New(rs *rules.Ruleset, logger logging.Logger) *Normalizer {
	return &Normalizer{rules: rs, logger: logger}
}

// CleanAll normalizes and validates a batch. Records failing cleaning or
// validation are dropped and counted; one bad record never aborts the
// batch.
func (n *Normalizer) CleanAll(records []models.RawRecord) ([]models.Transaction, int) {
	cleaned := make([]models.Transaction, 0, len(records))
	dropped := 0

	for _, record := range records {
		tx, err := n.Clean(record)
		if err != nil {
			n.logger.WithError(err).Warn("Failed to clean record")
			dropped++
			continue
		}
		if err := n.Validate(tx); err != nil {
			n.logger.WithError(err).Warn("Dropping invalid record",
				logging.Field{Key: "transaction_id", Value: tx.TransactionID})
			dropped++
			continue
		}
		cleaned = append(cleaned, tx)
	}

	n.logger.Info("Cleaned records",
		logging.Field{Key: "cleaned", Value: len(cleaned)},
		logging.Field{Key: "dropped", Value: dropped})
	return cleaned, dropped
}

// Clean normalizes a single raw record into a Transaction. Fields the SMS
// body does not carry stay at their zero values and are caught by Validate.
func (n *Normalizer) Clean(record models.RawRecord) (models.Transaction, error) {
	tx := models.Transaction{
		Currency:    models.DefaultCurrency,
		Status:      models.StatusSuccess,
		Description: textutils.CleanText(record.Body),
		RawBody:     record.Body,
	}

	// A date quoted in the body is the provider's record of when the
	// transaction happened; the SMS receipt time is the fallback.
	tx.TransactionDate = n.NormalizeDate(textutils.ExtractDate(record.Body), record.ReceivedAt)

	tx.SenderPhone = n.NormalizePhone(record.Sender)
	tx.SenderNetwork = n.IdentifyNetwork(tx.SenderPhone)

	tx.ReceiverPhone = n.NormalizePhone(textutils.ExtractPhone(record.Body))
	tx.ReceiverNetwork = n.IdentifyNetwork(tx.ReceiverPhone)

	tx.Amount = n.NormalizeAmount(textutils.ExtractAmount(record.Body))

	if balance := textutils.ExtractBalance(record.Body); balance != "" {
		tx.BalanceAfter = decimal.NewNullDecimal(n.NormalizeAmount(balance))
	}
	if fee := textutils.ExtractFee(record.Body); fee != "" {
		tx.Fees = n.NormalizeAmount(fee)
	}

	if ref := textutils.ExtractTransactionRef(record.Body); ref != "" {
		tx.TransactionID = ref
	} else {
		tx.TransactionID = n.GenerateID(tx)
	}

	return tx, nil
}

// NormalizePhone canonicalizes a phone number to international format.
// Ambiguous inputs pass through unchanged; empty or non-numeric input
// yields "".
func (n *Normalizer) NormalizePhone(phone string) string {
	if phone == "" {
		return ""
	}

	digits := nonDigitRe.ReplaceAllString(phone, "")
	cc := n.rules.CountryCode

	switch {
	case digits == "":
		return ""
	case strings.HasPrefix(digits, cc):
		return "+" + digits
	case strings.HasPrefix(digits, "0") && len(digits) == 10:
		return "+" + cc + digits[1:]
	case len(digits) == 9:
		return "+" + cc + digits
	default:
		return digits
	}
}

// IdentifyNetwork derives the provider tag from a normalized phone number
// using the ordered pattern table; no match yields UNKNOWN, never an error.
func (n *Normalizer) IdentifyNetwork(phone string) string {
	if phone == "" {
		return models.NetworkUnknown
	}
	for i := range n.rules.Networks {
		if n.rules.Networks[i].Matches(phone) {
			return n.rules.Networks[i].Network
		}
	}
	return models.NetworkUnknown
}

// NormalizeAmount parses an amount string, stripping currency symbols,
// separators and whitespace first. Unparsable or empty input yields zero.
func (n *Normalizer) NormalizeAmount(amount string) decimal.Decimal {
	if amount == "" {
		return decimal.Zero
	}

	stripped := amountJunkRe.ReplaceAllString(amount, "")
	if stripped == "" {
		return decimal.Zero
	}

	value, err := decimal.NewFromString(stripped)
	if err != nil {
		n.logger.Warn("Could not parse amount", logging.Field{Key: "amount", Value: amount})
		return decimal.Zero
	}
	return value
}

// NormalizeDate parses a date string with the best-effort general parser.
// Empty or unparsable input yields fallback; the pipeline never blocks on
// a bad date.
func (n *Normalizer) NormalizeDate(date string, fallback time.Time) time.Time {
	if date == "" {
		return fallback
	}
	parsed, _, err := dateutils.ParseDate(date)
	if err != nil {
		n.logger.Warn("Could not parse date", logging.Field{Key: "date", Value: date})
		return fallback
	}
	return parsed
}

// GenerateID derives a stable identifier from the transaction content.
// Identical inputs always yield the same id, which makes reprocessing the
// same export idempotent at the store.
func (n *Normalizer) GenerateID(tx models.Transaction) string {
	key := strings.Join([]string{
		tx.TransactionDate.UTC().Format(time.RFC3339),
		tx.Amount.String(),
		tx.SenderPhone,
		tx.ReceiverPhone,
		tx.Description,
	}, "|")

	sum := md5.Sum([]byte(key))
	return hex.EncodeToString(sum[:])[:12]
}

// Validate checks the persistability contract: non-empty identifier,
// non-zero date and strictly positive amount.
func (n *Normalizer) Validate(tx models.Transaction) error {
	if tx.TransactionID == "" {
		return fmt.Errorf("missing transaction_id")
	}
	if tx.TransactionDate.IsZero() {
		return fmt.Errorf("missing transaction_date")
	}
	if !tx.Amount.IsPositive() {
		return fmt.Errorf("invalid amount: %s", tx.Amount)
	}
	return nil
}

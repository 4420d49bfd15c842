// Package categorizer assigns a category, a debit/credit type, an amount
// bucket and a time-of-day bucket to every transaction. Classification is a
// pure function of the transaction and the static rule tables; it always
// produces a result and never fails.
package categorizer

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"kasozi/momo-etl/internal/models"
	"kasozi/momo-etl/internal/rules"
)

// Categorizer classifies transactions against an immutable ruleset.
type Categorizer struct {
	rules *rules.Ruleset
}

// New creates a Categorizer using the given rule tables.
func New(rs *rules.Ruleset) *Categorizer {
	return &Categorizer{rules: rs}
}

// CategorizeAll annotates every transaction in the batch.
func (c *Categorizer) CategorizeAll(txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(txs))
	for i, tx := range txs {
		out[i] = c.Categorize(tx)
	}
	return out
}

// Categorize annotates a single transaction with category, type and
// buckets.
func (c *Categorizer) Categorize(tx models.Transaction) models.Transaction {
	category := c.categoryFromDescription(tx.Description)
	if category == "" {
		category = c.categoryFromBody(tx.RawBody)
	}
	if category == "" {
		category = models.CategoryOther
	}
	tx.Category = category

	tx.TransactionType = c.inferType(tx, category)
	tx.AmountBucket = c.amountBucket(tx.Amount)
	tx.TimeBucket = c.timeBucket(tx.TransactionDate)
	return tx
}

// categoryFromDescription matches the description against the ordered
// keyword table; the first matching category wins.
func (c *Categorizer) categoryFromDescription(description string) string {
	if description == "" {
		return ""
	}
	lower := strings.ToLower(description)
	for _, rule := range c.rules.Categories {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				return rule.Name
			}
		}
	}
	return ""
}

// categoryFromBody matches the raw SMS body against the ordered phrase
// heuristics, an independent second chance when the keyword table missed.
func (c *Categorizer) categoryFromBody(body string) string {
	if body == "" {
		return ""
	}
	lower := strings.ToLower(body)
	for _, rule := range c.rules.BodyPhrases {
		for _, phrase := range rule.Phrases {
			if strings.Contains(lower, phrase) {
				return rule.Category
			}
		}
	}
	return ""
}

// inferType decides DEBIT/CREDIT from (in order) the category, the balance
// delta, and the body phrase polarity.
func (c *Categorizer) inferType(tx models.Transaction, category string) string {
	switch category {
	case models.CategoryTransfer, models.CategoryWithdrawal, models.CategoryPayment,
		models.CategoryAirtime, models.CategoryBill:
		return models.TypeDebit
	case models.CategoryDeposit:
		return models.TypeCredit
	}

	if tx.HasBalances() {
		before := tx.BalanceBefore.Decimal
		after := tx.BalanceAfter.Decimal
		if after.GreaterThan(before) {
			return models.TypeCredit
		}
		if after.LessThan(before) {
			return models.TypeDebit
		}
	}

	body := strings.ToLower(tx.RawBody)
	for _, phrase := range c.rules.DebitPhrases {
		if strings.Contains(body, phrase) {
			return models.TypeDebit
		}
	}
	for _, phrase := range c.rules.CreditPhrases {
		if strings.Contains(body, phrase) {
			return models.TypeCredit
		}
	}

	return models.TypeUnknown
}

// amountBucket applies the fixed ascending thresholds; a boundary amount
// falls into the lower bucket.
func (c *Categorizer) amountBucket(amount decimal.Decimal) string {
	t := c.rules.Thresholds
	switch {
	case amount.LessThanOrEqual(t.Small):
		return models.AmountBucketSmall
	case amount.LessThanOrEqual(t.Medium):
		return models.AmountBucketMedium
	case amount.LessThanOrEqual(t.Large):
		return models.AmountBucketLarge
	default:
		return models.AmountBucketVeryLarge
	}
}

// timeBucket maps the transaction hour onto the day-part ranges. A zero
// timestamp yields UNKNOWN.
func (c *Categorizer) timeBucket(date time.Time) string {
	if date.IsZero() {
		return models.TimeBucketUnknown
	}
	hour := date.Hour()
	switch {
	case hour >= 5 && hour < 12:
		return models.TimeBucketMorning
	case hour >= 12 && hour < 17:
		return models.TimeBucketAfternoon
	case hour >= 17 && hour < 21:
		return models.TimeBucketEvening
	default:
		return models.TimeBucketNight
	}
}

// Package rules holds the static classification tables used by the
// normalizer and the categorizer: category keywords, SMS body phrase
// heuristics, phone prefix patterns and amount thresholds. A Ruleset is
// built once at startup and passed explicitly into the stages.
package rules

import (
	"fmt"
	"os"
	"regexp"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"kasozi/momo-etl/internal/models"
)

// CategoryRule maps a category to the keywords that select it from a
// transaction description. Rules are evaluated in order; the first keyword
// match wins.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// PhraseRule maps SMS body phrases to a category. Evaluated in order after
// the keyword table produced no match.
type PhraseRule struct {
	Category string   `yaml:"category"`
	Phrases  []string `yaml:"phrases"`
}

// NetworkRule maps a provider to the phone number pattern that identifies
// it. Evaluated in order; the first match wins.
type NetworkRule struct {
	Network string `yaml:"network"`
	Pattern string `yaml:"pattern"`

	re *regexp.Regexp
}

// Matches reports whether the phone number belongs to this provider.
func (r *NetworkRule) Matches(phone string) bool {
	return r.re != nil && r.re.MatchString(phone)
}

// AmountThresholds are the inclusive upper bounds of the SMALL, MEDIUM and
// LARGE amount buckets. Anything above Large is VERY_LARGE.
type AmountThresholds struct {
	Small  decimal.Decimal `yaml:"small"`
	Medium decimal.Decimal `yaml:"medium"`
	Large  decimal.Decimal `yaml:"large"`
}

// Ruleset is the immutable bundle of classification tables.
type Ruleset struct {
	CountryCode string           `yaml:"country_code"`
	Categories  []CategoryRule   `yaml:"categories"`
	BodyPhrases []PhraseRule     `yaml:"body_phrases"`
	Networks    []NetworkRule    `yaml:"networks"`
	Thresholds  AmountThresholds `yaml:"thresholds"`

	// Phrase polarity tables for type inference when neither the category
	// nor the balance delta decides.
	DebitPhrases  []string `yaml:"debit_phrases"`
	CreditPhrases []string `yaml:"credit_phrases"`
}

// Default returns the built-in Ugandan mobile-money ruleset.
func Default() *Ruleset {
	rs := &Ruleset{
		CountryCode: "256",
		Categories: []CategoryRule{
			{Name: models.CategoryTransfer, Keywords: []string{"transfer", "send", "sent"}},
			{Name: models.CategoryDeposit, Keywords: []string{"deposit", "receive", "received", "top up", "topup"}},
			{Name: models.CategoryWithdrawal, Keywords: []string{"withdraw", "withdrawal", "cash out", "cashout"}},
			{Name: models.CategoryPayment, Keywords: []string{"payment", "pay", "purchase", "buy"}},
			{Name: models.CategoryAirtime, Keywords: []string{"airtime", "credit", "recharge"}},
			{Name: models.CategoryBill, Keywords: []string{"bill", "utility", "electricity", "water"}},
		},
		BodyPhrases: []PhraseRule{
			{Category: models.CategoryTransfer, Phrases: []string{"you have sent", "sent to"}},
			{Category: models.CategoryDeposit, Phrases: []string{"you have received", "received from"}},
			{Category: models.CategoryWithdrawal, Phrases: []string{"cash out", "withdrawal"}},
			{Category: models.CategoryAirtime, Phrases: []string{"airtime", "top up"}},
			{Category: models.CategoryPayment, Phrases: []string{"payment", "paid to"}},
			{Category: models.CategoryBill, Phrases: []string{"bill", "utility"}},
		},
		Networks: []NetworkRule{
			{Network: models.NetworkMTN, Pattern: `^(\+256|256|0)?(77|78|76)\d{7}$`},
			{Network: models.NetworkAirtel, Pattern: `^(\+256|256|0)?(75|70|74)\d{7}$`},
			{Network: models.NetworkAfricell, Pattern: `^(\+256|256|0)?(79)\d{7}$`},
			{Network: models.NetworkUnknown, Pattern: `^(\+256|256|0)?\d{9}$`},
		},
		Thresholds: AmountThresholds{
			Small:  decimal.NewFromInt(1000),
			Medium: decimal.NewFromInt(50000),
			Large:  decimal.NewFromInt(500000),
		},
		DebitPhrases:  []string{"sent", "paid", "withdraw", "cash out"},
		CreditPhrases: []string{"received", "deposit", "credited"},
	}

	if err := rs.compile(); err != nil {
		// The built-in patterns are constants; a compile failure here is a
		// programming error.
		panic(err)
	}
	return rs
}

// LoadFile reads a YAML rules file and returns the resulting Ruleset.
// Missing sections keep their defaults, so a file may override just the
// category keywords or just the thresholds.
func LoadFile(path string) (*Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	rs := Default()
	if err := yaml.Unmarshal(data, rs); err != nil {
		return nil, fmt.Errorf("error parsing rules file %s: %w", path, err)
	}

	if err := rs.compile(); err != nil {
		return nil, fmt.Errorf("invalid rules file %s: %w", path, err)
	}
	return rs, nil
}

// compile builds the network pattern matchers.
func (rs *Ruleset) compile() error {
	for i := range rs.Networks {
		re, err := regexp.Compile(rs.Networks[i].Pattern)
		if err != nil {
			return fmt.Errorf("network pattern %s: %w", rs.Networks[i].Network, err)
		}
		rs.Networks[i].re = re
	}
	return nil
}

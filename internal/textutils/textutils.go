// Package textutils provides text cleaning and field extraction helpers
// for mobile-money SMS bodies.
package textutils

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	allowlistRe  = regexp.MustCompile(`[^\w\s\-.,()]`)
)

// CleanText collapses runs of whitespace, trims, and strips characters
// outside the conservative allow-list (letters, digits, whitespace and
// "-.,()" punctuation).
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	cleaned := whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	return allowlistRe.ReplaceAllString(cleaned, "")
}

// Extraction patterns for the fields a MoMo SMS body may carry. All
// extraction is best effort: a miss returns "" and is never an error.
var (
	amountRe  = regexp.MustCompile(`(?i)(?:UGX|USh)\s*([\d,]+(?:\.\d+)?)`)
	phoneRe   = regexp.MustCompile(`(\+?256\d{9}|0\d{9})`)
	balanceRe = regexp.MustCompile(`(?i)(?:new\s+)?balance[:\s]+(?:UGX|USh)?\s*([\d,]+(?:\.\d+)?)`)
	feeRe     = regexp.MustCompile(`(?i)fee[:\s]+(?:UGX|USh)?\s*([\d,]+(?:\.\d+)?)`)
	txRefRe   = regexp.MustCompile(`(?i)(?:txid|transaction\s+id|ref(?:erence)?)[:\s#]+([A-Za-z0-9]{6,})`)
	dateRe    = regexp.MustCompile(`(\d{4}-\d{2}-\d{2}(?:[ T]\d{2}:\d{2}:\d{2})?|\d{2}/\d{2}/\d{4})`)
)

// ExtractAmount returns the first currency-prefixed amount in the body.
func ExtractAmount(body string) string {
	return firstGroup(amountRe, body)
}

// ExtractPhone returns the first phone number in the body.
func ExtractPhone(body string) string {
	return firstGroup(phoneRe, body)
}

// ExtractBalance returns the balance reading in the body, if any.
func ExtractBalance(body string) string {
	return firstGroup(balanceRe, body)
}

// ExtractFee returns the fee reading in the body, if any.
func ExtractFee(body string) string {
	return firstGroup(feeRe, body)
}

// ExtractTransactionRef returns a provider-assigned transaction reference
// in the body, if any.
func ExtractTransactionRef(body string) string {
	return firstGroup(txRefRe, body)
}

// ExtractDate returns a date stated in the body (providers often quote the
// transaction time in the confirmation text), if any.
func ExtractDate(body string) string {
	return firstGroup(dateRe, body)
}

func firstGroup(re *regexp.Regexp, s string) string {
	matches := re.FindStringSubmatch(s)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}
	return ""
}

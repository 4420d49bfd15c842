package etlerror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	cause := errors.New("bad syntax")
	err := &ParseError{Stage: "extractor", Field: "XML document", Value: "momo.xml", Err: cause}

	assert.Contains(t, err.Error(), "extractor")
	assert.Contains(t, err.Error(), "XML document")
	assert.ErrorIs(t, err, cause)
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{FilePath: "momo.xml", Reason: "no sms entries found"}
	assert.Contains(t, err.Error(), "momo.xml")
	assert.Contains(t, err.Error(), "no sms entries found")
}

func TestExtractionError(t *testing.T) {
	err := &ExtractionError{Index: 4, Reason: "missing body attribute"}
	assert.Contains(t, err.Error(), "entry 4")
	assert.Contains(t, err.Error(), "missing body attribute")
}

func TestStoreError(t *testing.T) {
	cause := errors.New("constraint violated")
	err := &StoreError{TransactionID: "tx_0001", Op: "insert", Err: cause}

	assert.Contains(t, err.Error(), "insert")
	assert.Contains(t, err.Error(), "tx_0001")
	assert.ErrorIs(t, err, cause)
}

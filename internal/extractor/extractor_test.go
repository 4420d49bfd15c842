package extractor

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kasozi/momo-etl/internal/etlerror"
	"kasozi/momo-etl/internal/logging"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<smses count="4">
  <sms address="MTNMobileMoney" date="1715763600000" body="You have sent UGX 5,000 to +256751234567. Fee: UGX 100. New balance: UGX 45,000" />
  <sms address="AirtelMoney" date="1715767200000" body="You have received UGX 20,000 from 0771234567. New balance: UGX 65,000" />
  <sms address="MTNMobileMoney" date="1715770800000" body="Payment of UGX 12,000 to SUPERMARKET completed. New balance: UGX 53,000" />
  <sms address="MTNMobileMoney" date="1715774400000" body="" />
</smses>`

func writeXML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sms.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExtractFile(t *testing.T) {
	deadLetterDir := t.TempDir()
	ext := New(deadLetterDir, &logging.MockLogger{})

	records, deadLettered, err := ext.ExtractFile(writeXML(t, sampleXML))
	require.NoError(t, err)

	// The empty-body entry is dead-lettered, the rest come through.
	assert.Len(t, records, 3)
	assert.Equal(t, 1, deadLettered)

	assert.Equal(t, "MTNMobileMoney", records[0].Sender)
	assert.Contains(t, records[0].Body, "You have sent UGX 5,000")
	assert.True(t, records[0].ReceivedAt.Equal(time.UnixMilli(1715763600000)))
	assert.False(t, records[0].DateDefaulted)

	// One dead-letter file per failed entry.
	entries, err := os.ReadDir(deadLetterDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "failed_sms_")
}

func TestExtractFile_BadTimestampDefaults(t *testing.T) {
	xml := `<smses count="1">
  <sms address="MTNMobileMoney" date="not-a-timestamp" body="You have sent UGX 5,000 to 0751234567" />
</smses>`
	ext := New(t.TempDir(), &logging.MockLogger{})

	records, deadLettered, err := ext.ExtractFile(writeXML(t, xml))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 0, deadLettered)

	// The record survives with the extraction time and is flagged.
	assert.True(t, records[0].DateDefaulted)
	assert.False(t, records[0].ReceivedAt.IsZero())
}

func TestExtractFile_NoEntries(t *testing.T) {
	ext := New(t.TempDir(), &logging.MockLogger{})

	_, _, err := ext.ExtractFile(writeXML(t, `<smses count="0"></smses>`))
	require.Error(t, err)

	var vErr *etlerror.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestExtractFile_MalformedDocument(t *testing.T) {
	ext := New(t.TempDir(), &logging.MockLogger{})

	_, _, err := ext.ExtractFile(writeXML(t, `<smses><sms`))
	require.Error(t, err)

	var pErr *etlerror.ParseError
	assert.ErrorAs(t, err, &pErr)
}

func TestExtractFile_MissingFile(t *testing.T) {
	ext := New(t.TempDir(), &logging.MockLogger{})
	_, _, err := ext.ExtractFile(filepath.Join(t.TempDir(), "absent.xml"))
	assert.Error(t, err)
}

func TestValidateStructure(t *testing.T) {
	ext := New(t.TempDir(), &logging.MockLogger{})

	assert.NoError(t, ext.ValidateStructure(writeXML(t, sampleXML)))

	err := ext.ValidateStructure(writeXML(t, `<notes><note body="hi"/></notes>`))
	var vErr *etlerror.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

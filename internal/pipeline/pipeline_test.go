package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kasozi/momo-etl/internal/config"
	"kasozi/momo-etl/internal/logging"
	"kasozi/momo-etl/internal/models"
	"kasozi/momo-etl/internal/rules"
	"kasozi/momo-etl/internal/store"
)

const pipelineXML = `<?xml version="1.0" encoding="UTF-8"?>
<smses count="5">
  <sms address="MTNMobileMoney" date="1715763600000" body="You have sent UGX 5,000 to +256751234567. Fee: UGX 100. New balance: UGX 45,000" />
  <sms address="MTNMobileMoney" date="1715767200000" body="You have received UGX 20,000 from 0771234567. New balance: UGX 65,000" />
  <sms address="AirtelMoney" date="1715770800000" body="Payment of UGX 12,000 to SUPERMARKET completed. TxId: PAY1234567" />
  <sms address="MTNMobileMoney" date="1715774400000" body="Your PIN was changed successfully" />
  <sms address="MTNMobileMoney" date="1715778000000" body="" />
</smses>`

func newTestPipeline(t *testing.T) (*Pipeline, *store.Store) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Output.DeadLetterDir = t.TempDir()
	cfg.ETL.BatchSize = 2

	st, err := store.Open(":memory:", &logging.MockLogger{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	return New(cfg, rules.Default(), st, &logging.MockLogger{}), st
}

func writePipelineXML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "momo.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun(t *testing.T) {
	p, st := newTestPipeline(t)

	summary, err := p.Run(writePipelineXML(t, pipelineXML), false)
	require.NoError(t, err)

	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, 4, summary.Parsed)
	assert.Equal(t, 1, summary.DeadLettered)
	assert.Equal(t, 3, summary.Cleaned)
	assert.Equal(t, 1, summary.Dropped, "the PIN notification has no amount")
	assert.Equal(t, 3, summary.Loaded)
	assert.Equal(t, 0, summary.Failed)

	count, err := st.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// Categorization survives through to the store.
	got, err := st.Get("PAY1234567")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryPayment, got.Category)
	assert.Equal(t, models.TypeDebit, got.TransactionType)
}

func TestRun_Idempotent(t *testing.T) {
	p, st := newTestPipeline(t)
	path := writePipelineXML(t, pipelineXML)

	_, err := p.Run(path, false)
	require.NoError(t, err)
	first, err := st.Count()
	require.NoError(t, err)

	// Reprocessing the same export must not create duplicates.
	summary, err := p.Run(path, false)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Loaded)

	second, err := st.Count()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRun_StructurallyInvalid(t *testing.T) {
	p, _ := newTestPipeline(t)

	_, err := p.Run(writePipelineXML(t, `<notes><note body="hi"/></notes>`), false)
	assert.Error(t, err)
}

func TestRun_SkipValidation(t *testing.T) {
	p, _ := newTestPipeline(t)

	// Without the pre-flight check the empty document fails at extraction.
	_, err := p.Run(writePipelineXML(t, `<smses count="0"></smses>`), true)
	assert.Error(t, err)
}

func TestRunAndExport(t *testing.T) {
	p, _ := newTestPipeline(t)

	dashboard := filepath.Join(t.TempDir(), "dashboard.json")
	summary, err := p.RunAndExport(writePipelineXML(t, pipelineXML), dashboard, false)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Loaded)

	_, err = os.Stat(dashboard)
	assert.NoError(t, err)
}

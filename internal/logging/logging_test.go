package logging

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestMockLogger_CapturesEntries(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("starting", Field{Key: "file", Value: "momo.xml"})
	mock.Warn("odd record")
	mock.Error("failed")

	assert.Len(t, mock.Entries, 3)
	assert.Equal(t, "INFO", mock.Entries[0].Level)
	assert.Equal(t, "starting", mock.Entries[0].Message)
	assert.Equal(t, "file", mock.Entries[0].Fields[0].Key)
	assert.True(t, mock.HasMessage("odd record"))
	assert.False(t, mock.HasMessage("never logged"))
}

func TestMockLogger_WithError(t *testing.T) {
	mock := &MockLogger{}
	err := errors.New("boom")

	derived := mock.WithError(err).(*MockLogger)
	derived.Error("failed to parse")

	assert.Len(t, derived.Entries, 1)
	assert.Equal(t, err, derived.Entries[0].Error)
}

func TestMockLogger_WithField(t *testing.T) {
	mock := &MockLogger{}

	derived := mock.WithField("run_id", "abc").(*MockLogger)
	derived.Info("done", Field{Key: "count", Value: 3})

	assert.Len(t, derived.Entries, 1)
	assert.Equal(t, "run_id", derived.Entries[0].Fields[0].Key)
	assert.Equal(t, "count", derived.Entries[0].Fields[1].Key)
}

func TestNewLogrusAdapter(t *testing.T) {
	logger := NewLogrusAdapter("debug", "json")
	assert.NotNil(t, logger)

	// An invalid level falls back rather than failing.
	logger = NewLogrusAdapter("nonsense", "text")
	assert.NotNil(t, logger)
}

func TestLogrusAdapter_Derivation(t *testing.T) {
	base := logrus.New()
	logger := NewLogrusAdapterFromLogger(base)

	withErr := logger.WithError(errors.New("boom"))
	assert.NotNil(t, withErr)

	withField := logger.WithField("stage", "extract")
	assert.NotNil(t, withField)
}

func TestConvertFields(t *testing.T) {
	fields := convertFields([]Field{
		{Key: "a", Value: 1},
		{Key: "b", Value: "two"},
	})
	assert.Equal(t, logrus.Fields{"a": 1, "b": "two"}, fields)
}

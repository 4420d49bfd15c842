package extractor

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"kasozi/momo-etl/internal/logging"
)

// failedRecord wraps a dead-lettered sms entry with its error context.
type failedRecord struct {
	XMLName   xml.Name `xml:"failedRecord"`
	Error     string   `xml:"error,attr"`
	Timestamp string   `xml:"timestamp,attr"`
	Entry     smsEntry `xml:"sms"`
}

// DeadLetterSink preserves entries that failed extraction as individual XML
// files for later inspection instead of discarding them.
type DeadLetterSink struct {
	dir    string
	logger logging.Logger
	seq    atomic.Uint64
}

// NewDeadLetterSink creates a sink writing under dir. The directory is
// created on first write.
func NewDeadLetterSink(dir string, logger logging.Logger) *DeadLetterSink {
	return &DeadLetterSink{dir: dir, logger: logger}
}

// Write persists one failed entry tagged with the error message and the
// current timestamp. A sink failure is logged, never propagated: dead
// lettering must not abort the batch it protects.
func (s *DeadLetterSink) Write(entry smsEntry, cause error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.logger.WithError(err).Error("Failed to create dead letter directory")
		return
	}

	now := time.Now()
	record := failedRecord{
		Error:     cause.Error(),
		Timestamp: now.Format(time.RFC3339),
		Entry:     entry,
	}

	data, err := xml.MarshalIndent(record, "", "  ")
	if err != nil {
		s.logger.WithError(err).Error("Failed to marshal dead letter record")
		return
	}

	name := fmt.Sprintf("failed_sms_%s_%04d.xml", now.Format("20060102_150405"), s.seq.Add(1))
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, append([]byte(xml.Header), data...), 0o644); err != nil {
		s.logger.WithError(err).Error("Failed to write dead letter record")
		return
	}

	s.logger.Info("Saved failed record to dead letter",
		logging.Field{Key: "file", Value: name})
}

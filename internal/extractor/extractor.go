// Package extractor parses SMS backup XML exports into raw transaction
// records. Per-entry failures are routed to a dead-letter sink; only
// structural problems with the document abort the batch.
package extractor

import (
	"encoding/xml"
	"fmt"
	"os"
	"time"

	"kasozi/momo-etl/internal/dateutils"
	"kasozi/momo-etl/internal/etlerror"
	"kasozi/momo-etl/internal/logging"
	"kasozi/momo-etl/internal/models"
)

// smsDocument mirrors the root of an SMS backup export.
type smsDocument struct {
	XMLName  xml.Name   `xml:"smses"`
	Count    string     `xml:"count,attr"`
	Messages []smsEntry `xml:"sms"`
}

// smsEntry is a single exported SMS. Date carries epoch milliseconds.
type smsEntry struct {
	XMLName xml.Name `xml:"sms"`
	Address string   `xml:"address,attr"`
	Date    string   `xml:"date,attr"`
	Body    string   `xml:"body,attr"`
}

// Extractor reads SMS backup XML files and emits RawRecords, dead-lettering
// malformed entries as it goes.
type Extractor struct {
	deadLetter *DeadLetterSink
	logger     logging.Logger
	now        func() time.Time
}

// New creates an Extractor writing failed entries under deadLetterDir.
func New(deadLetterDir string, logger logging.Logger) *Extractor {
	return &Extractor{
		deadLetter: NewDeadLetterSink(deadLetterDir, logger),
		logger:     logger,
		now:        time.Now,
	}
}

// ExtractFile parses the XML file and returns the extracted records along
// with the number of entries routed to the dead-letter sink. A document
// that cannot be read, parsed, or that carries no sms entries is a fatal
// error.
func (e *Extractor) ExtractFile(path string) ([]models.RawRecord, int, error) {
	e.logger.Info("Starting XML extraction", logging.Field{Key: "file", Value: path})

	doc, err := e.readDocument(path)
	if err != nil {
		return nil, 0, err
	}

	if len(doc.Messages) == 0 {
		return nil, 0, &etlerror.ValidationError{FilePath: path, Reason: "no sms entries found"}
	}

	records := make([]models.RawRecord, 0, len(doc.Messages))
	deadLettered := 0
	for i, entry := range doc.Messages {
		record, err := e.extractEntry(i, entry)
		if err != nil {
			e.logger.WithError(err).Warn("Failed to extract SMS entry",
				logging.Field{Key: "index", Value: i})
			e.deadLetter.Write(entry, err)
			deadLettered++
			continue
		}
		records = append(records, record)
	}

	e.logger.Info("XML extraction finished",
		logging.Field{Key: "parsed", Value: len(records)},
		logging.Field{Key: "dead_lettered", Value: deadLettered})
	return records, deadLettered, nil
}

func (e *Extractor) readDocument(path string) (*smsDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read XML file: %w", err)
	}

	var doc smsDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &etlerror.ParseError{
			Stage: "extractor",
			Field: "XML document",
			Value: path,
			Err:   err,
		}
	}
	return &doc, nil
}

// extractEntry converts one sms element into a RawRecord. An entry with no
// body cannot describe a transaction and is malformed; an absent or
// unparsable timestamp defaults to the extraction time and the record is
// still emitted.
func (e *Extractor) extractEntry(index int, entry smsEntry) (models.RawRecord, error) {
	if entry.Body == "" {
		return models.RawRecord{}, &etlerror.ExtractionError{Index: index, Reason: "missing body attribute"}
	}

	now := e.now()
	record := models.RawRecord{
		Sender:   entry.Address,
		Body:     entry.Body,
		ParsedAt: now,
	}

	receivedAt, err := dateutils.FromEpochMillis(entry.Date)
	if err != nil {
		e.logger.WithError(err).Warn("Defaulting SMS timestamp to current time",
			logging.Field{Key: "index", Value: index})
		record.ReceivedAt = now
		record.DateDefaulted = true
	} else {
		record.ReceivedAt = receivedAt
	}

	return record, nil
}

package extractor

import (
	"fmt"
	"os"

	"gopkg.in/xmlpath.v2"

	"kasozi/momo-etl/internal/etlerror"
	"kasozi/momo-etl/internal/logging"
)

var smsPath = xmlpath.MustCompile("//sms")

// ValidateStructure runs the pre-flight structural check: the document must
// parse and contain at least one sms entry of the expected shape. It fails
// fast so a structurally broken export never reaches the per-entry loop.
func (e *Extractor) ValidateStructure(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open XML file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			e.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	root, err := xmlpath.Parse(file)
	if err != nil {
		return &etlerror.ValidationError{FilePath: path, Reason: fmt.Sprintf("malformed XML: %v", err)}
	}

	count := 0
	iter := smsPath.Iter(root)
	for iter.Next() {
		count++
	}
	if count == 0 {
		return &etlerror.ValidationError{FilePath: path, Reason: "no sms entries found"}
	}

	e.logger.Info("XML structure validation passed",
		logging.Field{Key: "entries", Value: count})
	return nil
}

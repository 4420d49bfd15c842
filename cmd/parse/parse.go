// Package parse handles the extract-and-clean command without persistence
package parse

import (
	"encoding/json"
	"fmt"
	"os"

	"kasozi/momo-etl/cmd/root"
	"kasozi/momo-etl/internal/categorizer"
	"kasozi/momo-etl/internal/extractor"
	"kasozi/momo-etl/internal/logging"
	"kasozi/momo-etl/internal/normalizer"

	"github.com/spf13/cobra"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse and normalize an SMS XML file without loading it",
	Long: `Parse an SMS backup XML file, normalize and categorize the messages
and print the resulting transactions as JSON. Nothing is written to the
database, which makes this useful for inspecting rule behaviour.`,
	Run: parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Parse command called")
	root.Log.Info("Input XML file: " + root.InputPath())

	ext := extractor.New(root.Cfg.Output.DeadLetterDir, root.Log)
	records, deadLettered, err := ext.ExtractFile(root.InputPath())
	if err != nil {
		root.Log.Fatalf("Error extracting SMS records: %v", err)
	}

	norm := normalizer.New(root.Rules, root.Log)
	cleaned, dropped := norm.CleanAll(records)

	cat := categorizer.New(root.Rules)
	txs := cat.CategorizeAll(cleaned)

	out, err := json.MarshalIndent(txs, "", "  ")
	if err != nil {
		root.Log.Fatalf("Error encoding transactions: %v", err)
	}
	fmt.Fprintln(os.Stdout, string(out))

	root.Log.Info("Parse completed successfully!",
		logging.Field{Key: "parsed", Value: len(records)},
		logging.Field{Key: "dead_lettered", Value: deadLettered},
		logging.Field{Key: "dropped", Value: dropped},
		logging.Field{Key: "transactions", Value: len(txs)})
}

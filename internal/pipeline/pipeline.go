// Package pipeline sequences the ETL stages: extract, normalize,
// categorize, load, export. Stages run strictly in order over the full
// batch; per-record failures stay inside their stage and the summary makes
// the drop counts observable.
package pipeline

import (
	"time"

	"github.com/google/uuid"

	"kasozi/momo-etl/internal/categorizer"
	"kasozi/momo-etl/internal/config"
	"kasozi/momo-etl/internal/extractor"
	"kasozi/momo-etl/internal/logging"
	"kasozi/momo-etl/internal/normalizer"
	"kasozi/momo-etl/internal/rules"
	"kasozi/momo-etl/internal/store"
)

// Summary reports the record counts at every stage boundary of one run, so
// silent per-record drops are visible even though individual causes live
// only in the logs.
type Summary struct {
	RunID        string
	Parsed       int
	DeadLettered int
	Cleaned      int
	Dropped      int
	Categorized  int
	Loaded       int
	Failed       int
	StartedAt    time.Time
	Duration     time.Duration
}

// Pipeline wires the four stages against one store handle.
type Pipeline struct {
	cfg    *config.Config
	rules  *rules.Ruleset
	store  *store.Store
	logger logging.Logger
}

// New builds a Pipeline from explicit collaborators.
func New(cfg *config.Config, rs *rules.Ruleset, st *store.Store, logger logging.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, rules: rs, store: st, logger: logger}
}

// Run executes the full pipeline over the XML file at xmlPath and upserts
// the result. Only structural input failures return an error; everything
// per-record is contained and counted.
func (p *Pipeline) Run(xmlPath string, skipValidation bool) (*Summary, error) {
	summary := &Summary{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}
	log := p.logger.WithField("run_id", summary.RunID)
	log.Info("Starting ETL pipeline", logging.Field{Key: "input", Value: xmlPath})

	ext := extractor.New(p.cfg.Output.DeadLetterDir, p.logger)

	if !skipValidation {
		if err := ext.ValidateStructure(xmlPath); err != nil {
			return nil, err
		}
	}

	records, deadLettered, err := ext.ExtractFile(xmlPath)
	if err != nil {
		return nil, err
	}
	summary.Parsed = len(records)
	summary.DeadLettered = deadLettered

	norm := normalizer.New(p.rules, p.logger)
	cleaned, dropped := norm.CleanAll(records)
	summary.Cleaned = len(cleaned)
	summary.Dropped = dropped

	cat := categorizer.New(p.rules)
	categorized := cat.CategorizeAll(cleaned)
	summary.Categorized = len(categorized)

	batchSize := p.cfg.ETL.BatchSize
	if batchSize < 1 {
		batchSize = len(categorized)
	}
	for start := 0; start < len(categorized); start += batchSize {
		end := start + batchSize
		if end > len(categorized) {
			end = len(categorized)
		}
		loaded, failed := p.store.UpsertAll(categorized[start:end])
		summary.Loaded += loaded
		summary.Failed += failed
	}

	summary.Duration = time.Since(summary.StartedAt)
	log.Info("Pipeline finished",
		logging.Field{Key: "parsed", Value: summary.Parsed},
		logging.Field{Key: "dead_lettered", Value: summary.DeadLettered},
		logging.Field{Key: "cleaned", Value: summary.Cleaned},
		logging.Field{Key: "dropped", Value: summary.Dropped},
		logging.Field{Key: "loaded", Value: summary.Loaded},
		logging.Field{Key: "failed", Value: summary.Failed},
		logging.Field{Key: "duration", Value: summary.Duration.String()})
	return summary, nil
}

// RunAndExport runs the pipeline and then writes the dashboard document.
func (p *Pipeline) RunAndExport(xmlPath, dashboardPath string, skipValidation bool) (*Summary, error) {
	summary, err := p.Run(xmlPath, skipValidation)
	if err != nil {
		return nil, err
	}
	if err := p.store.ExportDashboard(dashboardPath); err != nil {
		return summary, err
	}
	return summary, nil
}

package pipeline_test

import (
	"testing"

	"kasozi/momo-etl/cmd/pipeline"

	"github.com/stretchr/testify/assert"
)

func TestRunCommand_Metadata(t *testing.T) {
	assert.Equal(t, "run", pipeline.Cmd.Use)
	assert.Contains(t, pipeline.Cmd.Short, "ETL pipeline")
	assert.NotNil(t, pipeline.Cmd.Run)
}

func TestRunCommand_Flags(t *testing.T) {
	assert.NotNil(t, pipeline.Cmd.Flags().Lookup("batch-size"))
	assert.NotNil(t, pipeline.Cmd.Flags().Lookup("skip-validation"))
}

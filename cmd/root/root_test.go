package root_test

import (
	"testing"

	"kasozi/momo-etl/cmd/root"

	"github.com/stretchr/testify/assert"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "momo-etl", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "mobile money")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestInit_RegistersPersistentFlags(t *testing.T) {
	root.Init()

	assert.NotNil(t, root.Cmd.PersistentFlags().Lookup("input"))
	assert.NotNil(t, root.Cmd.PersistentFlags().Lookup("output"))
}

func TestRules_DefaultLoaded(t *testing.T) {
	assert.NotNil(t, root.Rules)
	assert.NotEmpty(t, root.Rules.Categories)
}

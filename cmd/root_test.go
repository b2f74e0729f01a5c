package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetRootCmd_Exists verifies getRootCmd returns
// a valid command.
func TestGetRootCmd_Exists(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd, "Root command should exist")
	assert.Equal(t, "airports", cmd.Use,
		"Command name should be airports")
}

// TestGetRootCmd_VersionFormat verifies version
// output format.
func TestGetRootCmd_VersionFormat(t *testing.T) {
	tests := []struct {
		name string
		flag string
	}{
		{"long flag", "--version"},
		{"short flag", "-V"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := getRootCmd()
			cmd.Version = "version: v1.2.3\nbuild:   abc123"

			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetArgs([]string{tt.flag})

			err := cmd.Execute()
			require.NoError(t, err)

			output := buf.String()
			assert.Contains(t, output, "v1.2.3")
			assert.Contains(t, output, "abc123")
			assert.NotContains(t, output, "airports version:",
				"Should use custom version template")
		})
	}
}

// TestGetRootCmd_HelpText verifies help text content.
func TestGetRootCmd_HelpText(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	for _, v := range []string{"load", "query", "export", "publish", "AIRPORTS_"} {
		assert.Contains(t, helpText, v)
	}
}

// TestGetRootCmd_Hooks verifies bootstrap and error silencing.
func TestGetRootCmd_Hooks(t *testing.T) {
	cmd := getRootCmd()

	assert.NotNil(t, cmd.PersistentPreRunE,
		"PersistentPreRunE should be set for bootstrap")
	assert.NotNil(t, cmd.PersistentPostRunE,
		"PersistentPostRunE should close the log")
	assert.NotNil(t, cmd.RunE)
	assert.True(t, cmd.SilenceErrors, "Errors should be silenced")
	assert.True(t, cmd.SilenceUsage, "Usage should be silenced on errors")
}

// TestGetRootCmd_Subcommands verifies all subcommands are registered.
func TestGetRootCmd_Subcommands(t *testing.T) {
	cmd := getRootCmd()

	for _, name := range []string{"load", "query", "export", "publish"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}

	for _, name := range []string{"countries", "cities", "nearest", "iata"} {
		sub, _, err := cmd.Find([]string{"query", name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

// TestGetRootCmd_IndependentInstances verifies each
// call returns independent instance.
func TestGetRootCmd_IndependentInstances(t *testing.T) {
	cmd1 := getRootCmd()
	cmd2 := getRootCmd()

	assert.NotSame(t, cmd1, cmd2,
		"Each getRootCmd call should return new instance")

	cmd1.Version = "version1"
	cmd2.Version = "version2"

	assert.Equal(t, "version1", cmd1.Version)
	assert.Equal(t, "version2", cmd2.Version)
}

// TestGetRootCmd_InvalidCommand verifies error on
// invalid command.
func TestGetRootCmd_InvalidCommand(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"nonexistent-command"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unknown"),
		"Error should indicate unknown command")
}

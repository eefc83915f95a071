package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	origVersion := Version
	origGitCommit := GitCommit
	origBuildDate := BuildDate
	defer func() {
		Version = origVersion
		GitCommit = origGitCommit
		BuildDate = origBuildDate
	}()

	Version = "1.0.0"
	GitCommit = "abc123"
	BuildDate = "2026-08-01T12:00:00Z"

	buf := new(bytes.Buffer)
	versionCmd.SetOut(buf)
	versionCmd.Run(versionCmd, nil)

	output := buf.String()
	for _, expected := range []string{
		"Gatherly Server",
		"Version:    1.0.0",
		"Git commit: abc123",
		"Build date: 2026-08-01T12:00:00Z",
		"Go version:",
		"Platform:",
	} {
		require.True(t, strings.Contains(output, expected), "missing %q in output:\n%s", expected, output)
	}
}

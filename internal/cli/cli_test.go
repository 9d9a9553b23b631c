package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flextime/internal/core"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	expected := []string{
		"parse", "format", "clock", "elapsed",
		"patterns", "validate", "batch", "inspect",
	}
	for _, name := range expected {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestCatalogCommandFlags(t *testing.T) {
	commands := map[string]*cobra.Command{
		"parse":    newParseCommand(),
		"format":   newFormatCommand(),
		"clock":    newClockCommand(),
		"patterns": newPatternsCommand(),
		"batch":    newBatchCommand(),
	}
	for name, cmd := range commands {
		for _, flag := range []string{"catalog", "profile", "timezone", "locale"} {
			assert.NotNil(t, cmd.Flags().Lookup(flag), "%s missing flag: %s", name, flag)
		}
	}
}

func TestBatchCommandFlags(t *testing.T) {
	cmd := newBatchCommand()
	for _, name := range []string{"input", "output", "workers", "strict"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
	assert.Equal(t, "out", cmd.Flags().Lookup("output").DefValue)
	assert.Equal(t, "4", cmd.Flags().Lookup("workers").DefValue)
}

func TestValidateCommandFlags(t *testing.T) {
	cmd := newValidateCommand()
	assert.NotNil(t, cmd.Flags().Lookup("catalog"))
	assert.NotNil(t, cmd.Flags().Lookup("profile"))
}

// ---------- Command execution tests ----------

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(t.Context())
	return out.String(), err
}

func fixturePath(name string) string {
	return filepath.Join("..", "..", "fixtures", name)
}

func TestParseCommand(t *testing.T) {
	out, err := runRoot(t, "parse", "2023-06-15", "14:30", "--timezone", "UTC")
	require.NoError(t, err)
	assert.Equal(t, "2023-06-15 -> 2023-06-15T00:00:00Z (date)\n14:30 -> 0000-01-01T14:30:00Z (clock)\n", out)
}

func TestParseCommandFallback(t *testing.T) {
	out, err := runRoot(t, "parse", "not-a-date")
	require.NoError(t, err)
	assert.Contains(t, out, "not-a-date -> ")
	assert.Contains(t, out, "(no match, current time)")
}

func TestParseCommandStrict(t *testing.T) {
	_, err := runRoot(t, "parse", "not-a-date", "--strict")
	require.Error(t, err)
	assert.Equal(t, 3, exitCodeForError(err))
}

func TestFormatCommand(t *testing.T) {
	out, err := runRoot(t, "format", "2023-06-15T14:30:00+02:00",
		"--pattern", "yyyy-MM-dd HH:mm",
		"--format-timezone", "UTC")
	require.NoError(t, err)
	assert.Equal(t, "2023-06-15 12:30\n", out)
}

func TestClockCommands(t *testing.T) {
	out, err := runRoot(t, "clock", "2:30 PM")
	require.NoError(t, err)
	assert.Equal(t, "14:30 hour=14 minute=30\n", out)

	out, err = runRoot(t, "clock", "14:30", "--fixed")
	require.NoError(t, err)
	assert.Equal(t, "- hour=0 minute=0\n", out)

	out, err = runRoot(t, "clock", "2:30 pm")
	require.NoError(t, err)
	assert.Equal(t, "14:30 hour=14 minute=30\n", out)

	out, err = runRoot(t, "elapsed", "65")
	require.NoError(t, err)
	assert.Equal(t, "1:05\n", out)

	_, err = runRoot(t, "elapsed", "soon")
	require.Error(t, err)
	assert.Equal(t, 2, exitCodeForError(err))
}

func TestPatternsCommand(t *testing.T) {
	out, err := runRoot(t, "patterns", "--catalog", fixturePath("catalog-product.yaml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "catalog: api-timestamps (timezone=UTC locale=en-US)\n"), out)
	assert.Contains(t, out, " 8. long-date")
}

func TestValidateCommand(t *testing.T) {
	out, err := runRoot(t, "validate", "--catalog", fixturePath("catalog-product.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "validated: api-timestamps (8 patterns)\n", out)

	_, err = runRoot(t, "validate", "--catalog", fixturePath("missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, 5, exitCodeForError(err))
}

func TestBatchAndInspectCommands(t *testing.T) {
	dir := t.TempDir()
	out, err := runRoot(t, "batch",
		"--catalog", fixturePath("catalog-product.yaml"),
		"--input", fixturePath("inputs.txt"),
		"--output", dir,
		"--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "parsed 7 inputs: 6 matched, 1 missed")

	out, err = runRoot(t, "inspect", "--output", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "catalog: api-timestamps\n")
	assert.Contains(t, out, "records: 7 (matched=6 fallback=1)\n")
	assert.Contains(t, out, "- iso8601-colon-offset: 2\n")
	assert.Contains(t, out, "unmatched: not-a-date\n")
}

// ---------- Helper function tests ----------

func TestResolveString(t *testing.T) {
	tests := []struct {
		name     string
		cmd      *cobra.Command
		value    string
		expected string
	}{
		{
			name:     "nil cmd with value returns value",
			cmd:      nil,
			value:    "explicit",
			expected: "explicit",
		},
		{
			name:     "nil cmd empty value returns empty",
			cmd:      nil,
			value:    "",
			expected: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveString(tt.cmd, tt.value, "test_key", "test-flag")
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveStrings(t *testing.T) {
	tests := []struct {
		name     string
		cmd      *cobra.Command
		values   []string
		expected []string
	}{
		{
			name:     "nil cmd with values returns values",
			cmd:      nil,
			values:   []string{"a", "b"},
			expected: []string{"a", "b"},
		},
		{
			name:     "nil cmd empty returns nil",
			cmd:      nil,
			values:   nil,
			expected: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveStrings(tt.cmd, tt.values, "test_key", "test-flag")
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveBool(t *testing.T) {
	got := resolveBool(nil, true, "test_key", "test-flag")
	assert.True(t, got)

	got = resolveBool(nil, false, "test_key", "test-flag")
	assert.False(t, got)
}

func TestResolveInt(t *testing.T) {
	got := resolveInt(nil, 42, "test_key", "test-flag")
	assert.Equal(t, 42, got)
}

func TestFlagChanged(t *testing.T) {
	assert.False(t, flagChanged(nil, "anything"), "nil cmd should return false")
	assert.False(t, flagChanged(nil, ""), "nil cmd with empty name")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	assert.False(t, flagChanged(cmd, "myflag"), "unchanged flag")
	assert.False(t, flagChanged(cmd, "nonexistent"), "nonexistent flag")
}

func TestFlagChangedAfterSet(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	require.NoError(t, cmd.Flags().Set("myflag", "val"))
	assert.True(t, flagChanged(cmd, "myflag"))
}

// ---------- Exit code tests ----------

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name: "invalid argument",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("bad input"),
			expected: 2,
		},
		{
			name: "already exists",
			err: errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg("dup"),
			expected: 2,
		},
		{
			name: "no compatible version",
			err: errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("no compatible version: profile iso 1.2.0 does not satisfy >=2"),
			expected: 4,
		},
		{
			name:     "no pattern matched",
			err:      core.ErrNoPatternMatched,
			expected: 3,
		},
		{
			name: "no pattern matched builder",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("no candidate pattern matched: \"nope\"").
				WithCause(core.ErrNoPatternMatched),
			expected: 3,
		},
		{
			name: "not found generic",
			err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("file missing"),
			expected: 5,
		},
		{
			name: "internal error",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("boom"),
			expected: 5,
		},
		{
			name:     "unknown error",
			err:      assert.AnError,
			expected: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exitCodeForError(tt.err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name: "errbuilder with msg",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("something broke"),
			expected: "something broke",
		},
		{
			name:     "plain error",
			err:      assert.AnError,
			expected: assert.AnError.Error(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errorMessage(tt.err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

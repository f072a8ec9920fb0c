package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with args against fresh buffers, isolated from
// any user config.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestNoCommandIsAnError(t *testing.T) {
	_, err := run(t)
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tagline version")
	assert.Contains(t, out, "commit:")
}

func TestRenderCmd(t *testing.T) {
	out, err := run(t, "render", "--color", "always", "<blue>hi</blue>")
	require.NoError(t, err)
	assert.Equal(t, "\033[94mhi\033[0;0m\033[0;0m\n", out)
}

func TestRenderCmdStripsForPipes(t *testing.T) {
	out, err := run(t, "render", "<blue>hi</blue>")
	require.NoError(t, err)
	assert.Equal(t, "hi\n", out, "buffers are not terminals, tags are stripped")
}

func TestRenderCmdStrict(t *testing.T) {
	_, err := run(t, "render", "--strict", "<notatag>oops</notatag>")
	require.Error(t, err)

	out, err := run(t, "render", "<notatag>kept</notatag>")
	require.NoError(t, err)
	assert.Equal(t, "<notatag>kept</notatag>\n", out)
}

func TestRenderCmdSeparatorAndEnd(t *testing.T) {
	out, err := run(t, "render", "--sep", "-", "--end", "!", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "a-b!", out)

	out, err = run(t, "render", "-n", "a")
	require.NoError(t, err)
	assert.Equal(t, "a", out)
}

func TestStripCmd(t *testing.T) {
	out, err := run(t, "strip", "<red>x</red>", "/<blue>")
	require.NoError(t, err)
	assert.Equal(t, "x <blue>\n", out)
}

func TestTagsCmdText(t *testing.T) {
	out, err := run(t, "tags")
	require.NoError(t, err)
	assert.Contains(t, out, "blue")
	assert.Contains(t, out, "bgred")
	assert.NotContains(t, out, "\033[", "samples are stripped off-terminal")
}

func TestTagsCmdFormats(t *testing.T) {
	out, err := run(t, "tags", "--format", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "[[tags]]")
	assert.Contains(t, out, "blue")

	out, err = run(t, "tags", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: blue")

	out, err = run(t, "tags", "--format", "xml")
	require.NoError(t, err)
	assert.Contains(t, out, `<tag name="blue"`)

	_, err = run(t, "tags", "--format", "csv")
	require.Error(t, err)
}

func TestRomanCmd(t *testing.T) {
	out, err := run(t, "roman", "1994")
	require.NoError(t, err)
	assert.Equal(t, "MCMXCIV\n", out)

	out, err = run(t, "roman", "mcmxciv")
	require.NoError(t, err)
	assert.Equal(t, "1994\n", out)

	_, err = run(t, "roman", "IIII")
	require.Error(t, err)
}

func TestWordsCmd(t *testing.T) {
	out, err := run(t, "words", "42")
	require.NoError(t, err)
	assert.Equal(t, "forty-two\n", out)

	out, err = run(t, "words", "2.5")
	require.NoError(t, err)
	assert.Equal(t, "two and a half\n", out)

	_, err = run(t, "words", "nope")
	require.Error(t, err)
}

func TestPriceCmd(t *testing.T) {
	out, err := run(t, "price", "3.5")
	require.NoError(t, err)
	assert.Equal(t, "€3.50\n", out)

	out, err = run(t, "price", "--currency", "$", "3.5")
	require.NoError(t, err)
	assert.Equal(t, "$3.50\n", out)
}

func TestLoremCmdSeeded(t *testing.T) {
	first, err := run(t, "lorem", "sentence", "--seed", "7")
	require.NoError(t, err)
	second, err := run(t, "lorem", "sentence", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, strings.TrimSpace(first))
}

func TestMenuCmd(t *testing.T) {
	out, err := run(t, "menu", "--labeled", "start", "quit")
	require.NoError(t, err)
	assert.Contains(t, out, "1) start")
	assert.Contains(t, out, "2) quit")
}

func TestGenConfigCmd(t *testing.T) {
	out, err := run(t, "genconfig")
	require.NoError(t, err)
	assert.Contains(t, out, "[markup]")
	assert.Contains(t, out, "# strict")
}

func TestParseCountdownArgs(t *testing.T) {
	tests := []struct {
		args []string
		want time.Duration
	}{
		{[]string{"10"}, 10 * time.Second},
		{[]string{"2", "30"}, 2*time.Minute + 30*time.Second},
		{[]string{"1", "2", "3"}, time.Hour + 2*time.Minute + 3*time.Second},
	}
	for _, tt := range tests {
		got, err := parseCountdownArgs(tt.args)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := parseCountdownArgs([]string{"ten"})
	require.Error(t, err)
}

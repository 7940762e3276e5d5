package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathsprint/internal/config"
)

func execute(t *testing.T, input string, args ...string) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "", "version")
	assert.Equal(t, "mathsprint (devel)\n", out)
}

func TestPlayPlain(t *testing.T) {
	out := execute(t, "abc\nq\n", "play", "--plain", "--difficulty", "easy", "--seed", "7")

	assert.Contains(t, out, "Easy quiz: numbers 1 to 10")
	assert.Contains(t, out, "[1/10]")
	assert.Contains(t, out, "Please enter a valid number!")
	assert.Contains(t, out, "Bye!")
}

func TestNewEngine_SeedIsReproducible(t *testing.T) {
	cfg := &config.Config{DifficultyName: "hard", Seed: 42}

	a, b := newEngine(cfg), newEngine(cfg)
	for range 5 {
		assert.Equal(t, a.CurrentQuestion(), b.CurrentQuestion())
		a.SubmitAnswer("0")
		b.SubmitAnswer("0")
		a.Advance()
		b.Advance()
	}
}

func TestConfigCommand(t *testing.T) {
	out := execute(t, "", "config", "--difficulty", "hard", "--seed", "3")

	assert.Contains(t, out, "difficulty: hard")
	assert.Contains(t, out, "seed: 3")
	assert.Contains(t, out, "env: production")
}

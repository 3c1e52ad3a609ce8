package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/akinator/internal/presentation/tui"
	"github.com/aretw0/akinator/pkg/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner(t *testing.T) {
	buf := &bytes.Buffer{}
	tui.PrintBanner(buf, "v1.2.3")

	out := buf.String()
	assert.Contains(t, out, "v1.2.3")
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 7)
}

func TestNewRenderer_KeepsText(t *testing.T) {
	render := tui.NewRenderer()

	out, err := render("Is it a **Cow**?")
	require.NoError(t, err)
	assert.Contains(t, out, "Cow")
}

func TestNewRenderer_EscapedTextIsLiteral(t *testing.T) {
	render := tui.NewRenderer()

	out, err := render("Is it a " + console.EscapeMarkdown("# 1 *star*") + "?")
	require.NoError(t, err)
	assert.Contains(t, out, "# 1 *star*")
}

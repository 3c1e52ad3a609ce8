package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Recognized answers for yes/no questions.
const (
	YesToken = "yes"
	NoToken  = "no"
)

// ContentRenderer transforms a message before it is written (e.g. markdown to ANSI).
type ContentRenderer func(string) (string, error)

// Console reads answers from a line-oriented reader and writes prompts to a writer.
// It is not safe for concurrent use.
type Console struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer

	// Prompt is printed before every read. Empty disables it.
	Prompt string
}

// Option defines configuration for Console.
type Option func(*Console)

// WithRenderer configures the content renderer.
func WithRenderer(renderer ContentRenderer) Option {
	return func(c *Console) {
		c.Renderer = renderer
	}
}

// WithPrompt replaces the default "> " input prompt.
func WithPrompt(prompt string) Option {
	return func(c *Console) {
		c.Prompt = prompt
	}
}

// New creates a console over r and w, defaulting to stdin and stdout.
func New(r io.Reader, w io.Writer, opts ...Option) *Console {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	c := &Console{
		Reader: bufio.NewReader(r),
		Writer: w,
		Prompt: "> ",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Say writes one formatted message followed by a newline.
// With a renderer, format is treated as markup while string arguments,
// which usually come from players, are escaped and shown literally.
func (c *Console) Say(format string, args ...any) {
	if c.Renderer == nil {
		fmt.Fprintln(c.Writer, strings.TrimSpace(fmt.Sprintf(format, args...)))
		return
	}

	escaped := make([]any, len(args))
	for i, arg := range args {
		if s, ok := arg.(string); ok {
			arg = EscapeMarkdown(s)
		}
		escaped[i] = arg
	}
	output := fmt.Sprintf(format, escaped...)
	if rendered, err := c.Renderer(output); err == nil {
		output = rendered
	} else {
		output = fmt.Sprintf(format, args...)
	}
	fmt.Fprintln(c.Writer, strings.TrimSpace(output))
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", `*`, `\*`, `_`, `\_`, `{`, `\{`, `}`, `\}`,
	`[`, `\[`, `]`, `\]`, `(`, `\(`, `)`, `\)`, `#`, `\#`, `+`, `\+`,
	`-`, `\-`, `.`, `\.`, `!`, `\!`, `|`, `\|`, `<`, `\<`, `>`, `\>`, `~`, `\~`,
)

// EscapeMarkdown backslash-escapes markdown punctuation so s renders as typed.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// Warn writes a non-fatal problem report. It bypasses the renderer.
func (c *Console) Warn(format string, args ...any) {
	fmt.Fprintf(c.Writer, "Warning: %s\n", fmt.Sprintf(format, args...))
}

// ReadLine blocks until a full line is available and returns it trimmed and sanitized.
// Lines that fail sanitization are reported and read again.
// A final line without a trailing newline is still returned; after that io.EOF.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if c.Prompt != "" {
			fmt.Fprint(c.Writer, c.Prompt)
		}

		text, err := c.Reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || text == "") {
			return "", err
		}

		// Trim again after stripping: control characters can hide surrounding whitespace.
		clean, sErr := SanitizeInput(strings.TrimSpace(text))
		if sErr != nil {
			fmt.Fprintf(c.Writer, "Error: %v. Please try again.\n", sErr)
			continue
		}
		return strings.TrimSpace(clean), nil
	}
}

// ReadText reads a non-empty free-text line.
func (c *Console) ReadText(ctx context.Context) (string, error) {
	for {
		text, err := c.ReadLine(ctx)
		if err != nil {
			return "", err
		}
		if text != "" {
			return text, nil
		}
		fmt.Fprintln(c.Writer, "Please type something.")
	}
}

// ReadYesNo reads until the user types one of the two recognized tokens,
// case-insensitively. Any other line is rejected with a corrective message.
func (c *Console) ReadYesNo(ctx context.Context) (bool, error) {
	for {
		text, err := c.ReadLine(ctx)
		if err != nil {
			return false, err
		}
		if answer, ok := ParseYesNo(text); ok {
			return answer, nil
		}
		fmt.Fprintf(c.Writer, "Please answer %s or %s.\n", YesToken, NoToken)
	}
}

// ParseYesNo normalizes s and maps the two recognized tokens to true and false.
func ParseYesNo(s string) (answer bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case YesToken:
		return true, true
	case NoToken:
		return false, true
	default:
		return false, false
	}
}

package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the game title, coloured when the terminal supports it.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{`    _    _    _             _             `, "#facc15"},
		{`   / \  | | _(_)_ __   __ _| |_ ___  _ __ `, "#fb923c"},
		{`  / _ \ | |/ / | '_ \ / _' | __/ _ \| '__|`, "#f97316"},
		{` / ___ \|   <| | | | | (_| | || (_) | |   `, "#ea580c"},
		{`/_/   \_\_|\_\_|_| |_|\__,_|\__\___/|_|   `, "#c2410c"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	if version != "" {
		fmt.Fprintln(w, out.String("  "+version).Faint())
	}
	fmt.Fprintln(w)
}

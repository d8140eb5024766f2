// Package render draws a grid with a path laid over it, for terminal output.
package render

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/gridpath/grid"
)

// Marker replaces path cells in plain output.
const Marker = '*'

var (
	colorPath  = lipgloss.Color("#2CD7C7")
	colorStart = lipgloss.Color("#F4D03F")
	colorGoal  = lipgloss.Color("#E74C3C")
	colorMuted = lipgloss.Color("#2C4A54")
)

// Overlay is a grid plus the path to highlight on it.
type Overlay struct {
	Grid *grid.Grid
	// Glyph maps a cell value to its character; nil prints values as runes.
	Glyph func(v int) rune
	Path  []grid.Point
}

type cellKind int

const (
	kindOff cellKind = iota
	kindPath
	kindStart
	kindGoal
)

// ColorFor reports whether output to f should be colored:
// f is a terminal and NO_COLOR is unset.
func ColorFor(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Plain draws o with every path cell except the endpoints shown as Marker.
func Plain(o Overlay) string {
	return draw(o, func(r rune, k cellKind) string {
		if k == kindPath {
			return string(Marker)
		}
		return string(r)
	})
}

// Styled draws o with lipgloss styles from re; cells keep their glyphs.
func Styled(re *lipgloss.Renderer, o Overlay) string {
	off := re.NewStyle().Foreground(colorMuted)
	styles := map[cellKind]lipgloss.Style{
		kindPath:  re.NewStyle().Bold(true).Foreground(colorPath),
		kindStart: re.NewStyle().Bold(true).Foreground(colorStart),
		kindGoal:  re.NewStyle().Bold(true).Foreground(colorGoal),
	}
	return draw(o, func(r rune, k cellKind) string {
		if s, ok := styles[k]; ok {
			return s.Render(string(r))
		}
		return off.Render(string(r))
	})
}

// Write draws o to w, styled when color is set.
func Write(w io.Writer, o Overlay, color bool) error {
	var out string
	if color {
		out = Styled(lipgloss.NewRenderer(w), o)
	} else {
		out = Plain(o)
	}
	_, err := io.WriteString(w, out)
	return err
}

func draw(o Overlay, cell func(r rune, k cellKind) string) string {
	glyph := o.Glyph
	if glyph == nil {
		glyph = func(v int) rune { return rune(v) }
	}
	kinds := make(map[grid.Point]cellKind, len(o.Path))
	for _, p := range o.Path {
		kinds[p] = kindPath
	}
	if n := len(o.Path); n > 0 {
		kinds[o.Path[n-1]] = kindGoal
		kinds[o.Path[0]] = kindStart
	}

	var b strings.Builder
	for r := 0; r < o.Grid.Rows(); r++ {
		for c := 0; c < o.Grid.Cols(); c++ {
			p := grid.Point{Row: r, Col: c}
			b.WriteString(cell(glyph(o.Grid.At(p)), kinds[p]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

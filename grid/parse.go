package grid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDigits reads one row per non-blank line, one decimal digit per cell.
// Surrounding whitespace on each line is ignored.
func ParseDigits(r io.Reader) (*Grid, error) {
	return parseLines(r, func(row int, line string) ([]int, error) {
		out := make([]int, 0, len(line))
		for col, ch := range line {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at %d,%d", ErrBadCell, ch, row, col)
			}
			out = append(out, int(ch-'0'))
		}
		return out, nil
	})
}

// ParseChars reads one row per non-blank line; each cell holds the rune code
// of its character, so callers compare against rune literals ('#', 'S', ...).
func ParseChars(r io.Reader) (*Grid, error) {
	return parseLines(r, func(_ int, line string) ([]int, error) {
		out := make([]int, 0, len(line))
		for _, ch := range line {
			out = append(out, int(ch))
		}
		return out, nil
	})
}

// ParsePoints reads "x,y" lines (x = column, y = row) in order.
// Blank lines are skipped.
func ParsePoints(r io.Reader) ([]Point, error) {
	var out []Point
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		xs, ys, ok := strings.Cut(text, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadPoint, line, text)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadPoint, line, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadPoint, line, err)
		}
		out = append(out, Point{Row: y, Col: x})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read points: %w", err)
	}
	return out, nil
}

func parseLines(r io.Reader, row func(int, string) ([]int, error)) (*Grid, error) {
	var values [][]int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		cells, err := row(len(values), line)
		if err != nil {
			return nil, err
		}
		values = append(values, cells)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}
	return New(values)
}

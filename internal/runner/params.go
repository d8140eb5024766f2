package runner

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Params are the raw key=value policy parameters from flags or a run file.
type Params map[string]string

// Int returns the named integer or def when absent.
func (p Params) Int(name string, def int) (int, error) {
	raw, ok := p[name]
	if !ok {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrBadParam, name, raw)
	}
	return v, nil
}

// Bool returns the named boolean or def when absent.
func (p Params) Bool(name string, def bool) (bool, error) {
	raw, ok := p[name]
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q is not a boolean", ErrBadParam, name, raw)
	}
	return v, nil
}

// Rune returns the named single character or def when absent.
func (p Params) Rune(name string, def rune) (rune, error) {
	raw, ok := p[name]
	if !ok {
		return def, nil
	}
	if utf8.RuneCountInString(raw) != 1 {
		return 0, fmt.Errorf("%w: %s=%q must be one character", ErrBadParam, name, raw)
	}
	r, _ := utf8.DecodeRuneInString(raw)
	return r, nil
}

// String returns the named value or def when absent.
func (p Params) String(name, def string) string {
	if raw, ok := p[name]; ok {
		return raw
	}
	return def
}
